package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitschi_sync_runs_total",
			Help: "Scheduled reconciliation runs by task and result",
		},
		[]string{"task", "result"},
	)

	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pitschi_sync_duration_seconds",
			Help:    "Duration of scheduled reconciliation runs",
			Buckets: []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"task"},
	)

	ProjectsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitschi_projects_written_total",
			Help: "Project rows created or updated by the project reconciler",
		},
		[]string{"op"},
	)

	MembershipChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitschi_membership_changes_total",
			Help: "Project membership rows enabled, disabled or added",
		},
		[]string{"op"},
	)

	BookingsReconciled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitschi_bookings_reconciled_total",
			Help: "Bookings upserted, cancelled or skipped by the booking reconciler",
		},
		[]string{"op"},
	)

	DatasetsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitschi_datasets_ingested_total",
			Help: "Dataset ingest attempts by result",
		},
		[]string{"result"},
	)

	FilesIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitschi_files_ingested_total",
			Help: "File uploads to the repository by result",
		},
		[]string{"result"},
	)

	ExternalRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitschi_external_requests_total",
			Help: "Outbound API calls by client and result",
		},
		[]string{"client", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pitschi_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pitschi_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)
