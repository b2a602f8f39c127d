package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Options carries the settings shared by the reconcilers and the ingest engine.
type Options struct {
	Sync       SyncOptions
	RDM        RDMOptions
	Ingest     IngestOptions
	Lock       LockOptions
	AdminEmail string
	Location   *time.Location
}

type SyncOptions struct {
	Timezone           string        `mapstructure:"timezone"`
	ProjectStartingRef int64         `mapstructure:"project_starting_ref"`
	ProjectSyncDays    int           `mapstructure:"project_sync_days"`
	UserCacheSize      int           `mapstructure:"user_cache_size"`
	UserCacheTTL       time.Duration `mapstructure:"user_cache_ttl"`
}

type CacheDefault struct {
	Name     string `mapstructure:"name"`
	Priority int    `mapstructure:"priority"`
}

type RDMOptions struct {
	Prefix              string         `mapstructure:"prefix"`
	CollectionSeparator string         `mapstructure:"collection_separator"`
	CacheDefaults       []CacheDefault `mapstructure:"cache_defaults"`
	CloudURL            string         `mapstructure:"cloud_url"`
	SmbURL              string         `mapstructure:"smb_url"`
	IppURL              string         `mapstructure:"ipp_url"`
}

// Provisioned reports whether a facility collection name denotes a real
// collection rather than a placeholder.
func (o RDMOptions) Provisioned(name string) bool {
	return strings.Contains(name, o.CollectionSeparator)
}

// Segment returns the on-disk directory of a collection, the part after the
// last separator.
func (o RDMOptions) Segment(collection string) string {
	collection = strings.TrimSpace(collection)
	if i := strings.LastIndex(collection, o.CollectionSeparator); i >= 0 {
		return collection[i+len(o.CollectionSeparator):]
	}
	return collection
}

type IngestOptions struct {
	// WaitTimeToSync is how long after a booking ends a dataset is ingested
	// even though files are still missing.
	WaitTimeToSync time.Duration `mapstructure:"-"`
	WaitHours      float64       `mapstructure:"wait_time_to_sync"`
}

type LockOptions struct {
	Backend    string        `mapstructure:"backend"`
	StaleAfter time.Duration `mapstructure:"stale_after"`
}

func NewOptions(conf *viper.Viper) (*Options, error) {
	opts := &Options{
		Sync: SyncOptions{
			Timezone:        "Australia/Brisbane",
			ProjectSyncDays: 7,
			UserCacheSize:   1024,
			UserCacheTTL:    12 * time.Hour,
		},
		RDM: RDMOptions{
			Prefix:              "/data",
			CollectionSeparator: "-",
		},
		Ingest: IngestOptions{WaitHours: 24},
		Lock: LockOptions{
			Backend:    "db",
			StaleAfter: 6 * time.Hour,
		},
	}
	if err := conf.UnmarshalKey("ppms", &opts.Sync); err != nil {
		return nil, fmt.Errorf("ppms: %w", err)
	}
	if err := conf.UnmarshalKey("rdm", &opts.RDM); err != nil {
		return nil, fmt.Errorf("rdm: %w", err)
	}
	if err := conf.UnmarshalKey("ingest", &opts.Ingest); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	if err := conf.UnmarshalKey("lock", &opts.Lock); err != nil {
		return nil, fmt.Errorf("lock: %w", err)
	}
	opts.AdminEmail = conf.GetString("email.admin_address")
	return opts, opts.complete()
}

func (o *Options) complete() error {
	if o.RDM.CollectionSeparator == "" {
		o.RDM.CollectionSeparator = "-"
	}
	if o.Ingest.WaitTimeToSync == 0 {
		o.Ingest.WaitTimeToSync = time.Duration(o.Ingest.WaitHours * float64(time.Hour))
	}
	if o.Lock.StaleAfter <= 0 {
		o.Lock.StaleAfter = 6 * time.Hour
	}
	if o.Location == nil {
		loc, err := time.LoadLocation(o.Sync.Timezone)
		if err != nil {
			return fmt.Errorf("ppms.timezone: %w", err)
		}
		o.Location = loc
	}
	return nil
}
