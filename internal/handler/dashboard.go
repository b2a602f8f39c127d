package handler

import (
	"net/http"

	v1 "pitschi/api/v1"
	"pitschi/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	*Handler
	dashboardService service.DashboardService
}

func NewDashboardHandler(handler *Handler, dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		Handler:          handler,
		dashboardService: dashboardService,
	}
}

// GetOverview godoc
// @Summary Facility overview
// @Description Counts of mirrored entities, today's bookings, the dataset pipeline and the sync guard.
// @Tags Dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.DashboardOverviewResponse
// @Router /api/v1/dashboard/overview [get]
func (h *DashboardHandler) GetOverview(ctx *gin.Context) {
	data, err := h.dashboardService.GetOverview(ctx)
	if err != nil {
		h.logger.WithContext(ctx).Error("dashboardService.GetOverview error", zap.Error(err))
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// GetSystems godoc
// @Summary Instruments grouped by core facility
// @Tags Dashboard
// @Produce json
// @Security Bearer
// @Param core_id query int false "core facility id"
// @Success 200 {object} v1.DashboardSystemsResponse
// @Router /api/v1/dashboard/systems [get]
func (h *DashboardHandler) GetSystems(ctx *gin.Context) {
	req := new(v1.DashboardSystemsRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	data, err := h.dashboardService.GetSystems(ctx, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}
