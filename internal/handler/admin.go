package handler

import (
	"net/http"

	v1 "pitschi/api/v1"
	"pitschi/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	*Handler
	adminService service.AdminService
}

func NewAdminHandler(handler *Handler, adminService service.AdminService) *AdminHandler {
	return &AdminHandler{
		Handler:      handler,
		adminService: adminService,
	}
}

// SyncStatus godoc
// @Summary Project sync guard state
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.SyncStatusResponse
// @Router /api/v1/admin/sync [get]
func (h *AdminHandler) SyncStatus(ctx *gin.Context) {
	data, err := h.adminService.SyncStatus(ctx)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// ResetSync godoc
// @Summary Clear a stuck project sync guard
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.Response
// @Router /api/v1/admin/sync/reset [put]
func (h *AdminHandler) ResetSync(ctx *gin.Context) {
	if err := h.adminService.ResetSync(ctx); err != nil {
		handleServiceError(ctx, err)
		return
	}
	h.logger.WithContext(ctx).Info("sync guard reset", zap.String("by", GetUserIdFromCtx(ctx)))
	v1.HandleSuccess(ctx, nil)
}

// TriggerSync godoc
// @Summary Run a scheduled task now
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.TriggerSyncRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/admin/sync/trigger [post]
func (h *AdminHandler) TriggerSync(ctx *gin.Context) {
	req := new(v1.TriggerSyncRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	if err := h.adminService.TriggerSync(ctx, req); err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, nil)
}

// ListStats godoc
// @Summary System stats
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.Response
// @Router /api/v1/admin/stats [get]
func (h *AdminHandler) ListStats(ctx *gin.Context) {
	data, err := h.adminService.ListStats(ctx)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}
