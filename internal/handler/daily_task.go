package handler

import (
	"net/http"

	v1 "pitschi/api/v1"
	"pitschi/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DailyTaskHandler struct {
	*Handler
	dailyTaskService service.DailyTaskService
}

func NewDailyTaskHandler(handler *Handler, dailyTaskService service.DailyTaskService) *DailyTaskHandler {
	return &DailyTaskHandler{
		Handler:          handler,
		dailyTaskService: dailyTaskService,
	}
}

// CreateDailyTask godoc
// @Summary Start a daily task for an instrument
// @Tags Daily tasks
// @Accept json
// @Produce json
// @Security Basic
// @Param request body v1.CreateDailyTaskRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/dailytasks [post]
func (h *DailyTaskHandler) CreateDailyTask(ctx *gin.Context) {
	req := new(v1.CreateDailyTaskRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	data, err := h.dailyTaskService.CreateDailyTask(ctx, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("dailyTaskService.CreateDailyTask error", zap.Error(err))
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// CompleteDailyTask godoc
// @Summary Finish a daily task
// @Tags Daily tasks
// @Accept json
// @Produce json
// @Security Basic
// @Param id path int true "task id"
// @Param request body v1.CompleteDailyTaskRequest true "params"
// @Success 200 {object} v1.Response
// @Router /api/v1/dailytasks/{id} [put]
func (h *DailyTaskHandler) CompleteDailyTask(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	req := new(v1.CompleteDailyTaskRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	data, err := h.dailyTaskService.CompleteDailyTask(ctx, id, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// ListDailyTasks godoc
// @Summary Recent daily tasks of an instrument
// @Tags Daily tasks
// @Produce json
// @Security Basic
// @Param system_id query int true "instrument id"
// @Param limit query int false "max rows" default(10)
// @Success 200 {object} v1.ListDailyTasksResponse
// @Router /api/v1/dailytasks [get]
func (h *DailyTaskHandler) ListDailyTasks(ctx *gin.Context) {
	req := new(v1.ListDailyTasksRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	data, err := h.dailyTaskService.ListDailyTasks(ctx, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}
