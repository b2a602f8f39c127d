package handler

import (
	"net/http"

	v1 "pitschi/api/v1"
	"pitschi/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DatasetHandler struct {
	*Handler
	datasetService service.DatasetService
}

func NewDatasetHandler(handler *Handler, datasetService service.DatasetService) *DatasetHandler {
	return &DatasetHandler{
		Handler:        handler,
		datasetService: datasetService,
	}
}

// CreateDataset godoc
// @Summary Register a dataset
// @Description Called by acquisition clients when a transfer starts or completes.
// @Tags Datasets
// @Accept json
// @Produce json
// @Security Bearer
// @Security Basic
// @Param request body v1.CreateDatasetRequest true "params"
// @Success 200 {object} v1.GetDatasetResponse
// @Router /api/v1/datasets [post]
func (h *DatasetHandler) CreateDataset(ctx *gin.Context) {
	req := new(v1.CreateDatasetRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	data, err := h.datasetService.Create(ctx, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("datasetService.Create error", zap.Error(err))
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// UpdateDataset godoc
// @Summary Update a dataset
// @Description Only fields present in the body change. Files are upserted by path.
// @Tags Datasets
// @Accept json
// @Produce json
// @Security Bearer
// @Security Basic
// @Param id path int true "dataset id"
// @Param request body v1.UpdateDatasetRequest true "params"
// @Success 200 {object} v1.GetDatasetResponse
// @Router /api/v1/datasets/{id} [put]
func (h *DatasetHandler) UpdateDataset(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	req := new(v1.UpdateDatasetRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	data, err := h.datasetService.Update(ctx, id, req)
	if err != nil {
		h.logger.WithContext(ctx).Error("datasetService.Update error", zap.Int64("id", id), zap.Error(err))
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// GetDataset godoc
// @Summary Get a dataset with its files
// @Tags Datasets
// @Produce json
// @Security Bearer
// @Security Basic
// @Param id path int true "dataset id"
// @Success 200 {object} v1.GetDatasetResponse
// @Router /api/v1/datasets/{id} [get]
func (h *DatasetHandler) GetDataset(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	data, err := h.datasetService.Get(ctx, id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// ListDatasets godoc
// @Summary List datasets
// @Tags Datasets
// @Produce json
// @Security Bearer
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(20)
// @Param mode query string false "intransit, imported or ingested"
// @Param status query string false "ongoing, success or failed"
// @Success 200 {object} v1.ListDatasetsResponse
// @Router /api/v1/datasets [get]
func (h *DatasetHandler) ListDatasets(ctx *gin.Context) {
	req := new(v1.ListDatasetsRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	data, err := h.datasetService.List(ctx, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// ListFailedDatasets godoc
// @Summary List recently failed datasets
// @Tags Datasets
// @Produce json
// @Security Bearer
// @Param days query int false "look back this many days" default(7)
// @Success 200 {object} v1.ListDatasetsResponse
// @Router /api/v1/datasets/failed [get]
func (h *DatasetHandler) ListFailedDatasets(ctx *gin.Context) {
	req := new(v1.ListFailedDatasetsRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	data, err := h.datasetService.ListFailed(ctx, req.Days)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// ResetDataset godoc
// @Summary Reset a failed dataset
// @Description Moves a failed dataset back to the previous stage so it is retried.
// @Tags Datasets
// @Produce json
// @Security Bearer
// @Param id path int true "dataset id"
// @Success 200 {object} v1.GetDatasetResponse
// @Router /api/v1/datasets/{id}/reset [put]
func (h *DatasetHandler) ResetDataset(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	data, err := h.datasetService.Reset(ctx, id)
	if err != nil {
		h.logger.WithContext(ctx).Warn("datasetService.Reset error", zap.Int64("id", id), zap.Error(err))
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// CheckDataset godoc
// @Summary Check whether a dataset is complete on storage
// @Tags Datasets
// @Produce json
// @Security Bearer
// @Param id path int true "dataset id"
// @Success 200 {object} v1.CheckDatasetResponse
// @Router /api/v1/datasets/{id}/check [get]
func (h *DatasetHandler) CheckDataset(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	data, err := h.datasetService.Check(ctx, id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}
