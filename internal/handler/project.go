package handler

import (
	"net/http"

	v1 "pitschi/api/v1"
	"pitschi/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*Handler
	projectService service.ProjectService
}

func NewProjectHandler(handler *Handler, projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		Handler:        handler,
		projectService: projectService,
	}
}

// ListProjects godoc
// @Summary List projects
// @Tags Projects
// @Produce json
// @Security Bearer
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(20)
// @Param core_id query int false "core facility id"
// @Param active query bool false "only active or inactive projects"
// @Success 200 {object} v1.ListProjectsResponse
// @Router /api/v1/projects [get]
func (h *ProjectHandler) ListProjects(ctx *gin.Context) {
	req := new(v1.ListProjectsRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	data, err := h.projectService.ListProjects(ctx, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// GetProject godoc
// @Summary Get a project with its members
// @Tags Projects
// @Produce json
// @Security Bearer
// @Param id path int true "project id"
// @Success 200 {object} v1.GetProjectResponse
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) GetProject(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	data, err := h.projectService.GetProject(ctx, id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// GetCollection godoc
// @Summary Get a storage collection with its caches
// @Tags Projects
// @Produce json
// @Security Bearer
// @Param name path string true "collection name"
// @Success 200 {object} v1.GetCollectionResponse
// @Router /api/v1/collections/{name} [get]
func (h *ProjectHandler) GetCollection(ctx *gin.Context) {
	data, err := h.projectService.GetCollection(ctx, ctx.Param("name"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}
