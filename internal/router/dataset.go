package router

import (
	"pitschi/internal/middleware"

	"github.com/gin-gonic/gin"
)

// InitDatasetRouter registers the intake endpoints used by acquisition clients
// and the operator endpoints for failed datasets.
func InitDatasetRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	clientRouter := r.Group("/datasets").Use(middleware.ClientAuth(deps.JWT, deps.AccountService, deps.Logger))
	{
		clientRouter.POST("", deps.DatasetHandler.CreateDataset)
		clientRouter.GET("/:id", deps.DatasetHandler.GetDataset)
		clientRouter.PUT("/:id", deps.DatasetHandler.UpdateDataset)
		clientRouter.GET("/:id/check", deps.DatasetHandler.CheckDataset)
	}

	operatorRouter := r.Group("/datasets").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		operatorRouter.GET("", deps.DatasetHandler.ListDatasets)
		operatorRouter.GET("/failed", deps.DatasetHandler.ListFailedDatasets)
		operatorRouter.PUT("/:id/reset", deps.DatasetHandler.ResetDataset)
	}
}
