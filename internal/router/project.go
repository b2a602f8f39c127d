package router

import (
	"pitschi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitProjectRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	auth := middleware.StrictAuth(deps.JWT, deps.Logger)

	projectRouter := r.Group("/projects").Use(auth)
	{
		projectRouter.GET("", deps.ProjectHandler.ListProjects)
		projectRouter.GET("/:id", deps.ProjectHandler.GetProject)
	}

	r.Group("/collections").Use(auth).GET("/:name", deps.ProjectHandler.GetCollection)
}
