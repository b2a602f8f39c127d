package router

import (
	"pitschi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitAccountRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	// No route group has permission
	noAuthRouter := r.Group("/")
	{
		noAuthRouter.POST("/login", deps.AccountHandler.Login)
	}

	clientRouter := r.Group("/account").Use(middleware.ClientAuth(deps.JWT, deps.AccountService, deps.Logger))
	{
		clientRouter.GET("", deps.AccountHandler.GetProfile)
		clientRouter.PUT("/password", deps.AccountHandler.UpdatePassword)
	}

	strictAuthRouter := r.Group("/accounts").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		strictAuthRouter.POST("", deps.AccountHandler.CreateAccount)
	}
}
