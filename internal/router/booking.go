package router

import (
	"pitschi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitBookingRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	bookingRouter := r.Group("/bookings").Use(middleware.ClientAuth(deps.JWT, deps.AccountService, deps.Logger))
	{
		bookingRouter.GET("", deps.BookingHandler.ListBookings)
		bookingRouter.GET("/:id", deps.BookingHandler.GetBooking)
	}

	dailyTaskRouter := r.Group("/dailytasks").Use(middleware.ClientAuth(deps.JWT, deps.AccountService, deps.Logger))
	{
		dailyTaskRouter.GET("", deps.DailyTaskHandler.ListDailyTasks)
		dailyTaskRouter.POST("", deps.DailyTaskHandler.CreateDailyTask)
		dailyTaskRouter.PUT("/:id", deps.DailyTaskHandler.CompleteDailyTask)
	}
}
