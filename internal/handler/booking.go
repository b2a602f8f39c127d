package handler

import (
	"net/http"

	v1 "pitschi/api/v1"
	"pitschi/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*Handler
	bookingService service.BookingService
}

func NewBookingHandler(handler *Handler, bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		Handler:        handler,
		bookingService: bookingService,
	}
}

// ListBookings godoc
// @Summary List bookings of a day
// @Tags Bookings
// @Produce json
// @Security Bearer
// @Security Basic
// @Param date query string true "facility-local date, YYYY-MM-DD"
// @Param system_id query int false "instrument id"
// @Success 200 {object} v1.ListBookingsResponse
// @Router /api/v1/bookings [get]
func (h *BookingHandler) ListBookings(ctx *gin.Context) {
	req := new(v1.ListBookingsRequest)
	if err := ctx.ShouldBindQuery(req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}
	data, err := h.bookingService.ListBookings(ctx, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}

// GetBooking godoc
// @Summary Get a booking by session id
// @Tags Bookings
// @Produce json
// @Security Bearer
// @Security Basic
// @Param id path int true "session id"
// @Success 200 {object} v1.GetBookingResponse
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) GetBooking(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	data, err := h.bookingService.GetBooking(ctx, id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	v1.HandleSuccess(ctx, data)
}
