package v1

type ListBookingsRequest struct {
	Date     string `form:"date" binding:"required" example:"2024-03-05"`
	SystemId *int64 `form:"system_id" example:"17"`
}

type BookingItem struct {
	Id          int64   `json:"id" example:"12345"`
	BookingDate string  `json:"bookingdate" example:"2024-03-05"`
	StartTime   string  `json:"starttime" example:"09:00:00"`
	Duration    int     `json:"duration" example:"90"`
	Cancelled   bool    `json:"cancelled"`
	Status      string  `json:"status"`
	SystemId    *int64  `json:"systemid,omitempty"`
	Username    *string `json:"username,omitempty"`
	Assistant   *string `json:"assistant,omitempty"`
	ProjectId   *int64  `json:"projectid,omitempty"`
}

type ListBookingsResponseData struct {
	List []BookingItem `json:"list"`
}

type ListBookingsResponse struct {
	Response
	Data ListBookingsResponseData `json:"data"`
}

type GetBookingResponse struct {
	Response
	Data BookingItem `json:"data"`
}
