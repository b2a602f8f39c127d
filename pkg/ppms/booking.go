package ppms

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// ListBookings returns the day's bookings across every configured core.
func (c *Client) ListBookings(ctx context.Context, day time.Time) ([]Booking, error) {
	var bookings []Booking
	for _, coreID := range c.opts.CoreIDs {
		var rows []Booking
		if err := c.PostJSON(ctx, apiAPI2, c.reportForm(c.opts.BookingQuery, coreID, day), &rows); err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i].CoreID = coreID
		}
		bookings = append(bookings, rows...)
	}
	return bookings, nil
}

// ListTrainingSessions returns the day's training rows across every configured core.
func (c *Client) ListTrainingSessions(ctx context.Context, day time.Time) ([]TrainingSession, error) {
	if c.opts.TrainingQuery == "" {
		return nil, nil
	}
	var sessions []TrainingSession
	for _, coreID := range c.opts.CoreIDs {
		var rows []TrainingSession
		if err := c.PostJSON(ctx, apiAPI2, c.reportForm(c.opts.TrainingQuery, coreID, day), &rows); err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i].CoreID = coreID
		}
		sessions = append(sessions, rows...)
	}
	return sessions, nil
}

// GetBookingDetail returns nil, nil when the facility has no detail for the session.
func (c *Client) GetBookingDetail(ctx context.Context, coreID, sessionID int64) (*BookingDetail, error) {
	form := url.Values{}
	form.Set("action", "GetSessionDetails")
	form.Set("sessionid", strconv.FormatInt(sessionID, 10))
	form.Set("coreid", strconv.FormatInt(coreID, 10))
	form.Set("outformat", "json")

	var details []BookingDetail
	if err := c.PostJSON(ctx, apiAPI2, form, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	d := details[0]
	if d.SessionID == 0 {
		d.SessionID = Int(sessionID)
	}
	return &d, nil
}

func (c *Client) reportForm(action string, coreID int64, day time.Time) url.Values {
	form := url.Values{}
	form.Set("action", action)
	form.Set("dateformat", "print")
	form.Set("outformat", "json")
	form.Set("startdate", formatDate(day))
	form.Set("enddate", formatDate(day))
	form.Set("coreid", strconv.FormatInt(coreID, 10))
	return form
}
