package ppms

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"pitschi/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFunc func(w http.ResponseWriter, form url.Values)

func newTestClient(t *testing.T, h handlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(body))
		require.NoError(t, err)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		h(w, form)
	}))
	t.Cleanup(srv.Close)

	c, err := New(Options{
		URL:                srv.URL + "/",
		PumapiKey:          "pkey",
		API2Key:            "akey",
		CoreIDs:            []int64{2},
		BookingQuery:       "Report100",
		TrainingQuery:      "Report200",
		QCollectionAction:  "Report300",
		QCollectionsAction: "Report400",
		QCollectionField:   "Q-Collection",
		RetryAttempts:      3,
		RetryDelay:         time.Millisecond,
	}, log.NewNop())
	require.NoError(t, err)
	return c
}

func TestListSystemsParsesCSV(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, form url.Values) {
		assert.Equal(t, "getsystems", form.Get("action"))
		assert.Equal(t, "pkey", form.Get("apikey"))
		_, _ = io.WriteString(w, "Core id,System id,Type,Name\n2,17,Microscope,\"Zeiss, LSM 880\"\nbad,row\n2,18,Scanner,Slide Scanner\n")
	})

	systems, err := c.ListSystems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []System{
		{CoreID: 2, ID: 17, Type: "Microscope", Name: "Zeiss, LSM 880"},
		{CoreID: 2, ID: 18, Type: "Scanner", Name: "Slide Scanner"},
	}, systems)
}

func TestListProjectMembers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, form url.Values) {
		assert.Equal(t, "getprojectmember", form.Get("action"))
		assert.Equal(t, "42", form.Get("projectid"))
		_, _ = io.WriteString(w, "a,id,c,d,e,f,g,h,login\n"+
			"x,101,c,d,e,f,g,h,alice\n"+
			"x,0,c,d,e,f,g,h,ghost\n"+
			"x,102,c,d,e,f,g,h,\n"+
			"x,103,c,d,e,f,g,h,bob\n")
	})

	members, err := c.ListProjectMembers(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []Member{{ID: 101, Login: "alice"}, {ID: 103, Login: "bob"}}, members)
}

func TestNoContentIsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, form url.Values) {
		w.WriteHeader(http.StatusNoContent)
	})

	projects, err := c.ListProjects(context.Background(), true)
	assert.NoError(t, err)
	assert.Empty(t, projects)

	detail, err := c.GetBookingDetail(context.Background(), 2, 5)
	assert.NoError(t, err)
	assert.Nil(t, detail)

	_, err = c.GetUser(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerErrorsAreRetriedThenSurfaced(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, form url.Values) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.ListUsers(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, form url.Values) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.ListProjects(context.Background(), false)
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTransientErrorRecovers(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, form url.Values) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `[{"ProjectRef":"42","CoreFacilityRef":2,"ProjectName":"Cells","Active":"true","ProjectType":"Research","Phase":"3","Descr":"d"}]`)
	})

	projects, err := c.ListProjects(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, Project{ID: 42, CoreID: 2, Name: "Cells", Active: true, Type: "Research", Phase: 3, Description: "d"}, projects[0])
}

func TestListBookingsTagsCore(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, form url.Values) {
		assert.Equal(t, "Report100", form.Get("action"))
		assert.Equal(t, "2024-03-05", form.Get("startdate"))
		assert.Equal(t, "2024-03-05", form.Get("enddate"))
		assert.Equal(t, "2", form.Get("coreid"))
		assert.Equal(t, "akey", form.Get("apikey"))
		_, _ = io.WriteString(w, `[{"Ref (session)":"12345","Date":"2024/03/05","Start time":"09:00:00","Duration booked (minutes)":"90","Cancelled":false,"System":"LSM 880"}]`)
	})

	bookings, err := c.ListBookings(context.Background(), time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	b := bookings[0]
	assert.Equal(t, Int(12345), b.SessionID)
	assert.Equal(t, Int(90), b.Duration)
	assert.False(t, bool(b.Cancelled))
	assert.Equal(t, int64(2), b.CoreID)
}

func TestProjectCollections(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, form url.Values) {
		switch form.Get("action") {
		case "Report400":
			_, _ = io.WriteString(w, `[{"PlateformID":2,"ProjectRef":"42","Q-Collection":"Q0123-cells"},{"PlateformID":2,"ProjectRef":43,"Q-Collection":null}]`)
		case "Report300":
			assert.Equal(t, "42", form.Get("projectId"))
			_, _ = io.WriteString(w, `[{"Q-Collection":" Q0123-cells "}]`)
		}
	})

	all, err := c.ListProjectCollections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ProjectCollection{
		{CoreID: 2, ProjectID: 42, Collection: "Q0123-cells"},
		{CoreID: 2, ProjectID: 43, Collection: ""},
	}, all)

	one, err := c.GetProjectCollection(context.Background(), 2, 42)
	require.NoError(t, err)
	assert.Equal(t, "Q0123-cells", one)
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Doe Jane", User{FirstName: "Jane", LastName: "Doe"}.DisplayName())
	assert.Equal(t, "Jane Doe", User{Name: "Jane Doe", FirstName: "x"}.DisplayName())
}
