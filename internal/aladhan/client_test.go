package aladhan

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCalendar() CalendarResponse {
	return CalendarResponse{
		Code:   200,
		Status: "OK",
		Data: []CalendarDay{
			{
				Timings: DayTimings{
					Fajr:    "04:30",
					Sunrise: "06:01",
					Dhuhr:   "12:05",
					Asr:     "15:30",
					Maghrib: "18:10",
					Isha:    "19:40",
				},
				Date: DateInfo{
					Gregorian: DatePart{Date: "01-07-2024"},
					Hijri:     DatePart{Date: "25-12-1445"},
				},
			},
		},
	}
}

func TestNewClient(t *testing.T) {
	c := NewClient()
	require.NotNil(t, c)
	assert.Equal(t, defaultBaseURL, c.BaseURL)
}

func TestCalendarByCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/calendar/2024/7"), "unexpected path %s", r.URL.Path)

		q := r.URL.Query()
		assert.NotEmpty(t, q.Get("latitude"))
		assert.NotEmpty(t, q.Get("longitude"))
		assert.Equal(t, "3", q.Get("method"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sampleCalendar())
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	days, err := c.CalendarByCoordinates(context.Background(), 30.0444, 31.2357, 3, 7, 2024)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "06:01", days[0].Timings.Sunrise)
	assert.Equal(t, "01-07-2024", days[0].Date.Gregorian.Date)
}

func TestCalendarByCityOmitsNegativeMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/calendarByCity/2024/7"), "unexpected path %s", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "cairo", q.Get("city"))
		assert.Equal(t, "egypt", q.Get("country"))
		assert.Empty(t, q.Get("method"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sampleCalendar())
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	days, err := c.CalendarByCity(context.Background(), "cairo", "egypt", -1, 7, 2024)
	require.NoError(t, err)
	assert.Len(t, days, 1)
}

func TestGregorianToHijri(t *testing.T) {
	resp := ConversionResponse{
		Code:   200,
		Status: "OK",
		Data: []ConversionDay{
			{
				Gregorian: DatePart{Date: "2024-07-01"},
				Hijri:     DatePart{Date: "1445-12-25"},
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/gToHCalendar/7/2024"), "unexpected path %s", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	days, err := c.GregorianToHijri(context.Background(), 7, 2024)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "1445-12-25", days[0].Hijri.Date)
}

func TestMethods(t *testing.T) {
	resp := MethodsResponse{
		Code:   200,
		Status: "OK",
		Data: map[string]MethodEntry{
			"MWL":    {ID: 3, Name: "Muslim World League"},
			"CUSTOM": {ID: 99},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/methods"), "unexpected path %s", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	catalog, err := c.Methods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Muslim World League", catalog["MWL"].Name)
	// nameless placeholder entries survive decoding; persistence skips them
	assert.Empty(t, catalog["CUSTOM"].Name)
}

func TestHTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	_, err := c.Methods(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestAPIErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ConversionResponse{Code: 404, Status: "Not Found"})
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	_, err := c.GregorianToHijri(context.Background(), 7, 2024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=404")
}
