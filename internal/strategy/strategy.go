package strategy

import (
	"context"
	"fmt"
	"time"

	"github.com/barakah-labs/minaret/internal/aladhan"
	"github.com/barakah-labs/minaret/internal/model"
)

// CalendarFetcher is the slice of the upstream client the strategies use.
type CalendarFetcher interface {
	CalendarByCoordinates(ctx context.Context, lat, lon float64, method, month, year int) ([]aladhan.CalendarDay, error)
	CalendarByCity(ctx context.Context, city, country string, method, month, year int) ([]aladhan.CalendarDay, error)
}

// Strategy is one way of satisfying a prayer-times request.
// CanHandle is a pure predicate over the request shape, used only for
// implicit resolution; Fetch executes the strategy against upstream.
type Strategy interface {
	CanHandle(req model.PrayerTimeRequest) bool
	Fetch(ctx context.Context, req model.PrayerTimeRequest) ([]model.PrayerDay, error)
}

// ByCoordinates fetches prayer times for a latitude/longitude pair.
type ByCoordinates struct {
	client CalendarFetcher
}

func (s *ByCoordinates) CanHandle(req model.PrayerTimeRequest) bool {
	return req.HasCoordinates() && req.Method >= 0 && req.Duration > 0
}

func (s *ByCoordinates) Fetch(ctx context.Context, req model.PrayerTimeRequest) ([]model.PrayerDay, error) {
	// Duration is accepted but does not bound the window: upstream always
	// returns the current Gregorian month. Known gap in the contract.
	now := time.Now()
	days, err := s.client.CalendarByCoordinates(ctx, *req.Lat, *req.Lon, req.Method, int(now.Month()), now.Year())
	if err != nil {
		return nil, fmt.Errorf("fetching calendar by coordinates: %w", err)
	}
	return normalize(days), nil
}

// ByCity fetches prayer times for a named city and country.
type ByCity struct {
	client CalendarFetcher
}

// CanHandle always returns true: ByCity is the catch-all tail of the
// strategy list and does not validate that city/country are present.
// Changing this would alter implicit-resolution fallthrough, so it is
// kept as-is and pinned by tests.
func (s *ByCity) CanHandle(req model.PrayerTimeRequest) bool {
	return true
}

func (s *ByCity) Fetch(ctx context.Context, req model.PrayerTimeRequest) ([]model.PrayerDay, error) {
	now := time.Now()
	days, err := s.client.CalendarByCity(ctx, req.City, req.Country, req.Method, int(now.Month()), now.Year())
	if err != nil {
		return nil, fmt.Errorf("fetching calendar by city: %w", err)
	}
	return normalize(days), nil
}

// normalize maps upstream calendar days onto the domain shape,
// renaming Sunrise to Shurooq.
func normalize(days []aladhan.CalendarDay) []model.PrayerDay {
	out := make([]model.PrayerDay, 0, len(days))
	for _, d := range days {
		out = append(out, model.PrayerDay{
			Date: d.Date.Gregorian.Date,
			Timings: model.Timings{
				Fajr:    d.Timings.Fajr,
				Shurooq: d.Timings.Sunrise,
				Dhuhr:   d.Timings.Dhuhr,
				Asr:     d.Timings.Asr,
				Maghrib: d.Timings.Maghrib,
				Isha:    d.Timings.Isha,
			},
		})
	}
	return out
}
