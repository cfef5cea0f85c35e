// Package hijrisync populates the Hijri-month-boundary table for a
// Gregorian year from the upstream conversion endpoint.
package hijrisync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/barakah-labs/minaret/internal/aladhan"
	"github.com/barakah-labs/minaret/internal/model"
	"github.com/barakah-labs/minaret/internal/redis"
)

// ErrNoDataForYear is returned when upstream has no conversion table
// for the requested year. Logged by callers, not fatal.
var ErrNoDataForYear = errors.New("no hijri data for year")

// HijriConverter is the slice of the upstream client the synchronizer uses.
type HijriConverter interface {
	GregorianToHijri(ctx context.Context, month, year int) ([]aladhan.ConversionDay, error)
}

// BoundaryStore persists computed month boundaries.
type BoundaryStore interface {
	UpsertHijriBoundary(b model.HijriMonthBoundary) error
}

// Synchronizer assembles a full-year Hijri calendar, one upstream call
// per Gregorian month.
type Synchronizer struct {
	client HijriConverter
	store  BoundaryStore
}

func NewSynchronizer(client HijriConverter, store BoundaryStore) *Synchronizer {
	return &Synchronizer{client: client, store: store}
}

// SyncYear fetches the conversion table for every Gregorian month of
// year, strictly in order, reduces each month to its first/last day
// boundary and upserts it. The upsert never overwrites an existing
// month, so re-running a populated year is a no-op for stored rows.
//
// Returns the boundaries actually computed, whether or not the
// persistence step skipped any of them on conflict.
func (s *Synchronizer) SyncYear(ctx context.Context, year int) ([]model.HijriMonthBoundary, error) {
	boundaries := make([]model.HijriMonthBoundary, 0, 12)

	for month := 1; month <= 12; month++ {
		days, err := s.client.GregorianToHijri(ctx, month, year)
		if err != nil {
			return boundaries, fmt.Errorf("fetching hijri conversion for %d/%d: %w", month, year, err)
		}
		if len(days) == 0 {
			log.Warn().Int("year", year).Int("month", month).Msg("upstream returned no hijri data")
			return boundaries, ErrNoDataForYear
		}

		first := days[0]
		last := days[len(days)-1]

		b := model.HijriMonthBoundary{
			Month:          month,
			GregorianFirst: reformatDate(first.Gregorian.Date),
			HijriFirst:     reformatDate(first.Hijri.Date),
			HijriLast:      reformatDate(last.Hijri.Date),
		}

		if err := s.store.UpsertHijriBoundary(b); err != nil {
			return boundaries, fmt.Errorf("storing boundary for month %d: %w", month, err)
		}
		boundaries = append(boundaries, b)
	}

	log.Info().Int("year", year).Int("months", len(boundaries)).Msg("hijri calendar synchronized")
	redis.RecordHijriSync(ctx, year, len(boundaries))

	return boundaries, nil
}

// reformatDate turns YYYY-MM-DD into DD-MM-YYYY, the storage format
// for boundary dates.
func reformatDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
