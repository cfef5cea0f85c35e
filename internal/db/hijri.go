package db

import (
	"github.com/rs/zerolog/log"

	"github.com/barakah-labs/minaret/internal/model"
)

// UpsertHijriBoundary inserts one month's boundary record. On conflict
// the row is left untouched: the DO UPDATE clause assigns the month
// column to itself, so a resynchronization never rewrites previously
// stored first/last day values. Insert-if-absent, not last-write-wins.
func (s *pgStore) UpsertHijriBoundary(b model.HijriMonthBoundary) error {
	if s.db == nil {
		return ErrStorageUnavailable
	}

	_, err := s.db.Exec(`
		INSERT INTO hijri_calendar (month, gregorian_first, hijri_first, hijri_last)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (month) DO UPDATE SET month = hijri_calendar.month
		`, b.Month, b.GregorianFirst, b.HijriFirst, b.HijriLast)
	if err != nil {
		log.Error().Err(err).Int("month", b.Month).Msg("failed to upsert hijri boundary")
	}
	return err
}
