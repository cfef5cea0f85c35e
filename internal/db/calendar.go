package db

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/barakah-labs/minaret/internal/model"
)

// pivotDate swaps the first and last components of a "-"-separated
// date, turning DD-MM-YYYY into YYYY-MM-DD and back.
func pivotDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// InsertCalendarData stores one row per normalized day, keyed by
// (strategy, city, date). Dates are pivoted to YYYY-MM-DD and timings
// serialized as JSON. Rows are independent statements: a failure
// aborts the remaining batch and rows already written stay committed.
func (s *pgStore) InsertCalendarData(strategyID, cityID int, days []model.PrayerDay) error {
	if s.db == nil {
		return ErrStorageUnavailable
	}

	for _, day := range days {
		timings, err := json.Marshal(day.Timings)
		if err != nil {
			return fmt.Errorf("serializing timings for %s: %w", day.Date, err)
		}

		_, err = s.db.Exec(`
			INSERT INTO prayer_calendars (strategy_id, city_id, date, timings, created_at)
			VALUES ($1, $2, $3, $4, now())
			`, strategyID, cityID, pivotDate(day.Date), timings)
		if err != nil {
			log.Error().Err(err).
				Int("strategy_id", strategyID).
				Int("city_id", cityID).
				Str("date", day.Date).
				Msg("failed to insert calendar row")
			return err
		}
	}
	return nil
}
