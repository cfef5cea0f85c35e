package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
)

// FindCityIDByName resolves a city identifier by case-insensitive
// substring match on the city name, scoped by country. Returns nil
// when no city matches.
func (s *pgStore) FindCityIDByName(city, country string) (*int, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}

	var id int
	err := s.db.Get(&id, `
		SELECT id
		FROM cities
		WHERE name ILIKE '%' || $1 || '%'
		AND country ILIKE '%' || $2 || '%'
		ORDER BY id
		LIMIT 1
		`, city, country)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Str("city", city).Str("country", country).Msg("failed to find city by name")
		return nil, err
	}
	return &id, nil
}
