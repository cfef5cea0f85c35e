package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/barakah-labs/minaret/internal/model"
)

// FindStrategyIDByName resolves a calculation-method identifier by
// exact label match. Returns nil when no method carries the label.
func (s *pgStore) FindStrategyIDByName(label string) (*int, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}

	var id int
	err := s.db.Get(&id, `
		SELECT id
		FROM calculation_methods
		WHERE label = $1
		`, label)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Str("label", label).Msg("failed to find strategy by label")
		return nil, err
	}
	return &id, nil
}

// ListCalculationMethods returns the stored method catalog, ordered by
// upstream method id.
func (s *pgStore) ListCalculationMethods() ([]model.CalculationMethod, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}

	var methods []model.CalculationMethod
	err := s.db.Select(&methods, `
		SELECT id, method_id, label, name, created_at
		FROM calculation_methods
		ORDER BY method_id
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list calculation methods")
		return nil, err
	}
	return methods, nil
}

// SaveCalculationMethods upserts the upstream method catalog. Entries
// without a display name are skipped. The insert/update split is
// derived from the driver's affected-row count and is best-effort
// telemetry only, not a correctness signal.
func (s *pgStore) SaveCalculationMethods(methods []model.CalculationMethod) (inserted, updated int, err error) {
	if s.db == nil {
		return 0, 0, ErrStorageUnavailable
	}

	for _, m := range methods {
		if m.Name == "" {
			continue
		}
		label := model.StrategyLabel(m.MethodID)

		res, err := s.db.Exec(`
			INSERT INTO calculation_methods (method_id, label, name, created_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (method_id) DO UPDATE SET name = EXCLUDED.name
			`, m.MethodID, label, m.Name)
		if err != nil {
			log.Error().Err(err).Int("method_id", m.MethodID).Msg("failed to save calculation method")
			return inserted, updated, err
		}

		if n, raErr := res.RowsAffected(); raErr == nil && n == 1 {
			inserted++
		} else {
			updated++
		}
	}

	log.Info().Int("inserted", inserted).Int("updated", updated).Msg("saved calculation methods")
	return inserted, updated, nil
}
