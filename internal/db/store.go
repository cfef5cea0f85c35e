// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/barakah-labs/minaret/internal/model"
)

// ErrStorageUnavailable is returned when the connection pool was never
// initialized.
var ErrStorageUnavailable = errors.New("storage unavailable: connection pool not initialized")

type Store interface {
	// lookups
	FindCityIDByName(city, country string) (*int, error)
	FindStrategyIDByName(label string) (*int, error)
	ListCalculationMethods() ([]model.CalculationMethod, error)

	// upserts
	SaveCalculationMethods(methods []model.CalculationMethod) (inserted, updated int, err error)
	InsertCalendarData(strategyID, cityID int, days []model.PrayerDay) error
	UpsertHijriBoundary(b model.HijriMonthBoundary) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	if database == nil {
		database = DB
	}
	return &pgStore{db: database}
}
