package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barakah-labs/minaret/internal/model"
)

// requires a live database; set TEST_DATABASE_URL to run.
func setupIntegration(t *testing.T) Store {
	t.Helper()
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if TestStore == nil {
		require.NoError(t, InitTestDB("../../migrations"))
	}
	return TestStore
}

func TestFindCityIDByNameCaseInsensitive(t *testing.T) {
	store := setupIntegration(t)

	lower, err := store.FindCityIDByName("cairo", "egypt")
	require.NoError(t, err)
	require.NotNil(t, lower)

	upper, err := store.FindCityIDByName("CAIRO", "EGYPT")
	require.NoError(t, err)
	require.NotNil(t, upper)

	assert.Equal(t, *lower, *upper)

	// partial match resolves too
	partial, err := store.FindCityIDByName("cai", "egy")
	require.NoError(t, err)
	require.NotNil(t, partial)
	assert.Equal(t, *lower, *partial)
}

func TestFindCityIDByNameUnknown(t *testing.T) {
	store := setupIntegration(t)

	id, err := store.FindCityIDByName("atlantis", "nowhere")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestSaveAndFindCalculationMethods(t *testing.T) {
	store := setupIntegration(t)

	_, _, err := store.SaveCalculationMethods([]model.CalculationMethod{
		{MethodID: 3, Name: "Muslim World League"},
		{MethodID: 99, Name: ""}, // nameless entries are skipped
	})
	require.NoError(t, err)

	id, err := store.FindStrategyIDByName("athan-api-3")
	require.NoError(t, err)
	require.NotNil(t, id)

	skipped, err := store.FindStrategyIDByName("athan-api-99")
	require.NoError(t, err)
	assert.Nil(t, skipped)

	methods, err := store.ListCalculationMethods()
	require.NoError(t, err)
	assert.NotEmpty(t, methods)
}

// A second upsert of an already-present month must leave the stored
// first/last values untouched: the conflict clause is a no-op.
func TestUpsertHijriBoundaryNeverOverwrites(t *testing.T) {
	store := setupIntegration(t)

	original := model.HijriMonthBoundary{
		Month:          1,
		GregorianFirst: "01-01-2024",
		HijriFirst:     "19-06-1445",
		HijriLast:      "20-07-1445",
	}
	require.NoError(t, store.UpsertHijriBoundary(original))

	conflicting := original
	conflicting.HijriFirst = "01-01-1400"
	require.NoError(t, store.UpsertHijriBoundary(conflicting))

	var stored model.HijriMonthBoundary
	require.NoError(t, DB.Get(&stored, `
		SELECT month, gregorian_first, hijri_first, hijri_last
		FROM hijri_calendar
		WHERE month = 1
		`))
	assert.Equal(t, original, stored)
}

func TestInsertCalendarDataPivotsDate(t *testing.T) {
	store := setupIntegration(t)

	_, _, err := store.SaveCalculationMethods([]model.CalculationMethod{
		{MethodID: 5, Name: "Egyptian General Authority"},
	})
	require.NoError(t, err)

	strategyID, err := store.FindStrategyIDByName("athan-api-5")
	require.NoError(t, err)
	require.NotNil(t, strategyID)

	cityID, err := store.FindCityIDByName("cairo", "egypt")
	require.NoError(t, err)
	require.NotNil(t, cityID)

	// clear leftovers from previous runs; the row key is unique
	_, err = DB.Exec(`DELETE FROM prayer_calendars WHERE strategy_id = $1 AND city_id = $2`, *strategyID, *cityID)
	require.NoError(t, err)

	day := model.PrayerDay{
		Date: "25-07-2024",
		Timings: model.Timings{
			Fajr: "04:30", Shurooq: "06:01", Dhuhr: "12:05",
			Asr: "15:30", Maghrib: "18:10", Isha: "19:40",
		},
	}
	require.NoError(t, store.InsertCalendarData(*strategyID, *cityID, []model.PrayerDay{day}))

	var storedDate string
	require.NoError(t, DB.Get(&storedDate, `
		SELECT to_char(date, 'YYYY-MM-DD')
		FROM prayer_calendars
		WHERE strategy_id = $1 AND city_id = $2
		`, *strategyID, *cityID))
	assert.Equal(t, "2024-07-25", storedDate)
}
