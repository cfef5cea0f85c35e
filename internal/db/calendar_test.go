package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barakah-labs/minaret/internal/model"
)

func TestPivotDate(t *testing.T) {
	assert.Equal(t, "2024-07-25", pivotDate("25-07-2024"))
	assert.Equal(t, "25-07-2024", pivotDate("2024-07-25"))
	// malformed input passes through untouched
	assert.Equal(t, "25/07/2024", pivotDate("25/07/2024"))
}

func TestTimingsSerializationRoundTrip(t *testing.T) {
	in := model.Timings{
		Fajr:    "04:30",
		Shurooq: "06:01",
		Dhuhr:   "12:05",
		Asr:     "15:30",
		Maghrib: "18:10",
		Isha:    "19:40",
	}

	blob, err := json.Marshal(in)
	require.NoError(t, err)

	var out model.Timings
	require.NoError(t, json.Unmarshal(blob, &out))
	assert.Equal(t, in, out)
}

func TestStoreUnavailableWithoutPool(t *testing.T) {
	s := &pgStore{db: nil}

	_, err := s.FindCityIDByName("cairo", "egypt")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = s.FindStrategyIDByName("athan-api-3")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, _, err = s.SaveCalculationMethods(nil)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	err = s.InsertCalendarData(1, 1, nil)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	err = s.UpsertHijriBoundary(model.HijriMonthBoundary{Month: 1})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
