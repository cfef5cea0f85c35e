package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barakah-labs/minaret/internal/model"
)

func TestGetPrayerTimesSelectsByCoordinates(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := NewResolver(fetcher)

	_, err := r.GetPrayerTimes(context.Background(), coordinateRequest())
	require.NoError(t, err)
	assert.Equal(t, "coordinates", fetcher.lastEndpoint)
}

// A request missing any coordinate-shape field does not fail: it falls
// through to ByCity, whose predicate accepts everything.
func TestGetPrayerTimesFallsThroughToByCity(t *testing.T) {
	cases := map[string]model.PrayerTimeRequest{
		"missing lat": {
			Method: 3, Duration: 30, Lon: floatPtr(31.2),
			City: "cairo", Country: "egypt",
		},
		"missing lon": {
			Method: 3, Duration: 30, Lat: floatPtr(30.0),
		},
		"negative method": {
			Method: -1, Duration: 30, Lat: floatPtr(30.0), Lon: floatPtr(31.2),
		},
		"zero duration": {
			Method: 3, Lat: floatPtr(30.0), Lon: floatPtr(31.2),
		},
		"empty request": {Method: -1},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			fetcher := &fakeFetcher{}
			r := NewResolver(fetcher)

			_, err := r.GetPrayerTimes(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, "city", fetcher.lastEndpoint)
		})
	}
}

func TestExecuteByNameOverridesMethod(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := NewResolver(fetcher)

	req := model.PrayerTimeRequest{City: "cairo", Country: "egypt", Duration: 30}
	_, err := r.ExecuteByName(context.Background(), "athan-api-3", req)
	require.NoError(t, err)
	assert.Equal(t, "city", fetcher.lastEndpoint)
	assert.Equal(t, 3, fetcher.lastMethod)
	assert.Equal(t, "cairo", fetcher.lastCity)
}

// The method id is parsed from the last character of the whole label,
// so "athan-api-12" resolves method 2, not 12. Regression test for the
// documented parsing behavior.
func TestExecuteByNameParsesLastCharacterOnly(t *testing.T) {
	fetcher := &fakeFetcher{}
	r := NewResolver(fetcher)

	_, err := r.ExecuteByName(context.Background(), "athan-api-12", model.PrayerTimeRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.lastMethod)
}

func TestExecuteByNameUnknownPrefix(t *testing.T) {
	r := NewResolver(&fakeFetcher{})

	_, err := r.ExecuteByName(context.Background(), "unknown-x", model.PrayerTimeRequest{})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestExecuteByNameNonNumericSuffix(t *testing.T) {
	r := NewResolver(&fakeFetcher{})

	_, err := r.ExecuteByName(context.Background(), "athan-api-x", model.PrayerTimeRequest{})
	assert.ErrorIs(t, err, ErrParametersNotValid)
}
