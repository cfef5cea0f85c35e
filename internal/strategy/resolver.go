package strategy

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/barakah-labs/minaret/internal/model"
)

var (
	// ErrNoStrategyFound is returned when implicit resolution exhausts
	// the strategy list. Unreachable while ByCity stays unconditional.
	ErrNoStrategyFound = errors.New("no strategy found for request")

	// ErrUnknownStrategy is returned when an explicit strategy name has
	// no recognized prefix.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrParametersNotValid is returned when an explicitly selected
	// strategy rejects the request parameters.
	ErrParametersNotValid = errors.New("parameters not valid for strategy")
)

// Resolver selects and executes fetch strategies. The strategy list is
// fixed at construction and iterated in priority order.
type Resolver struct {
	strategies []Strategy
	byCity     *ByCity
}

func NewResolver(client CalendarFetcher) *Resolver {
	byCity := &ByCity{client: client}
	return &Resolver{
		strategies: []Strategy{
			&ByCoordinates{client: client},
			byCity,
		},
		byCity: byCity,
	}
}

// GetPrayerTimes resolves a request implicitly: the first strategy
// whose CanHandle accepts the request is executed.
func (r *Resolver) GetPrayerTimes(ctx context.Context, req model.PrayerTimeRequest) ([]model.PrayerDay, error) {
	for _, s := range r.strategies {
		if s.CanHandle(req) {
			return s.Fetch(ctx, req)
		}
	}
	return nil, ErrNoStrategyFound
}

// ExecuteByName resolves a request explicitly by strategy label.
// Labels starting with "athan-api-" select the ByCity strategy and
// override the request's method with the id encoded in the label.
//
// The method id is parsed from the LAST CHARACTER of the whole label,
// not from the suffix after the prefix: "athan-api-12" yields method 2.
// This matches the stored strategy labels, which are all single-digit
// today; it is kept literally and pinned by a regression test.
func (r *Resolver) ExecuteByName(ctx context.Context, name string, req model.PrayerTimeRequest) ([]model.PrayerDay, error) {
	if !strings.HasPrefix(name, model.StrategyLabelPrefix) {
		return nil, ErrUnknownStrategy
	}

	method, err := strconv.Atoi(name[len(name)-1:])
	if err != nil {
		return nil, ErrParametersNotValid
	}
	req.Method = method

	if !r.byCity.CanHandle(req) {
		return nil, ErrParametersNotValid
	}

	log.Debug().Str("strategy", name).Int("method", method).Msg("executing strategy by name")
	return r.byCity.Fetch(ctx, req)
}
