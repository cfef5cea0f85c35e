package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barakah-labs/minaret/internal/db"
	"github.com/barakah-labs/minaret/internal/http/api"
	"github.com/barakah-labs/minaret/internal/http/api/admin/packets"
	"github.com/barakah-labs/minaret/internal/model"
	"github.com/barakah-labs/minaret/internal/strategy"
)

type AdminController struct {
	resolver *strategy.Resolver
	store    db.Store
}

func newAdminController(resolver *strategy.Resolver, store db.Store) *AdminController {
	return &AdminController{resolver: resolver, store: store}
}

// StrategyModule mounts explicit strategy execution and the
// precomputed-calendar population flow.
func StrategyModule(resolver *strategy.Resolver, store db.Store) api.Module {
	ctl := newAdminController(resolver, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/strategies/execute", ctl.executeStrategy)
		c.POST("/calendars", ctl.populateCalendar)
	})
}

// POST /api/admin/strategies/execute
func (a *AdminController) executeStrategy(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ExecuteStrategyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	days, err := a.resolver.ExecuteByName(ctx.Request.Context(), request.Strategy, toRequest(request.Params))
	if err != nil {
		switch {
		case errors.Is(err, strategy.ErrUnknownStrategy),
			errors.Is(err, strategy.ErrParametersNotValid):
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
		default:
			log.Error().Err(err).Str("strategy", request.Strategy).Msg("failed to execute strategy")
			return nil, &api.APIError{Code: http.StatusBadGateway, Message: "upstream call failed"}
		}
	}

	return days, nil
}

// POST /api/admin/calendars
//
// Resolves the city and strategy identifiers, fetches a calendar via
// the named strategy and stores the normalized rows keyed by both ids.
func (a *AdminController) populateCalendar(ctx *gin.Context) (any, *api.APIError) {
	var request packets.PopulateCalendarRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	label := model.StrategyLabel(request.Method)

	strategyID, err := a.store.FindStrategyIDByName(label)
	if err != nil {
		log.Error().Err(err).Str("label", label).Msg("strategy lookup failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "strategy lookup failed"}
	}
	if strategyID == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "unknown calculation method: " + label}
	}

	cityID, err := a.store.FindCityIDByName(request.City, request.Country)
	if err != nil {
		log.Error().Err(err).Str("city", request.City).Msg("city lookup failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "city lookup failed"}
	}
	if cityID == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "unknown city: " + request.City}
	}

	req := model.PrayerTimeRequest{
		Method:   request.Method,
		Duration: request.Duration,
		City:     request.City,
		Country:  request.Country,
	}
	days, err := a.resolver.ExecuteByName(ctx.Request.Context(), label, req)
	if err != nil {
		if errors.Is(err, strategy.ErrUnknownStrategy) || errors.Is(err, strategy.ErrParametersNotValid) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
		}
		log.Error().Err(err).Str("label", label).Msg("calendar fetch failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "upstream call failed"}
	}

	if err := a.store.InsertCalendarData(*strategyID, *cityID, days); err != nil {
		log.Error().Err(err).Msg("failed to store calendar rows")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to store calendar"}
	}

	return packets.PopulateCalendarResponse{
		StrategyID: *strategyID,
		CityID:     *cityID,
		Days:       len(days),
	}, nil
}

func toRequest(p packets.StrategyParams) model.PrayerTimeRequest {
	return model.PrayerTimeRequest{
		Method:   p.Method,
		Duration: p.Duration,
		Lat:      p.Lat,
		Lon:      p.Lon,
		City:     p.City,
		Country:  p.Country,
	}
}
