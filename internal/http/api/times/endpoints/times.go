package endpoints

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barakah-labs/minaret/internal/aladhan"
	"github.com/barakah-labs/minaret/internal/http/api"
	"github.com/barakah-labs/minaret/internal/http/api/times/packets"
	"github.com/barakah-labs/minaret/internal/model"
	"github.com/barakah-labs/minaret/internal/strategy"
)

// MethodsClient is the slice of the upstream client the public surface uses.
type MethodsClient interface {
	Methods(ctx context.Context) (map[string]aladhan.MethodEntry, error)
}

type TimesController struct {
	resolver *strategy.Resolver
	client   MethodsClient
}

func newTimesController(resolver *strategy.Resolver, client MethodsClient) *TimesController {
	return &TimesController{resolver: resolver, client: client}
}

// TimesModule mounts the public prayer-times endpoints.
func TimesModule(resolver *strategy.Resolver, client MethodsClient) api.Module {
	ctl := newTimesController(resolver, client)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/times", ctl.getPrayerTimes)
		c.GET("/methods", ctl.getMethods)
	})
}

// GET /api/times
func (t *TimesController) getPrayerTimes(ctx *gin.Context) (any, *api.APIError) {
	req := requestFromQuery(ctx)

	days, err := t.resolver.GetPrayerTimes(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, strategy.ErrNoStrategyFound) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: err.Error()}
		}
		log.Error().Err(err).Msg("failed to get prayer times")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "upstream call failed"}
	}

	return toResponses(days), nil
}

// GET /api/methods
func (t *TimesController) getMethods(ctx *gin.Context) (any, *api.APIError) {
	catalog, err := t.client.Methods(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch method catalog")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "upstream call failed"}
	}
	return catalog, nil
}

// requestFromQuery maps query parameters onto the request shape.
// Absent or malformed numeric fields become -1/0 so the coordinate
// predicate rejects them and resolution falls through to ByCity.
func requestFromQuery(ctx *gin.Context) model.PrayerTimeRequest {
	req := model.PrayerTimeRequest{
		Method:  -1,
		City:    ctx.Query("city"),
		Country: ctx.Query("country"),
	}

	if v, err := strconv.Atoi(ctx.Query("method")); err == nil {
		req.Method = v
	}
	if v, err := strconv.Atoi(ctx.Query("duration")); err == nil {
		req.Duration = v
	}
	if v, err := strconv.ParseFloat(ctx.Query("lat"), 64); err == nil {
		req.Lat = &v
	}
	if v, err := strconv.ParseFloat(ctx.Query("lon"), 64); err == nil {
		req.Lon = &v
	}
	return req
}

func toResponses(days []model.PrayerDay) []packets.PrayerDayResponse {
	out := make([]packets.PrayerDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, packets.PrayerDayResponse{
			Date: d.Date,
			Timings: packets.TimingsResponse{
				Fajr:    d.Timings.Fajr,
				Shurooq: d.Timings.Shurooq,
				Dhuhr:   d.Timings.Dhuhr,
				Asr:     d.Timings.Asr,
				Maghrib: d.Timings.Maghrib,
				Isha:    d.Timings.Isha,
			},
		})
	}
	return out
}
