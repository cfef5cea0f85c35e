package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barakah-labs/minaret/internal/hijrisync"
	"github.com/barakah-labs/minaret/internal/http/api"
	"github.com/barakah-labs/minaret/internal/http/api/admin/packets"
	"github.com/barakah-labs/minaret/internal/model"
)

type HijriController struct {
	sync *hijrisync.Synchronizer
}

func newHijriController(sync *hijrisync.Synchronizer) *HijriController {
	return &HijriController{sync: sync}
}

// HijriModule mounts the Hijri calendar synchronization endpoint.
func HijriModule(sync *hijrisync.Synchronizer) api.Module {
	ctl := newHijriController(sync)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/hijri/:year/sync", ctl.syncYear)
	})
}

// POST /api/admin/hijri/:year/sync
func (h *HijriController) syncYear(ctx *gin.Context) (any, *api.APIError) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid year"}
	}

	boundaries, err := h.sync.SyncYear(ctx.Request.Context(), year)
	resp := packets.HijriSyncResponse{
		Year:       year,
		Boundaries: toBoundaryEntries(boundaries),
	}

	if err != nil {
		// an empty upstream year is reported, not treated as a failure
		if errors.Is(err, hijrisync.ErrNoDataForYear) {
			log.Warn().Int("year", year).Msg("hijri sync found no data for year")
			resp.Warning = "no data for year"
			return resp, nil
		}
		log.Error().Err(err).Int("year", year).Msg("hijri sync failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "hijri sync failed"}
	}

	return resp, nil
}

func toBoundaryEntries(boundaries []model.HijriMonthBoundary) []packets.HijriBoundaryEntry {
	out := make([]packets.HijriBoundaryEntry, 0, len(boundaries))
	for _, b := range boundaries {
		out = append(out, packets.HijriBoundaryEntry{
			Month:          b.Month,
			GregorianFirst: b.GregorianFirst,
			HijriFirst:     b.HijriFirst,
			HijriLast:      b.HijriLast,
		})
	}
	return out
}
