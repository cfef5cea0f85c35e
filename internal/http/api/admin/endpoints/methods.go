package endpoints

import (
	"context"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barakah-labs/minaret/internal/aladhan"
	"github.com/barakah-labs/minaret/internal/db"
	"github.com/barakah-labs/minaret/internal/http/api"
	"github.com/barakah-labs/minaret/internal/http/api/admin/packets"
	"github.com/barakah-labs/minaret/internal/model"
)

// MethodsClient fetches the upstream calculation-method catalog.
type MethodsClient interface {
	Methods(ctx context.Context) (map[string]aladhan.MethodEntry, error)
}

type MethodsController struct {
	client MethodsClient
	store  db.Store
}

func newMethodsController(client MethodsClient, store db.Store) *MethodsController {
	return &MethodsController{client: client, store: store}
}

// MethodsModule mounts the calculation-method catalog sync endpoints.
func MethodsModule(client MethodsClient, store db.Store) api.Module {
	ctl := newMethodsController(client, store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/methods/sync", ctl.syncMethods)
		c.GET("/methods", ctl.listMethods)
	})
}

// POST /api/admin/methods/sync
func (m *MethodsController) syncMethods(ctx *gin.Context) (any, *api.APIError) {
	catalog, err := m.client.Methods(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch method catalog")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "upstream call failed"}
	}

	methods := make([]model.CalculationMethod, 0, len(catalog))
	for _, entry := range catalog {
		methods = append(methods, model.CalculationMethod{
			MethodID: entry.ID,
			Name:     entry.Name,
		})
	}
	// catalog is a map; sort for a deterministic upsert order
	sort.Slice(methods, func(i, j int) bool { return methods[i].MethodID < methods[j].MethodID })

	inserted, updated, err := m.store.SaveCalculationMethods(methods)
	if err != nil {
		log.Error().Err(err).Msg("failed to save calculation methods")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to save methods"}
	}

	return packets.SyncMethodsResponse{Inserted: inserted, Updated: updated}, nil
}

// GET /api/admin/methods
func (m *MethodsController) listMethods(ctx *gin.Context) (any, *api.APIError) {
	methods, err := m.store.ListCalculationMethods()
	if err != nil {
		log.Error().Err(err).Msg("failed to list calculation methods")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list methods"}
	}
	return methods, nil
}
