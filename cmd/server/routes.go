package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/barakah-labs/minaret/internal/aladhan"
	"github.com/barakah-labs/minaret/internal/db"
	"github.com/barakah-labs/minaret/internal/hijrisync"
	"github.com/barakah-labs/minaret/internal/http/api"
	adminapi "github.com/barakah-labs/minaret/internal/http/api/admin/endpoints"
	timesapi "github.com/barakah-labs/minaret/internal/http/api/times/endpoints"
	"github.com/barakah-labs/minaret/internal/strategy"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	client *aladhan.Client,
	resolver *strategy.Resolver,
	store db.Store,
	synchronizer *hijrisync.Synchronizer,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		timesapi.TimesModule(resolver, client),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
	},
		adminapi.StrategyModule(resolver, store),
		adminapi.MethodsModule(client, store),
		adminapi.HijriModule(synchronizer),
	)
}
