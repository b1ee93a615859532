package binder

import (
	"github.com/alphaoracle/alphaoracle/rest/api"
	"github.com/alphaoracle/alphaoracle/rest/api/controller/economic"
	"github.com/alphaoracle/alphaoracle/rest/api/controller/recommendation"
	"github.com/alphaoracle/alphaoracle/rest/api/controller/sector"
	"github.com/alphaoracle/alphaoracle/rest/api/middleware/httplogger"
	"github.com/alphaoracle/alphaoracle/utils"
	"github.com/iris-contrib/middleware/cors"
	"github.com/kataras/iris"
	"github.com/kataras/iris/core/router"
)

// Dashboard binds all of the dashboard API handlers to their
// respective endpoints
func Dashboard(a *api.API, r iris.Party) {
	r.Use(httplogger.New())

	// CORS
	{
		getOrigins := func() []string {
			switch {
			case utils.Prod():
				return []string{"https://app.alphaoracle.io"}
			default:
				// staging/dev mode
				return []string{"*"}
			}
		}

		crs := cors.New(cors.Options{
			AllowedOrigins: getOrigins(),
			AllowedMethods: []string{
				iris.MethodGet,
				iris.MethodOptions,
			},
			AllowedHeaders:     []string{"*"},
			AllowCredentials:   true,
			OptionsPassthrough: false,
		})

		r.Use(crs)
		r.AllowMethods(iris.MethodOptions) // <- important for the preflight.
	}

	// sectors
	r.Get("/sectors", a.Handler(sector.List))
	r.Get("/sectors/{name}", a.Handler(sector.Get))

	// recommendations
	r.Get("/recommendations", a.Handler(recommendation.List))
	r.Get("/recommendations/top", a.Handler(recommendation.Top))
	r.Get("/recommendations/growth", a.Handler(recommendation.Growth))
	r.Get("/recommendations/value", a.Handler(recommendation.Value))
	r.Get("/recommendations/defensive", a.Handler(recommendation.Defensive))
	r.Get("/recommendations/contrarian", a.Handler(recommendation.Contrarian))

	// economic data
	r.Get("/economic/indicators", a.Handler(economic.Indicators))
	r.Get("/economic/market-data", a.Handler(economic.MarketData))
	r.Get("/economic/risks", a.Handler(economic.Risks))

	// iris v11.1 exposes OnErrorCode on *router.APIBuilder only; the
	// Party passed by PartyFunc is always that concrete type.
	r.(*router.APIBuilder).OnErrorCode(iris.StatusNotFound, a.Handler(a.RouteNotFound))
}
