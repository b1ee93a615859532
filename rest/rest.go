// The rest package defines the alpha oracle RESTful API service
package rest

import (
	"context"

	"github.com/alphaoracle/alphaoracle/rest/api"
	"github.com/alphaoracle/alphaoracle/rest/api/binder"
	"github.com/alphaoracle/alphaoracle/rest/api/controller/health"
	"github.com/alphaoracle/alphaoracle/service/registry"
	"github.com/alphaoracle/alphaoracle/utils"
	"github.com/kataras/iris"
)

var app *iris.Application

func Start(port string, services registry.Registry) error {
	return run((":" + port), services)
}

func Shutdown(ctx context.Context) error {
	if app != nil {
		return app.Shutdown(ctx)
	}
	return nil
}

func bindAPI(apis *api.API, b func(*api.API, iris.Party)) func(iris.Party) {
	return func(r iris.Party) {
		b(apis, r)
	}
}

func run(host string, services registry.Registry) error {
	app = iris.New()

	if utils.Dev() {
		app.Logger().SetLevel("debug")
	}

	apis := api.New(services)

	// dashboard API
	app.PartyFunc("/api", bindAPI(apis, binder.Dashboard))

	// health probe
	app.HandleMany("GET HEAD", "/health", apis.Handler(health.Get))

	// service info
	app.Get("/", func(ctx iris.Context) {
		ctx.StatusCode(iris.StatusOK)
		ctx.JSON(struct {
			Service   string   `json:"service"`
			Version   string   `json:"version"`
			Status    string   `json:"status"`
			Endpoints []string `json:"endpoints"`
		}{
			"Alpha Oracle API",
			utils.Version,
			"operational",
			[]string{
				"/health",
				"/api/sectors",
				"/api/sectors/{name}",
				"/api/recommendations",
				"/api/recommendations/top",
				"/api/recommendations/growth",
				"/api/recommendations/value",
				"/api/recommendations/defensive",
				"/api/recommendations/contrarian",
				"/api/economic/indicators",
				"/api/economic/market-data",
				"/api/economic/risks",
			},
		})
	})

	return app.Run(
		iris.Addr(host),
		iris.WithConfiguration(iris.Configuration{
			// Disable it to re-fetch request body again for logging purpose.
			DisableBodyConsumptionOnUnmarshal: true,
			// Enable real IP forwarding, which is reliable when it is on private proxy.
			RemoteAddrHeaders: map[string]bool{
				"X-Forwarded-For": true,
			},
		}),
		iris.WithoutInterruptHandler,
	)
}
