package api

import (
	"sync"

	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/alphaoracle/alphaoracle/service/registry"
	"github.com/alphaoracle/alphaoracle/utils/log"
	"github.com/kataras/iris"
)

// API holds the request context pool and the services for the
// dashboard API
type API struct {
	pool     *sync.Pool
	services registry.Registry
}

// New intializes the API
func New(services registry.Registry) *API {
	var contextPool = sync.Pool{New: func() interface{} {
		return &context{}
	}}

	return &API{
		pool:     &contextPool,
		services: services,
	}
}

func (api *API) acquire(original iris.Context) Context {
	ctx := api.pool.Get().(*context)
	ctx.tx = nil
	ctx.txClosed.Store(true)
	ctx.Context = original
	ctx.services = api.services
	return ctx
}

func (api *API) release(ctx Context) {
	api.pool.Put(ctx)
}

func (api *API) Handler(h func(Context)) iris.Handler {
	return func(original iris.Context) {
		ctx := api.acquire(original)

		// rollback on panic, and propagate up
		defer func() {
			if r := recover(); r != nil {
				ctx.Rollback()
				log.Panic("http request panic", "error", r)
			}
		}()

		h(ctx)

		api.release(ctx)
	}
}

func (api *API) RouteNotFound(ctx Context) {
	ctx.RespondError(oraerrors.NotFound.WithMsg("endpoint not found"))
}
