package httplogger

import (
	"time"

	"github.com/alphaoracle/alphaoracle/utils/log"
	"github.com/kataras/iris"
	"github.com/kataras/iris/context"
)

type HTTPLogger struct{}

func New() iris.Handler {
	m := HTTPLogger{}
	return m.ServeHTTP
}

func (h *HTTPLogger) ServeHTTP(ctx context.Context) {
	start := time.Now()
	ctx.Next()
	end := time.Now()

	log.Debug("httplog",
		"method", ctx.Method(),
		"path", ctx.Path(),
		"query", ctx.Request().URL.RawQuery,
		"status_code", ctx.GetStatusCode(),
		"elapsed", end.Sub(start).Seconds(),
		"ip", ctx.RemoteAddr(),
	)
}
