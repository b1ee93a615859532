package api

import (
	"encoding/json"
	"sync/atomic"

	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/alphaoracle/alphaoracle/service/registry"
	"github.com/alphaoracle/alphaoracle/utils"
	"github.com/alphaoracle/alphaoracle/utils/db"
	"github.com/alphaoracle/alphaoracle/utils/log"
	"github.com/jinzhu/gorm"
	"github.com/kataras/iris"
)

// MIME types
const (
	charsetUTF8 = "charset=utf-8"
)
const (
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationJSONCharsetUTF8 = MIMEApplicationJSON + "; " + charsetUTF8
)

type Context interface {
	iris.Context
	Services() registry.Registry
	Commit() error
	Rollback()
	Tx() *gorm.DB
	Respond(interface{})
	RespondWithStatus(interface{}, int)
	RespondError(error)
	Read(interface{}) error
}

type context struct {
	iris.Context
	services registry.Registry
	tx       *gorm.DB
	txClosed atomic.Value
}

func (ctx *context) Services() registry.Registry {
	return ctx.services
}

func (ctx *context) Commit() error {
	if !ctx.TxClosed() && ctx.tx != nil {
		ctx.txClosed.Store(true)
		log.Debug("api tx committed", "path", ctx.RequestPath(false))
		err := ctx.tx.Commit().Error
		ctx.tx = nil
		return err
	}
	return nil
}

func (ctx *context) Rollback() {
	if !ctx.TxClosed() && ctx.tx != nil {
		ctx.txClosed.Store(true)
		log.Debug("api tx rolled back", "path", ctx.RequestPath(false))
		if !db.IsConnectionError(ctx.tx.Error) {
			ctx.tx.Rollback()
		}
		ctx.tx = nil
	}
}

func (ctx *context) TxClosed() bool {
	if v := ctx.txClosed.Load(); v != nil && v.(bool) {
		return true
	}
	return false
}

func (ctx *context) Tx() *gorm.DB {
	if ctx.tx == nil || ctx.TxClosed() {
		log.Debug("api tx opened", "path", ctx.RequestPath(false))
		ctx.tx = db.Begin()

		if ctx.tx.Error != nil && db.IsConnectionError(ctx.tx.Error) {
			// This is mainly for the case when a long idle connection
			// got killed at tcp level by an in-between router/switch.
			// Worth retrying.
			if err := db.Reconnect(); err != nil {
				log.Panic("unable to connect to database", "error", err)
			}

			// we reconnected, and begin still fails - panic!
			if ctx.tx = db.Begin(); ctx.tx.Error != nil {
				log.Panic("unable to begin database transaction", "error", ctx.tx.Error)
			}
		} else if ctx.tx.Error != nil {
			err := ctx.tx.Error
			ctx.tx = nil
			log.Panic("unrecoverable BEGIN failure", "error", err)
		}
		ctx.txClosed.Store(false)
	}

	return ctx.tx
}

func (ctx *context) Respond(body interface{}) {
	ctx.RespondWithStatus(body, iris.StatusOK)
}

func (ctx *context) RespondWithStatus(body interface{}, statusCode int) {
	if err := ctx.Commit(); err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.StatusCode(statusCode)
	ctx.ContentType(MIMEApplicationJSON)

	if body != nil {
		ctx.JSON(body)
	}
}

func (ctx *context) RespondError(err error) {
	ctx.Rollback()

	if oraerr, ok := err.(oraerrors.IException); ok {
		ctx.StatusCode(oraerr.ExceptionStatusCode())
		body := oraerr.ExceptionBody()
		if !utils.Prod() {
			if oraerr.RawException() != nil {
				body["debug"] = oraerr.RawException().Error()
			}
		}
		ctx.JSON(body)
	} else {
		ctx.StatusCode(oraerrors.InternalServerError.ExceptionStatusCode())
		ctx.JSON(oraerrors.InternalServerError.ExceptionBody())
	}

	// We'll track only status_code = 500 errors in detail for further
	// investigation.
	if ctx.GetStatusCode() != 500 {
		return
	}

	var reqBody string
	parsing := map[string]interface{}{}
	if err := ctx.Read(&parsing); err == nil {
		reqBin, _ := json.Marshal(parsing)
		reqBody = string(reqBin)
	}

	log.Error(
		"http exception",
		"method", ctx.Request().Method,
		"url", ctx.Request().URL.String(),
		"error", oraerrors.Format(err),
		"body", reqBody,
	)
}

func (ctx *context) Read(v interface{}) error {
	if v == nil {
		return nil
	}
	return ctx.ReadJSON(v)
}
