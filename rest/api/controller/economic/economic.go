package economic

import (
	"github.com/alphaoracle/alphaoracle/rest/api"
	"github.com/alphaoracle/alphaoracle/rest/api/controller/entities"
)

func Indicators(ctx api.Context) {
	rows, err := ctx.Services().Indicator().WithTx(ctx.Tx()).List(0)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.List(rows, len(rows)))
}

func MarketData(ctx api.Context) {
	var ticker *string
	if q := ctx.URLParam("ticker"); q != "" {
		ticker = &q
	}

	rows, err := ctx.Services().MarketData().WithTx(ctx.Tx()).List(ticker, 0)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.List(rows, len(rows)))
}

func Risks(ctx api.Context) {
	rows, err := ctx.Services().GeoRisk().WithTx(ctx.Tx()).List()
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.List(rows, len(rows)))
}
