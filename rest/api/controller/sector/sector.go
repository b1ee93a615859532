package sector

import (
	"github.com/alphaoracle/alphaoracle/engine"
	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/alphaoracle/alphaoracle/rest/api"
	"github.com/alphaoracle/alphaoracle/rest/api/controller/entities"
)

func List(ctx api.Context) {
	sectors, err := ctx.Services().Sector().WithTx(ctx.Tx()).List()
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.List(sectors, len(sectors)))
}

// Get serves the full sector analysis: the sector row, its top picks
// and the aggregate statistics over them.
func Get(ctx api.Context) {
	name := ctx.Params().Get("name")
	if name == "" {
		ctx.RespondError(oraerrors.InvalidRequestParam.WithMsg("sector name is required"))
		return
	}

	analysis, err := engine.New(ctx.Services()).AnalyzeSector(ctx.Tx(), name)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.Item(analysis))
}
