package recommendation

import (
	"fmt"
	"strconv"

	"github.com/alphaoracle/alphaoracle/engine"
	"github.com/alphaoracle/alphaoracle/models"
	"github.com/alphaoracle/alphaoracle/models/enum"
	"github.com/alphaoracle/alphaoracle/oraerrors"
	"github.com/alphaoracle/alphaoracle/rest/api"
	"github.com/alphaoracle/alphaoracle/rest/api/controller/entities"
	"github.com/jinzhu/gorm"
)

const (
	defaultListLimit = 20
	defaultPickLimit = 10
)

// List serves the combined filter query. Every parameter is optional;
// unknown or malformed values are rejected rather than coerced.
func List(ctx api.Context) {
	filters := engine.Filters{}

	if q := ctx.URLParam("strategy"); q != "" {
		s := enum.Strategy(q)
		if !s.Valid() {
			ctx.RespondError(oraerrors.InvalidRequestParam.WithMsg(
				fmt.Sprintf("unknown strategy %q", q)))
			return
		}
		filters.Strategy = &s
	}

	if q := ctx.URLParam("min_conviction"); q != "" {
		min, err := strconv.ParseFloat(q, 64)
		if err != nil {
			ctx.RespondError(oraerrors.InvalidRequestParam.WithMsg(
				fmt.Sprintf("min_conviction %q is not a number", q)))
			return
		}
		filters.MinConviction = &min
	}

	if q := ctx.URLParam("sector"); q != "" {
		filters.Sector = &q
	}

	if q := ctx.URLParam("risk_level"); q != "" {
		level := enum.RiskLevel(q)
		if !level.Valid() {
			ctx.RespondError(oraerrors.InvalidRequestParam.WithMsg(
				fmt.Sprintf("unknown risk_level %q", q)))
			return
		}
		filters.RiskLevel = &level
	}

	limit, err := limitParam(ctx, defaultListLimit)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	recs, err := engine.New(ctx.Services()).Filter(ctx.Tx(), filters, limit)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.List(recs, len(recs)))
}

func Top(ctx api.Context) {
	respondPicks(ctx, func(e *engine.Engine, tx *gorm.DB, limit int) ([]*models.Recommendation, error) {
		return e.TopOpportunities(tx, limit)
	})
}

func Growth(ctx api.Context) {
	respondPicks(ctx, (*engine.Engine).GrowthPicks)
}

func Value(ctx api.Context) {
	respondPicks(ctx, (*engine.Engine).ValuePicks)
}

func Defensive(ctx api.Context) {
	respondPicks(ctx, (*engine.Engine).DefensivePicks)
}

func Contrarian(ctx api.Context) {
	respondPicks(ctx, (*engine.Engine).ContrarianPicks)
}

func respondPicks(ctx api.Context, pick func(*engine.Engine, *gorm.DB, int) ([]*models.Recommendation, error)) {
	limit, err := limitParam(ctx, defaultPickLimit)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	recs, err := pick(engine.New(ctx.Services()), ctx.Tx(), limit)
	if err != nil {
		ctx.RespondError(err)
		return
	}

	ctx.Respond(entities.List(recs, len(recs)))
}

func limitParam(ctx api.Context, fallback int) (int, error) {
	q := ctx.URLParam("limit")
	if q == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(q)
	if err != nil || limit < 1 {
		return 0, oraerrors.InvalidRequestParam.WithMsg(
			fmt.Sprintf("limit %q is not a positive integer", q))
	}

	return limit, nil
}
