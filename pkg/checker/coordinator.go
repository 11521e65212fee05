// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package checker

import (
	"context"
	"github.com/alvinbaena/pwd-strength/pkg/hibp"
	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// CombinedResult always carries both results, even when the breach check was degraded.
type CombinedResult struct {
	Strength strength.Result   `json:"strength"`
	Breach   hibp.BreachResult `json:"breach"`
}

type StrengthChecker interface {
	CheckStrength(password string) (strength.Result, error)
}

type BreachChecker interface {
	CheckBreach(ctx context.Context, password string) (hibp.BreachResult, error)
}

type Coordinator struct {
	strength StrengthChecker
	breach   BreachChecker
	log      zerolog.Logger
}

func NewCoordinator(s StrengthChecker, b BreachChecker, logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		strength: s,
		breach:   b,
		log:      logger.With().Str("component", "coordinator").Logger(),
	}
}

// ProcessPassword runs both checks concurrently and merges them. The first hard failure of either
// is returned unchanged and no partial result is produced.
func (c *Coordinator) ProcessPassword(ctx context.Context, password string) (CombinedResult, error) {
	c.log.Info().Msg("processing password")

	var res CombinedResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		res.Strength, err = c.strength.CheckStrength(password)
		return
	})

	g.Go(func() (err error) {
		res.Breach, err = c.breach.CheckBreach(gctx, password)
		return
	})

	if err := g.Wait(); err != nil {
		c.log.Error().Err(err).Msg("error processing password")
		return CombinedResult{}, err
	}

	c.log.Info().
		Int("score", res.Strength.Score).
		Bool("breached", res.Breach.Found).
		Bool("breach_degraded", res.Breach.Degraded()).
		Msg("password processed")
	return res, nil
}
