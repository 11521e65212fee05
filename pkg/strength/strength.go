// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	MinScore = 0
	MaxScore = 4
)

var ErrScoreOutOfRange = errors.New("strength score out of range")

// Result is the strength estimate of a single password. CrackTimes is keyed by attack scenario,
// see the Online*/Offline* constants.
type Result struct {
	Score       int               `json:"score"`
	Warning     string            `json:"warning"`
	Suggestions []string          `json:"suggestions"`
	CrackTimes  map[string]string `json:"crack_times"`
}

// Scorer estimates how guessable a password is.
type Scorer interface {
	Score(password string) (Result, error)
}

type Analyzer struct {
	scorer Scorer
	log    zerolog.Logger
}

func NewAnalyzer(scorer Scorer, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		scorer: scorer,
		log:    logger.With().Str("component", "strength").Logger(),
	}
}

// CheckStrength delegates the password to the scorer. Scorer failures are returned as is, a
// default score is never made up.
func (a *Analyzer) CheckStrength(password string) (Result, error) {
	a.log.Debug().Msg("checking password strength")

	res, err := a.scorer.Score(password)
	if err != nil {
		a.log.Error().Err(err).Msg("error scoring password")
		return Result{}, errors.Wrap(err, "score password")
	}

	if res.Score < MinScore || res.Score > MaxScore {
		return Result{}, errors.Wrapf(ErrScoreOutOfRange, "got %d", res.Score)
	}

	if res.Suggestions == nil {
		res.Suggestions = []string{}
	}

	a.log.Debug().Int("score", res.Score).Msg("password strength checked")
	return res, nil
}
