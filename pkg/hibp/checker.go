// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package hibp

import (
	"context"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"strconv"
	"strings"
	"time"
)

// BreachResult Count is always >= 0 and Found is true only when Count > 0. Error is only set when
// the range API could not be reached, in which case Found and Count are zero.
type BreachResult struct {
	Found bool   `json:"found"`
	Count int64  `json:"count"`
	Error string `json:"error,omitempty"`
}

// Degraded the breach check could not be completed.
func (b BreachResult) Degraded() bool {
	return b.Error != ""
}

type Checker struct {
	client  LookupClient
	timeout time.Duration
	log     zerolog.Logger
}

func NewChecker(client LookupClient, timeout time.Duration, logger zerolog.Logger) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Checker{
		client:  client,
		timeout: timeout,
		log:     logger.With().Str("component", "breach").Logger(),
	}
}

// CheckBreach looks the password up in the Pwned Passwords range API. API availability problems
// give a degraded result instead of an error, anything else is returned.
func (c *Checker) CheckBreach(ctx context.Context, password string) (BreachResult, error) {
	prefix, suffix := HashPassword(password)
	c.log.Debug().Str("prefix", prefix).Msg("checking if password has been breached")

	lookupCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	lines, err := c.client.Range(lookupCtx, prefix)
	if err != nil {
		// The caller gave up, that is not an API availability problem.
		if errors.Is(ctx.Err(), context.Canceled) {
			return BreachResult{}, errors.Wrap(ctx.Err(), "range lookup")
		}

		if IsTransport(err) {
			c.log.Error().Err(err).Msg("range API unavailable, breach check skipped")
			return BreachResult{Error: err.Error()}, nil
		}

		return BreachResult{}, errors.Wrap(err, "range lookup")
	}

	count, err := findCount(lines, suffix)
	if err != nil {
		return BreachResult{}, err
	}

	res := BreachResult{Found: count > 0, Count: count}
	c.log.Info().Bool("found", res.Found).Int64("count", res.Count).Msg("breach check completed")
	return res, nil
}

// findCount scans the SUFFIX:COUNT lines of a range response. Lines without a separator are
// skipped. Only the count of the matching line is parsed. Errors never carry the suffix, it is
// the password's own hash.
func findCount(lines []string, suffix string) (int64, error) {
	for _, line := range lines {
		hash, count, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}

		if strings.ToUpper(strings.TrimSpace(hash)) != suffix {
			continue
		}

		n, err := strconv.ParseInt(strings.TrimSpace(count), 10, 64)
		if err != nil || n < 0 {
			return 0, errors.Wrapf(ErrMalformedCount, "count %q", count)
		}

		// Padding entries carry a 0 count.
		return n, nil
	}

	return 0, nil
}
