// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/alvinbaena/pwd-strength/internal/config"
	"github.com/alvinbaena/pwd-strength/pkg/checker"
	"github.com/alvinbaena/pwd-strength/pkg/hibp"
	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// errCheckFailed marks failures that are not the user's fault. Their details go to the log only.
var errCheckFailed = errors.New("an unexpected error occurred while checking the password")

type checkError struct {
	err error
}

func (e *checkError) Error() string { return e.err.Error() }

func (e *checkError) Unwrap() error { return e.err }

func (e *checkError) Is(target error) bool { return target == errCheckFailed }

func userMessage(err error) string {
	if errors.Is(err, errCheckFailed) {
		return errCheckFailed.Error()
	}

	return err.Error()
}

// newCoordinator wires the strength and breach checks from the configuration. The returned func
// releases the range cache, if any.
func newCoordinator(cfg config.Config, logger zerolog.Logger) (*checker.Coordinator, func(), error) {
	var client hibp.LookupClient = hibp.NewHTTPClient(
		hibp.WithBaseURL(cfg.HibpApiUrl),
		hibp.WithUserAgent(cfg.HibpUserAgent),
		hibp.WithTimeout(cfg.HibpTimeout),
		hibp.WithPadding(cfg.HibpPadding),
		hibp.WithLogger(logger.With().Str("component", "range_client").Logger()),
	)

	cleanup := func() {}
	if cfg.HibpCacheSize > 0 {
		cached, err := hibp.NewCachedClient(client, cfg.HibpCacheSize, cfg.HibpCacheTTL)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug().Msgf("caching up to %d hash ranges for %v", cfg.HibpCacheSize, cfg.HibpCacheTTL)
		client = cached
		cleanup = cached.Close
	}

	c := checker.NewCoordinator(
		strength.NewAnalyzer(strength.NewZxcvbnScorer(cfg.MaxPasswordLength), logger),
		hibp.NewChecker(client, cfg.HibpTimeout, logger),
		logger,
	)

	return c, cleanup, nil
}
