// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"github.com/alvinbaena/pwd-strength/internal/config"
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	_ "net/http/pprof"
	"os"
)

var (
	cfg    config.Config
	logger = zerolog.Nop()

	rootCmd = &cobra.Command{
		Use:   "pwdstrength [COMMAND] [OPTIONS]",
		Short: "Check how strong a password is and if it has been pwned",
		Long: "Estimate the strength of a password with zxcvbn and check it against the Pwned Passwords " +
			"(haveibeenpwned.com) range API. Only the first 5 characters of the SHA1 hash of the password ever leave this machine",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if cfg, err = config.Load(); err != nil {
				return err
			}

			logger = util.NewLogger(os.Stderr, cfg.LogLevel, verbose, isatty.IsTerminal(os.Stderr.Fd()))
			if profile {
				util.StartProfiler(logger, pprofPort)
			}

			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
}

// Execute hard failures are logged with all their context, the user only gets a generic message.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", userMessage(err))
		return err
	}

	return nil
}
