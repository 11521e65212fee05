// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"github.com/alvinbaena/pwd-strength/internal/api"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
)

var errEmptyPassword = errors.New("please enter a password")

var (
	checkCmd = &cobra.Command{
		Use:   "check [password]",
		Short: "Check the strength of a password and if it is present in the Pwned Passwords dumps",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.ExactArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return checkInteractive(cmd)
			}

			return checkCommand(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
)

func init() {
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. The password is read from a masked prompt")

	rootCmd.AddCommand(checkCmd)
}

func passwordPrompt() promptui.Prompt {
	return promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) == 0 {
				return errEmptyPassword
			}
			return nil
		},
	}
}

// isPromptExit ^C and ^D end the session, they are not errors.
func isPromptExit(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}

func checkCommand(ctx context.Context, out io.Writer, password string) error {
	if password == "" {
		return errEmptyPassword
	}

	coordinator, cleanup, err := newCoordinator(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return checkPassword(ctx, coordinator, out, password)
}

func checkPassword(ctx context.Context, p api.PasswordProcessor, out io.Writer, password string) error {
	res, err := p.ProcessPassword(ctx, password)
	if err != nil {
		return &checkError{err: err}
	}

	renderResult(out, res)
	return nil
}

func checkInteractive(cmd *cobra.Command) error {
	coordinator, cleanup, err := newCoordinator(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	prompt := passwordPrompt()
	logger.Info().Msg("running interactive session. ^C to exit")
	for {
		password, err := prompt.Run()
		if err != nil {
			if isPromptExit(err) {
				logger.Info().Msg("goodbye")
				return nil
			}
			return err
		}

		if err = checkPassword(cmd.Context(), coordinator, cmd.OutOrStdout(), password); err != nil {
			logger.Error().Err(err).Msg("error during interactive session")
			cmd.PrintErrln("Error:", userMessage(err))
		}
	}
}
