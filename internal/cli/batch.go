// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"github.com/alvinbaena/pwd-strength/internal/api"
	"github.com/alvinbaena/pwd-strength/internal/report"
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/alvinbaena/pwd-strength/pkg/checker"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/thinhdanggroup/executor"
	"io"
	"os"
	"runtime"
	"sync"
)

var (
	batchCmd = &cobra.Command{
		Use:   "batch",
		Short: "Check every password of a file, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return batchCommand(cmd.Context(), cmd.OutOrStdout())
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	batchCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "File with the passwords to check, one per line (required)")
	batchCmd.MarkFlagRequired("in-file")
	batchCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of passwords checked at the same time. If omitted or less than 1, defaults to the number of logical processors of the machine.")
	batchCmd.Flags().IntVar(&rate, "rate", 0, "Max range API requests per second, 0 for no limit")

	rootCmd.AddCommand(batchCmd)
}

func batchCommand(ctx context.Context, out io.Writer) error {
	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing passwords file")
		}
	}(file)

	passwords, err := readPasswords(file)
	if err != nil {
		return err
	}

	coordinator, cleanup, err := newCoordinator(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	s := util.Stats(logger)
	defer s()

	return checkBatch(ctx, coordinator, out, passwords, threads, rate)
}

// readPasswords empty lines are skipped.
func readPasswords(r io.Reader) ([]string, error) {
	var passwords []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			passwords = append(passwords, line)
		}
	}

	return passwords, errors.Wrap(scanner.Err(), "read passwords file")
}

// checkBatch runs the checks in a bounded pool and prints the results in file order. A failed
// password does not stop the others, all failures are returned together.
func checkBatch(ctx context.Context, p api.PasswordProcessor, out io.Writer, passwords []string, workers int, reqPerSecond int) error {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	tasks, err := executor.New(executor.Config{
		ReqPerSeconds: reqPerSecond,
		QueueSize:     2 * workers,
		NumWorkers:    workers,
	})
	if err != nil {
		return err
	}
	defer tasks.Close()

	logger.Info().Msgf("checking %d passwords with %d workers", len(passwords), workers)

	var (
		mu      sync.Mutex
		result  *multierror.Error
		results = make([]*checker.CombinedResult, len(passwords))
	)

	check := func(i int, password string) {
		res, err := p.ProcessPassword(ctx, password)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			logger.Error().Err(err).Msgf("error checking password #%d", i+1)
			result = multierror.Append(result, errors.Wrapf(err, "password #%d", i+1))
			return
		}
		results[i] = &res
	}

	for i, password := range passwords {
		if err = tasks.Publish(check, i, password); err != nil {
			return errors.Wrap(err, "queue password check")
		}
	}

	tasks.Wait()

	for i, res := range results {
		if res != nil {
			renderSummary(out, i+1, report.Mask(passwords[i]), *res)
		}
	}

	if err = result.ErrorOrNil(); err != nil {
		return &checkError{err: err}
	}

	return nil
}
