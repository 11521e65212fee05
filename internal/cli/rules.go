// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"github.com/alvinbaena/pwd-strength/internal/report"
	"github.com/alvinbaena/pwd-strength/internal/rules"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"io"
)

var (
	rulesCmd = &cobra.Command{
		Use:   "rules [password]",
		Short: "Offline checklist check of a password (length, character classes, common passwords)",
		Long: "Checks a password against a simple checklist, without zxcvbn nor the Pwned Passwords API. " +
			"The result can be appended to a report file, the password is masked in it",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			common, err := rules.LoadCommonPasswords(commonFile)
			if err != nil {
				return err
			}

			if interactive {
				return rulesInteractive(cmd.OutOrStdout(), common)
			}

			if args[0] == "" {
				return errEmptyPassword
			}

			return rulesCommand(cmd.OutOrStdout(), args[0], common, reportFile)
		},
	}
)

func init() {
	rulesCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. The password is read from a masked prompt")
	rulesCmd.Flags().StringVar(&reportFile, "report", "", "Append the result to this report file")
	rulesCmd.Flags().StringVar(&commonFile, "common", rules.DefaultCommonPasswordsFile, "File with common passwords, one per line")

	rootCmd.AddCommand(rulesCmd)
}

func renderVerdict(w io.Writer, v rules.Verdict) {
	level := string(v.Level)
	switch v.Level {
	case rules.Strong:
		level = green(level)
	case rules.Moderate:
		level = yellow(level)
	default:
		level = red(level)
	}

	_, _ = fmt.Fprintf(w, "\nPassword Strength: %s\n", level)
	if len(v.Remarks) > 0 {
		_, _ = fmt.Fprintln(w, "Suggestions to Improve:")
		for _, remark := range v.Remarks {
			_, _ = fmt.Fprintf(w, "- %s\n", remark)
		}
	}
}

func rulesCommand(out io.Writer, password string, common map[string]struct{}, reportTo string) error {
	v := rules.Check(password, common)
	renderVerdict(out, v)

	if reportTo == "" {
		return nil
	}

	if err := report.Append(reportTo, password, string(v.Level), v.Remarks); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "Report saved successfully")
	return nil
}

func rulesInteractive(out io.Writer, common map[string]struct{}) error {
	prompt := passwordPrompt()
	password, err := prompt.Run()
	if err != nil {
		if isPromptExit(err) {
			return nil
		}
		return err
	}

	v := rules.Check(password, common)
	renderVerdict(out, v)

	target := reportFile
	if target == "" {
		target = report.DefaultFile
	}

	confirm := promptui.Prompt{
		Label:     "Do you want to save the password report",
		IsConfirm: true,
	}
	if _, err = confirm.Run(); err != nil {
		_, _ = fmt.Fprintln(out, "Report not saved.")
		return nil
	}

	if err = report.Append(target, password, string(v.Level), v.Remarks); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "Report saved successfully")
	return nil
}
