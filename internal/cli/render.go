// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"github.com/alvinbaena/pwd-strength/pkg/checker"
	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"github.com/mgutz/ansi"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
)

var (
	scoreLabels = [...]string{"Very Weak", "Weak", "Fair", "Good", "Strong"}
	scoreColors = [...]string{"red+b", "208+b", "yellow+b", "green+h", "green+b"}

	red    = ansi.ColorFunc("red+b")
	green  = ansi.ColorFunc("green+b")
	yellow = ansi.ColorFunc("yellow")
)

func scoreLabel(score int) string {
	if score < 0 || score >= len(scoreLabels) {
		return "Unknown"
	}
	return scoreLabels[score]
}

func colorScore(score int, s string) string {
	if score < 0 || score >= len(scoreColors) {
		return s
	}
	return ansi.Color(s, scoreColors[score])
}

func renderResult(w io.Writer, res checker.CombinedResult) {
	p := message.NewPrinter(language.English)
	score := res.Strength.Score

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Password Strength: %s\n", colorScore(score, fmt.Sprintf("Score: %d/4 (%s)", score, scoreLabel(score))))

	if len(res.Strength.CrackTimes) > 0 {
		_, _ = fmt.Fprintln(w, "Estimated time to crack:")
		_, _ = fmt.Fprintf(w, "  - Online attack: %s\n", res.Strength.CrackTimes[strength.OnlineThrottling])
		_, _ = fmt.Fprintf(w, "  - Offline attack: %s\n", res.Strength.CrackTimes[strength.OfflineSlowHashing])
	}

	_, _ = fmt.Fprintln(w)
	switch {
	case res.Breach.Degraded():
		_, _ = fmt.Fprintf(w, "Breach Status: %s\n", yellow("check unavailable, try again later"))
	case res.Breach.Found:
		_, _ = fmt.Fprintf(w, "Breach Status: %s\n", red(p.Sprintf("found in %d breaches!", res.Breach.Count)))
		_, _ = fmt.Fprintln(w, "This password has been exposed in data breaches and should not be used.")
	default:
		_, _ = fmt.Fprintf(w, "Breach Status: %s\n", green("no breaches found"))
		_, _ = fmt.Fprintln(w, "This password hasn't been found in known data breaches.")
	}

	if res.Strength.Warning != "" {
		_, _ = fmt.Fprintf(w, "\nWarning: %s\n", yellow(res.Strength.Warning))
	}

	if len(res.Strength.Suggestions) > 0 {
		_, _ = fmt.Fprintln(w, "\nSuggestions to improve password strength:")
		for _, s := range res.Strength.Suggestions {
			_, _ = fmt.Fprintf(w, "  - %s\n", s)
		}
	} else if score >= 3 && !res.Breach.Found && !res.Breach.Degraded() {
		_, _ = fmt.Fprintf(w, "\n%s\n", green("Great password! It's strong and hasn't been found in known breaches."))
	}
}

// renderSummary is the one line version used by batch checks, the password is masked.
func renderSummary(w io.Writer, n int, masked string, res checker.CombinedResult) {
	p := message.NewPrinter(language.English)

	breach := green("not breached")
	if res.Breach.Degraded() {
		breach = yellow("breach check unavailable")
	} else if res.Breach.Found {
		breach = red(p.Sprintf("breached %d times", res.Breach.Count))
	}

	score := res.Strength.Score
	_, _ = fmt.Fprintf(w, "#%d %s %s %s\n", n, masked,
		colorScore(score, fmt.Sprintf("%d/4 (%s)", score, scoreLabel(score))), breach)
}
