// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"errors"
	"github.com/nbutton23/zxcvbn-go/match"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type stubScorer struct {
	res Result
	err error
}

func (s stubScorer) Score(string) (Result, error) {
	return s.res, s.err
}

func newAnalyzer(s Scorer) *Analyzer {
	return NewAnalyzer(s, zerolog.Nop())
}

func TestAnalyzer_EmptyPassword(t *testing.T) {
	res, err := newAnalyzer(NewZxcvbnScorer(0)).CheckStrength("")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.Warning)
	assert.Equal(t, defaultSuggestions, res.Suggestions)
	assert.Len(t, res.CrackTimes, 4)
}

func TestAnalyzer_CommonPassword(t *testing.T) {
	res, err := newAnalyzer(NewZxcvbnScorer(0)).CheckStrength("password")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Score)
	assert.Contains(t, res.Suggestions, addWord)
	assert.Equal(t, "less than a second", res.CrackTimes[OfflineFastHashing])
}

func TestAnalyzer_StrongPassword(t *testing.T) {
	res, err := newAnalyzer(NewZxcvbnScorer(0)).CheckStrength("hK8#vQ2!zL9$wR4@mN7^bX1&cF5*")
	require.NoError(t, err)

	assert.Equal(t, 4, res.Score)
	assert.Empty(t, res.Warning)
	assert.Empty(t, res.Suggestions)
	assert.Equal(t, "centuries", res.CrackTimes[OnlineThrottling])
}

func TestAnalyzer_ScoreAlwaysInRange(t *testing.T) {
	a := newAnalyzer(NewZxcvbnScorer(0))
	for _, pwd := range []string{"a", "123456", "qwerty", "aaaaaaaa", "abcdef", "1990-01-01", "P@ssw0rd",
		"Tr0ub4dour&3", "correct horse battery staple", strings.Repeat("x9", 150)} {
		res, err := a.CheckStrength(pwd)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score, MinScore)
		assert.LessOrEqual(t, res.Score, MaxScore)
		assert.Len(t, res.CrackTimes, 4)
	}
}

func TestAnalyzer_ScorerError(t *testing.T) {
	boom := errors.New("boom")
	res, err := newAnalyzer(stubScorer{err: boom}).CheckStrength("password")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Result{}, res)
}

func TestAnalyzer_ScoreOutOfRange(t *testing.T) {
	_, err := newAnalyzer(stubScorer{res: Result{Score: 5}}).CheckStrength("password")
	assert.ErrorIs(t, err, ErrScoreOutOfRange)

	_, err = newAnalyzer(stubScorer{res: Result{Score: -1}}).CheckStrength("password")
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
}

func TestAnalyzer_NilSuggestions(t *testing.T) {
	res, err := newAnalyzer(stubScorer{res: Result{Score: 3}}).CheckStrength("whatever")
	require.NoError(t, err)
	assert.NotNil(t, res.Suggestions)
}

func TestDisplayTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "less than a second"},
		{0.99, "less than a second"},
		{1, "1 second"},
		{45, "45 seconds"},
		{60, "1 minute"},
		{3 * hour, "3 hours"},
		{day, "1 day"},
		{2 * month, "2 months"},
		{5 * year, "5 years"},
		{century, "centuries"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, displayTime(tt.seconds), "seconds %v", tt.seconds)
	}
}

func TestAnalyzer_L33tPassword(t *testing.T) {
	a := newAnalyzer(NewZxcvbnScorer(0))
	for _, pwd := range []string{"P@ssw0rd", "p4ssw0rd"} {
		res, err := a.CheckStrength(pwd)
		require.NoError(t, err)

		assert.Equal(t, "This is similar to a commonly used password", res.Warning, pwd)
		assert.Contains(t, res.Suggestions, "Predictable substitutions like '@' instead of 'a' don't help very much", pwd)
	}
}

func TestFeedback(t *testing.T) {
	tests := []struct {
		name        string
		score       int
		password    string
		sequence    []match.Match
		warning     string
		suggestions []string
	}{
		{
			name:        "strong",
			score:       3,
			password:    "xK9!",
			sequence:    []match.Match{{Pattern: "bruteforce", I: 0, J: 3, Token: "xK9!"}},
			suggestions: []string{},
		},
		{
			name:        "repeat single char",
			score:       0,
			password:    "aaaaaa",
			sequence:    []match.Match{{Pattern: "repeat", I: 0, J: 5, Token: "aaaaaa"}},
			warning:     `Repeats like "aaa" are easy to guess`,
			suggestions: []string{addWord, "Avoid repeated words and characters"},
		},
		{
			name:        "sequence",
			score:       1,
			password:    "abcdef",
			sequence:    []match.Match{{Pattern: "sequence", I: 0, J: 5, Token: "abcdef"}},
			warning:     "Sequences like abc or 6543 are easy to guess",
			suggestions: []string{addWord, "Avoid sequences"},
		},
		{
			name:     "capitalized common word",
			score:    0,
			password: "1Monkey",
			sequence: []match.Match{
				{Pattern: "bruteforce", I: 0, J: 0, Token: "1"},
				{Pattern: "dictionary", DictionaryName: "English", I: 1, J: 6, Token: "Monkey"},
			},
			suggestions: []string{addWord, "Capitalization doesn't help very much"},
		},
		{
			name:     "sole common password",
			score:    0,
			password: "PASSWORD",
			sequence: []match.Match{
				{Pattern: "dictionary", DictionaryName: "Passwords", I: 0, J: 7, Token: "PASSWORD", Entropy: 2},
			},
			warning:     "This is a very common password",
			suggestions: []string{addWord, "All-uppercase is almost as easy to guess as all-lowercase"},
		},
		{
			name:     "substituted common password",
			score:    0,
			password: "p@ssword",
			sequence: []match.Match{
				{Pattern: "dictionary", DictionaryName: "Passwords", I: 0, J: 7, Token: "password", Entropy: 1},
			},
			warning: "This is similar to a commonly used password",
			suggestions: []string{addWord,
				"Predictable substitutions like '@' instead of 'a' don't help very much"},
		},
		{
			name:     "common password among other matches",
			score:    1,
			password: "zq7password",
			sequence: []match.Match{
				{Pattern: "bruteforce", I: 0, J: 2, Token: "zq7"},
				{Pattern: "dictionary", DictionaryName: "Passwords", I: 3, J: 10, Token: "password", Entropy: 1},
			},
			warning:     "This is similar to a commonly used password",
			suggestions: []string{addWord},
		},
		{
			name:     "rare password among other matches",
			score:    2,
			password: "zq7starwars",
			sequence: []match.Match{
				{Pattern: "bruteforce", I: 0, J: 2, Token: "zq7"},
				{Pattern: "dictionary", DictionaryName: "Passwords", I: 3, J: 10, Token: "starwars", Entropy: 14},
			},
			suggestions: []string{addWord},
		},
		{
			name:        "unknown pattern",
			score:       1,
			password:    "zq",
			sequence:    []match.Match{{Pattern: "bruteforce", I: 0, J: 1, Token: "zq"}},
			suggestions: []string{addWord},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning, suggestions := feedback(tt.score, tt.password, tt.sequence)
			assert.Equal(t, tt.warning, warning)
			assert.Equal(t, tt.suggestions, suggestions)
		})
	}
}

func TestIsL33t(t *testing.T) {
	assert.True(t, isL33t(match.Match{Pattern: "dictionary", I: 0, J: 7, Token: "Password"}, "P@ssw0rd"))
	assert.False(t, isL33t(match.Match{Pattern: "dictionary", I: 0, J: 7, Token: "Password"}, "Password"))
	assert.False(t, isL33t(match.Match{Pattern: "dictionary", I: 1, J: 4, Token: "andú"}, "ñandú"))
	assert.False(t, isL33t(match.Match{Pattern: "dictionary", I: 3, J: 9, Token: "toolong"}, "short"))
	assert.False(t, isL33t(match.Match{Pattern: "spatial", I: 0, J: 5, Token: "qwerty"}, "qw3rty"))
}
