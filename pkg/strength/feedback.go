// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"github.com/nbutton23/zxcvbn-go/match"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const addWord = "Add another word or two. Uncommon words are better."

var defaultSuggestions = []string{
	"Use a few words, avoid common phrases",
	"No need for symbols, digits, or uppercase letters",
}

// feedback builds the warning and suggestions for a scored password out of its match sequence,
// the same way the reference zxcvbn implementation does. Only the longest match is considered.
// password must be the exact input the sequence was computed for.
func feedback(score int, password string, sequence []match.Match) (string, []string) {
	if len(sequence) == 0 {
		return "", append([]string{}, defaultSuggestions...)
	}

	if score > 2 {
		return "", []string{}
	}

	longest := sequence[0]
	for _, m := range sequence[1:] {
		if utf8.RuneCountInString(m.Token) > utf8.RuneCountInString(longest.Token) {
			longest = m
		}
	}

	warning, suggestions, ok := matchFeedback(longest, isL33t(longest, password), len(sequence) == 1)
	if !ok {
		return "", []string{addWord}
	}

	return warning, append([]string{addWord}, suggestions...)
}

// isL33t zxcvbn-go reports l33t matches as plain dictionary matches whose token is the decoded
// word, so they are told apart by comparing the token with the matched span of the password.
func isL33t(m match.Match, password string) bool {
	if strings.EqualFold(m.Pattern, "l33t") {
		return true
	}
	if !strings.EqualFold(m.Pattern, "dictionary") {
		return false
	}

	runes := []rune(password)
	if m.I < 0 || m.J < m.I || m.J >= len(runes) {
		return false
	}

	return m.Token != string(runes[m.I:m.J+1])
}

func matchFeedback(m match.Match, l33t, soleMatch bool) (string, []string, bool) {
	switch strings.ToLower(m.Pattern) {
	case "dictionary", "l33t":
		return dictionaryFeedback(m, l33t, soleMatch), dictionarySuggestions(m, l33t), true
	case "spatial":
		return "Short keyboard patterns are easy to guess",
			[]string{"Use a longer keyboard pattern with more turns"}, true
	case "repeat":
		warning := `Repeats like "abcabcabc" are only slightly harder to guess than "abc"`
		if singleCharRepeat(m.Token) {
			warning = `Repeats like "aaa" are easy to guess`
		}
		return warning, []string{"Avoid repeated words and characters"}, true
	case "sequence":
		return "Sequences like abc or 6543 are easy to guess", []string{"Avoid sequences"}, true
	case "date":
		return "Dates are often easy to guess",
			[]string{"Avoid dates and years that are associated with you"}, true
	}

	return "", nil, false
}

func dictionaryFeedback(m match.Match, l33t, soleMatch bool) string {
	switch strings.ToLower(m.DictionaryName) {
	case "passwords":
		if soleMatch && !l33t {
			return "This is a very common password"
		}
		// Up to 10^4 guesses.
		if m.Entropy*math.Log10(2) <= 4 {
			return "This is similar to a commonly used password"
		}
	case "english":
		if soleMatch {
			return "A word by itself is easy to guess"
		}
	case "surnames", "malenames", "femalenames":
		if soleMatch {
			return "Names and surnames by themselves are easy to guess"
		}
		return "Common names and surnames are easy to guess"
	}

	return ""
}

func dictionarySuggestions(m match.Match, l33t bool) []string {
	var suggestions []string

	first, _ := utf8.DecodeRuneInString(m.Token)
	upper := strings.ToUpper(m.Token)
	lower := strings.ToLower(m.Token)
	if m.Token == upper && upper != lower {
		suggestions = append(suggestions, "All-uppercase is almost as easy to guess as all-lowercase")
	} else if unicode.IsUpper(first) {
		suggestions = append(suggestions, "Capitalization doesn't help very much")
	}

	if l33t {
		suggestions = append(suggestions, "Predictable substitutions like '@' instead of 'a' don't help very much")
	}

	return suggestions
}

func singleCharRepeat(token string) bool {
	first, _ := utf8.DecodeRuneInString(token)
	for _, r := range token {
		if r != first {
			return false
		}
	}

	return true
}
