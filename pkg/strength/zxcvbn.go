// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"github.com/nbutton23/zxcvbn-go"
	"github.com/pkg/errors"
)

// DefaultMaxLength zxcvbn gets really slow with long inputs, everything after this is not scored.
const DefaultMaxLength = 100

type zxcvbnScorer struct {
	maxLength  int
	userInputs []string
}

// NewZxcvbnScorer returns a Scorer backed by zxcvbn. userInputs are extra words (user name, site
// name...) that should be penalized if present in the password.
func NewZxcvbnScorer(maxLength int, userInputs ...string) Scorer {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	return &zxcvbnScorer{maxLength: maxLength, userInputs: userInputs}
}

func (z *zxcvbnScorer) Score(password string) (res Result, err error) {
	// zxcvbn-go has panicked before on some inputs, that is a failure not a score.
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = errors.Errorf("zxcvbn panicked: %v", r)
		}
	}()

	if password == "" {
		warning, suggestions := feedback(0, "", nil)
		return Result{Score: 0, Warning: warning, Suggestions: suggestions, CrackTimes: crackTimes(0)}, nil
	}

	checked := password
	if runes := []rune(password); len(runes) > z.maxLength {
		checked = string(runes[:z.maxLength])
	}

	m := zxcvbn.PasswordStrength(checked, z.userInputs)
	warning, suggestions := feedback(m.Score, checked, m.MatchSequence)

	return Result{
		Score:       m.Score,
		Warning:     warning,
		Suggestions: suggestions,
		CrackTimes:  crackTimes(m.Entropy),
	}, nil
}
