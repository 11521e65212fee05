// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package rules is the simple checklist checker of the standalone mode. It knows nothing about
// zxcvbn and its levels do not map to zxcvbn scores.
package rules

import (
	"bufio"
	"github.com/pkg/errors"
	"os"
	"regexp"
	"unicode/utf8"
)

type Level string

const (
	Weak     Level = "Weak"
	Moderate Level = "Moderate"
	Strong   Level = "Strong"
)

const DefaultCommonPasswordsFile = "common_password.txt"

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.{}|<>?':;"]`)
)

type Verdict struct {
	Level   Level
	Remarks []string
}

// LoadCommonPasswords a missing file is just an empty list.
func LoadCommonPasswords(fileName string) (map[string]struct{}, error) {
	common := make(map[string]struct{})

	file, err := os.Open(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return common, nil
		}
		return nil, errors.Wrap(err, "open common passwords file")
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		common[scanner.Text()] = struct{}{}
	}

	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read common passwords file")
	}

	return common, nil
}

func Check(password string, common map[string]struct{}) Verdict {
	strength := 0
	remarks := make([]string, 0)

	if utf8.RuneCountInString(password) >= 8 {
		strength++
	} else {
		remarks = append(remarks, "Password should be at least 8 characters long.")
	}

	if upperRe.MatchString(password) {
		strength++
	} else {
		remarks = append(remarks, "Include at least one uppercase letter.")
	}

	if lowerRe.MatchString(password) {
		strength++
	} else {
		remarks = append(remarks, "Include at least one lowercase letter.")
	}

	if digitRe.MatchString(password) {
		strength++
	} else {
		remarks = append(remarks, "Include at least one digit, eg: 0 - 9")
	}

	if specialRe.MatchString(password) {
		strength++
	} else {
		remarks = append(remarks, "Include at least one special character.")
	}

	if _, ok := common[password]; ok {
		remarks = append(remarks, "Password is too common. Avoid using easily guessable passwords.")
	} else {
		strength++
	}

	level := Weak
	if strength >= 5 {
		level = Strong
	} else if strength >= 3 {
		level = Moderate
	}

	return Verdict{Level: level, Remarks: remarks}
}
