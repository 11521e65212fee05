// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"github.com/pkg/errors"
	"os"
	"strings"
	"unicode/utf8"
)

const DefaultFile = "password_report.txt"

// Mask never write the password itself, only as many asterisks as it has characters.
func Mask(password string) string {
	return strings.Repeat("*", utf8.RuneCountInString(password))
}

// Append adds an entry to the report file, creating it if needed.
func Append(fileName string, password string, level string, remarks []string) (err error) {
	file, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Wrap(err, "open report file")
	}

	defer func(file *os.File) {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close report file")
		}
	}(file)

	w := bufio.NewWriter(file)
	_, _ = fmt.Fprintf(w, "Password Tested: %s\n", Mask(password))
	_, _ = fmt.Fprintf(w, "Strength Level: %s\n", level)
	_, _ = fmt.Fprintln(w, "Remarks:")
	for _, remark := range remarks {
		_, _ = fmt.Fprintf(w, "- %s\n", remark)
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 40))

	return errors.Wrap(w.Flush(), "write report file")
}
