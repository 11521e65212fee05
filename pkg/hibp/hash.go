// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package hibp

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// PrefixLength is how many characters of the hash are sent to the range API, k-anonymity needs
// the hash like this.
const PrefixLength = 5

// HashPassword returns the uppercase hex SHA1 of the password split into the range prefix and
// the suffix to look for in the range response.
func HashPassword(password string) (prefix string, suffix string) {
	sum := sha1.Sum([]byte(password))
	h := strings.ToUpper(hex.EncodeToString(sum[:]))
	return h[:PrefixLength], h[PrefixLength:]
}

func validPrefix(prefix string) bool {
	if len(prefix) != PrefixLength {
		return false
	}

	for _, c := range prefix {
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return false
		}
	}

	return true
}
