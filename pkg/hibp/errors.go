// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package hibp

import (
	"context"
	"fmt"
	"github.com/pkg/errors"
	"net"
)

var (
	ErrInvalidPrefix  = errors.New("range prefix must be 5 uppercase hexadecimal characters")
	ErrMalformedCount = errors.New("malformed count in range response")
)

// TransportError is a failure talking to the range API: the request could not be made, timed
// out, or came back with a non 2xx status.
type TransportError struct {
	Prefix     string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("range request [%s] failed with status [%d]", e.Prefix, e.StatusCode)
	}

	return fmt.Sprintf("range request [%s] failed: %v", e.Prefix, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a range API availability problem. Those are the only errors
// a breach check recovers from.
func IsTransport(err error) bool {
	if err == nil {
		return false
	}

	var te *TransportError
	if errors.As(err, &te) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var ne net.Error
	return errors.As(err, &ne)
}
