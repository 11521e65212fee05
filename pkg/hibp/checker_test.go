// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package hibp

import (
	"context"
	"errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"regexp"
	"testing"
	"time"
)

const (
	passwordPrefix = "5BAA6"
	passwordSuffix = "1E4C9B93F3F0682250B6CF8331B7EE68FD8"
)

type stubClient struct {
	lines    []string
	err      error
	block    bool
	prefixes []string
}

func (s *stubClient) Range(ctx context.Context, prefix string) ([]string, error) {
	s.prefixes = append(s.prefixes, prefix)
	if s.block {
		<-ctx.Done()
		return nil, &TransportError{Prefix: prefix, Err: ctx.Err()}
	}

	return s.lines, s.err
}

func newChecker(c LookupClient) *Checker {
	return NewChecker(c, time.Second, zerolog.Nop())
}

func TestHashPassword(t *testing.T) {
	prefix, suffix := HashPassword("password")
	assert.Equal(t, passwordPrefix, prefix)
	assert.Equal(t, passwordSuffix, suffix)

	hexPrefix := regexp.MustCompile("^[0-9A-F]{5}$")
	for _, pwd := range []string{"", "a", "correct horse battery staple", "ñandú", "P@ssw0rd!"} {
		p1, s1 := HashPassword(pwd)
		p2, s2 := HashPassword(pwd)
		assert.Regexp(t, hexPrefix, p1)
		assert.Len(t, s1, 35)
		assert.Equal(t, p1, p2)
		assert.Equal(t, s1, s2)
	}
}

func TestValidPrefix(t *testing.T) {
	assert.True(t, validPrefix("5BAA6"))
	assert.True(t, validPrefix("00000"))
	assert.False(t, validPrefix("5baa6"))
	assert.False(t, validPrefix("5BAA"))
	assert.False(t, validPrefix("5BAA61"))
	assert.False(t, validPrefix("5BAG6"))
}

func TestChecker_Found(t *testing.T) {
	client := &stubClient{lines: []string{
		"003D68EB55068C33ACE09247EE4C639306B:3",
		passwordSuffix + ":3",
		"01330C689E5D64F660D6947A93AD634EF8F:1",
	}}

	res, err := newChecker(client).CheckBreach(context.Background(), "password")
	require.NoError(t, err)

	assert.Equal(t, BreachResult{Found: true, Count: 3}, res)
	assert.Equal(t, []string{passwordPrefix}, client.prefixes)
}

func TestChecker_NotFound(t *testing.T) {
	client := &stubClient{lines: []string{
		"003D68EB55068C33ACE09247EE4C639306B:3",
		"01330C689E5D64F660D6947A93AD634EF8F:1",
	}}

	res, err := newChecker(client).CheckBreach(context.Background(), "password")
	require.NoError(t, err)
	assert.Equal(t, BreachResult{}, res)
	assert.False(t, res.Degraded())
}

func TestChecker_EmptyResponse(t *testing.T) {
	res, err := newChecker(&stubClient{}).CheckBreach(context.Background(), "password")
	require.NoError(t, err)
	assert.Equal(t, BreachResult{}, res)
}

func TestChecker_Timeout(t *testing.T) {
	checker := NewChecker(&stubClient{block: true}, 10*time.Millisecond, zerolog.Nop())

	res, err := checker.CheckBreach(context.Background(), "password")
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Zero(t, res.Count)
	assert.NotEmpty(t, res.Error)
	assert.True(t, res.Degraded())
}

func TestChecker_TransportError(t *testing.T) {
	client := &stubClient{err: &TransportError{Prefix: passwordPrefix, StatusCode: 503}}

	res, err := newChecker(client).CheckBreach(context.Background(), "password")
	require.NoError(t, err)

	assert.Equal(t, BreachResult{Error: "range request [5BAA6] failed with status [503]"}, res)
}

func TestChecker_UnexpectedError(t *testing.T) {
	boom := errors.New("boom")

	_, err := newChecker(&stubClient{err: boom}).CheckBreach(context.Background(), "password")
	assert.ErrorIs(t, err, boom)
}

func TestChecker_MalformedCount(t *testing.T) {
	client := &stubClient{lines: []string{passwordSuffix + ":lots"}}

	_, err := newChecker(client).CheckBreach(context.Background(), "password")
	require.ErrorIs(t, err, ErrMalformedCount)
	assert.Contains(t, err.Error(), `"lots"`)
	assert.NotContains(t, err.Error(), passwordSuffix)
}

func TestChecker_CallerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newChecker(&stubClient{block: true}).CheckBreach(ctx, "password")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, BreachResult{}, res)
}

func TestFindCount(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int64
	}{
		{"exact match", []string{"AAAAA:3"}, 3},
		{"crlf", []string{"BBBBB:1\r", "AAAAA:42\r"}, 42},
		{"lowercase suffix in response", []string{"aaaaa:7"}, 7},
		{"no separator skipped", []string{"garbage", "AAAAA", "AAAAA:5"}, 5},
		{"padding entry", []string{"AAAAA:0"}, 0},
		{"no match", []string{"BBBBB:10", "CCCCC:2"}, 0},
		{"malformed line without match", []string{"BBBBB:nope", "CCCCC:2"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findCount(tt.lines, "AAAAA")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecker_Idempotent(t *testing.T) {
	client := &stubClient{lines: []string{passwordSuffix + ":9545824"}}
	checker := newChecker(client)

	first, err := checker.CheckBreach(context.Background(), "password")
	require.NoError(t, err)
	second, err := checker.CheckBreach(context.Background(), "password")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, client.prefixes[0], client.prefixes[1])
}
