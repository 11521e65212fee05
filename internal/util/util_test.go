package util

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestToScreamingSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Port":              "PORT",
		"TLSCert":           "TLS_CERT",
		"SelfTLS":           "SELF_TLS",
		"HibpApiUrl":        "HIBP_API_URL",
		"HibpCacheTTL":      "HIBP_CACHE_TTL",
		"MaxPasswordLength": "MAX_PASSWORD_LENGTH",
		"TLSKey TLSCert":    "TLS_KEY TLS_CERT",
	}

	for in, want := range tests {
		assert.Equal(t, want, ToScreamingSnakeCase(in), in)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", false, false)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger = NewLogger(&buf, "error", true, false)
	logger.Debug().Msg("debug on")
	assert.Contains(t, buf.String(), "debug on")

	buf.Reset()
	logger = NewLogger(&buf, "nonsense", false, false)
	logger.Debug().Msg("debug off")
	logger.Info().Msg("info on")
	assert.NotContains(t, buf.String(), "debug off")
	assert.Contains(t, buf.String(), "info on")
}
