package util

import (
	"fmt"
	"github.com/rs/zerolog"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"
	"unicode"
)

// NewLogger the level comes from the LOG_LEVEL setting, verbose always wins and goes down to debug.
// Console output is for humans on a terminal, otherwise plain JSON lines.
func NewLogger(out io.Writer, level string, verbose bool, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if verbose {
		lvl = zerolog.DebugLevel
	}

	if console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	if verbose {
		logger.Warn().Msg("verbosity up")
	}

	return logger
}

func Stats(logger zerolog.Logger) func() {
	start := time.Now()
	return func() {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		logger.Debug().Msgf("time to run %v", time.Since(start))
		logger.Debug().Msgf("Alloc: %d MB, TotalAlloc: %d MB, Requested: %d MB",
			ms.Alloc/1024/1024, ms.TotalAlloc/1024/1024, ms.Sys/1024/1024)
		logger.Debug().Msgf("Mallocs: %d, Frees: %d, GC: %d", ms.Mallocs, ms.Frees, ms.NumGC)
	}
}

// StartProfiler serves pprof on the given port. Callers must import net/http/pprof.
func StartProfiler(logger zerolog.Logger, pprofPort uint16) {
	logger.Info().Msgf("profiling is enabled for this session. Server will listen on port %d", pprofPort)
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf("localhost:%d", pprofPort), nil); err != nil {
			logger.Error().Err(err).Msgf("error starting profiling server on port %d", pprofPort)
			return
		}
	}()
}

// ToScreamingSnakeCase turns Go field names into their env var form, TLSCert -> TLS_CERT.
func ToScreamingSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}
