// ═══════════════════════════════════════════════════════════════════════════
// Run Configuration
// ═══════════════════════════════════════════════════════════════════════════
//
// Flat flag-backed configuration, validated once at startup into the
// ConfigError kind the error-handling design calls for: method unknown,
// pht size not a positive power of two, counter bits out of 1..8, trace
// file unreadable, pc width not 32/64.

package main

import (
	"fmt"
	"os"

	"github.com/qbriceno/branchsim/predictor"
)

// ConfigError reports a fatal, user-facing configuration problem.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

type runConfig struct {
	method  predictor.Kind
	cbits   int
	cinit   int
	phtsize int
	trace   string
	pcbits  int
	seed    int64
}

func (c runConfig) validate() error {
	switch c.method {
	case predictor.KindOneLevel, predictor.KindTwoLevelGlobal, predictor.KindGShare,
		predictor.KindTwoLevelLocal, predictor.KindTournament, predictor.KindTAGE:
	default:
		return configErrorf("unknown -method %q", c.method)
	}
	if c.phtsize <= 0 || c.phtsize&(c.phtsize-1) != 0 {
		return configErrorf("-phtsize must be a positive power of two, got %d", c.phtsize)
	}
	if c.cbits < 1 || c.cbits > 8 {
		return configErrorf("-cbits must be in 1..8, got %d", c.cbits)
	}
	if c.cinit < 0 || c.cinit >= (1<<c.cbits) {
		return configErrorf("-cinit must be in [0, 2^cbits), got %d", c.cinit)
	}
	if c.pcbits != 32 && c.pcbits != 64 {
		return configErrorf("-pcbits must be 32 or 64, got %d", c.pcbits)
	}
	if c.trace == "" {
		return configErrorf("-trace is required")
	}
	if _, err := os.Stat(c.trace); err != nil {
		return configErrorf("-trace %q: %v", c.trace, err)
	}
	return nil
}
