package stream

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger routes the package's diagnostics to l. Terminal operations log
// at debug level; rejected reuse of a consumed stream and failing close
// handlers of flattened streams log at warn level. Logging is disabled by
// default.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

func log() *zerolog.Logger {
	return logger.Load()
}
