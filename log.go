package memctx

import "sync/atomic"

import "github.com/prataprc/golog"

var logok = int64(0)

// EnableLogging turns on logging for this package. By default logging is
// silent, matching the teacher's convention of opt-in component logging
// rather than a global log level.
func EnableLogging() {
	atomic.StoreInt64(&logok, 1)
}

// DisableLogging turns logging back off.
func DisableLogging() {
	atomic.StoreInt64(&logok, 0)
}

func debugf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Debugf(format, v...)
	}
}

func infof(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Infof(format, v...)
	}
}

func warnf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Warnf(format, v...)
	}
}

func errorf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Errorf(format, v...)
	}
}
