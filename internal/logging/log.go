// Package logging provides the package-level structured logger used on the
// parser's recovery paths (a degraded Content-Type, an exhausted decode
// recovery chain, a recursion-depth cutoff). Adapted from the teacher's
// log.HookedLogger (log/log.go): that wrapper exists because a long-running
// SMTP daemon needs log rotation (Reopen), per-connection fields (WithConn),
// and a dashboard hook. None of that applies to a synchronous, in-memory
// parse, so this keeps only the piece every caller of this library actually
// wants: a *logrus.Logger with a settable level and a plain text format.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the structured logger interface the parser and cmd/mimedump log
// through, trimmed from the teacher's Logger interface (log/log.go) to the
// methods this package actually calls.
type Logger interface {
	logrus.FieldLogger
	SetLevel(level string)
	GetLevel() string
}

type standardLogger struct {
	*logrus.Logger
}

func (l *standardLogger) SetLevel(level string) {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	l.Logger.SetLevel(lv)
}

func (l *standardLogger) GetLevel() string {
	return l.Logger.GetLevel().String()
}

// New returns a Logger writing to os.Stderr at the given
// level name ("debug", "info", "warn", "error"; defaults to "info" on a
// bad name), formatted as plain text with no color codes — the parser's
// own stderr diagnostics aren't meant to be colorized terminal output.
func New(level string) Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	sl := &standardLogger{Logger: l}
	sl.SetLevel(level)
	return sl
}

// Discard returns a Logger that drops everything, for library callers that
// don't want the parser's recovery-path diagnostics at all.
func Discard() Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.SetLevel(logrus.PanicLevel)
	return &standardLogger{Logger: l}
}
