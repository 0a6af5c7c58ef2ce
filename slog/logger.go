// Package slog provides the logging and reporting interfaces injected into slacklane
// components. The standard library logger backs the default implementations
package slog

import (
	"fmt"
	"io/ioutil"
	"log"
)

// SLogger is the slacklane internal logging interface. The standard library logger implements
// Printf but not Debugf so NewSLogger is the usual way to get one
type SLogger interface {
	Printf(format string, v ...interface{})

	Debugf(format string, v ...interface{})
}

// Reporter is the user-facing channel for the outcome of an action
type Reporter interface {
	// Success reports a successful action
	Success(message string)

	// Error reports a failed action
	Error(message string)
}

type sLogger struct {
	logger *log.Logger
	debug  bool
}

// NewSLogger creates a new slacklane logger provided with an interface logger and a debug flag
func NewSLogger(log *log.Logger, debug bool) (l SLogger) {
	sl := new(sLogger)
	sl.debug = debug
	sl.logger = log
	return sl
}

// Discard returns an SLogger that drops everything
func Discard() (l SLogger) {
	return NewSLogger(log.New(ioutil.Discard, "", 0), false)
}

// Debugf logs a debug line after checking if the configuration is in debug mode
func (sl *sLogger) Debugf(format string, v ...interface{}) {
	if sl.debug {
		sl.logger.Output(2, fmt.Sprintf(format, v...))
	}
}

// Printf logs a line by delegating the call to Output
func (sl *sLogger) Printf(format string, v ...interface{}) {
	sl.logger.Output(2, fmt.Sprintf(format, v...))
}

// loggingReporter reports through an SLogger
type loggingReporter struct {
	logger SLogger
}

// NewReporter returns a Reporter writing success and error lines to the SLogger
func NewReporter(logger SLogger) (r Reporter) {
	return &loggingReporter{logger: logger}
}

// Success logs the message
func (r *loggingReporter) Success(message string) {
	r.logger.Printf("%s\n", message)
}

// Error logs the message prefixed by "Error: "
func (r *loggingReporter) Error(message string) {
	r.logger.Printf("Error: %s\n", message)
}
