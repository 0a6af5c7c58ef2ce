package main

import (
	"io"

	"github.com/fatih/color"
)

// colorReporter reports action outcomes in color: green for success and red for errors
type colorReporter struct {
	out      io.Writer
	success  *color.Color
	failure  *color.Color
	reported bool
}

func newColorReporter(out io.Writer) (r *colorReporter) {
	return &colorReporter{out: out, success: color.New(color.FgGreen), failure: color.New(color.FgRed, color.Bold)}
}

// Success reports a successful action
func (r *colorReporter) Success(message string) {
	r.success.Fprintln(r.out, message)
}

// Error reports a failed action
func (r *colorReporter) Error(message string) {
	r.reported = true
	r.failure.Fprintf(r.out, "Error: %s\n", message)
}
