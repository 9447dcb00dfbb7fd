package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/mines/noguess/pkg/mineslog"
)

// Spinner wraps github.com/briandowns/spinner to provide progress UX for
// long-running race/generate commands.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a new spinner with a default configuration.
func NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start starts the spinner if verbose mode is disabled.
func (s *Spinner) Start() {
	if !mineslog.VerboseEnabled {
		s.s.Start()
	}
}

// Stop stops the spinner.
func (s *Spinner) Stop() {
	s.s.Stop()
}

// UpdateMessage updates the spinner's suffix message.
func (s *Spinner) UpdateMessage(format string, args ...interface{}) {
	s.s.Suffix = " " + fmt.Sprintf(format, args...)
}

// LogInfo stops the spinner, prints an info message, and restarts it, so
// the spinner never tears or leaves artifacts when messages are printed.
func (s *Spinner) LogInfo(format string, args ...interface{}) {
	wasRunning := s.s.Active()
	if wasRunning {
		s.s.Stop()
	}
	mineslog.Info(format, args...)
	if wasRunning && !mineslog.VerboseEnabled {
		s.s.Start()
	}
}

// LogWarning stops the spinner, prints a warning message, and restarts it.
func (s *Spinner) LogWarning(format string, args ...interface{}) {
	wasRunning := s.s.Active()
	if wasRunning {
		s.s.Stop()
	}
	mineslog.Warning(format, args...)
	if wasRunning && !mineslog.VerboseEnabled {
		s.s.Start()
	}
}
