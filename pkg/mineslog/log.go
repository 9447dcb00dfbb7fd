// Package mineslog provides the package-level logging used across the
// generator, solver, and race controller.
package mineslog

import (
	"fmt"
	"os"
)

var (
	// VerboseEnabled controls whether verbose output is shown.
	VerboseEnabled = false
	// LogFile is the path to mirror logs to (empty means stdout/stderr only).
	LogFile = ""
)

func writeToLogFile(message string) {
	if LogFile != "" {
		file, err := os.OpenFile(LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer file.Close()
			fmt.Fprintln(file, message)
		}
	}
}

// Info prints a message to stdout (always shown, regardless of verbose mode).
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// Verbose prints a message only when verbose mode is enabled.
func Verbose(format string, args ...interface{}) {
	if VerboseEnabled {
		message := fmt.Sprintf("[VERBOSE] "+format, args...)
		fmt.Println(message)
		writeToLogFile(message)
	}
}

// Error prints an error message to stderr (always shown).
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf("ERROR: "+format, args...)
	fmt.Fprintln(os.Stderr, message)
	writeToLogFile(message)
}

// Warning prints a warning message (always shown).
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf("WARNING: "+format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}
