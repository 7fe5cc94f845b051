package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	// Stdout receives regular command output
	Stdout io.Writer = os.Stdout
	// Stderr receives diagnostics
	Stderr io.Writer = os.Stderr
)

// Print functions for consistent output

// Success prints a success message to Stdout
func Success(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, "%s %s\n", SuccessIcon, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints a single-line error to Stderr
func Error(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "%s %s\n", ErrorIcon, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// Warning prints a single-line warning to Stderr
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(Stderr, "%s %s\n", WarningIcon, WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// OutputLine prints a line to Stdout
func OutputLine(format string, args ...interface{}) {
	fmt.Fprintf(Stdout, format+"\n", args...)
}
