// Package util provides common utilities including logging helpers,
// file system paths, key derivation and name suggestions.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// SilenceLogs discards log output while a full-screen program owns the terminal.
func SilenceLogs() {
	log.SetOutput(io.Discard)
}
