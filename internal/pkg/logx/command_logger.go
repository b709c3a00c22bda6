/*
Package logx provides a structured logging wrapper based on zerolog.

This file contains the command logger used by the console surface to record
each executed command with its outcome and latency.
*/
package logx

import (
	"time"

	"github.com/rs/zerolog"
)

// CommandLogger wraps the execution of a single console command and logs its
// lifecycle: the command name, whether it failed, and how long it took.
type CommandLogger struct {
	logger zerolog.Logger
}

// NewCommandLogger returns a CommandLogger scoped to the console component.
func NewCommandLogger() *CommandLogger {
	logger := Logger().With().
		Str("component", "console").
		Logger()

	return &CommandLogger{logger: logger}
}

// Run executes fn and logs the result. Business failures are logged at Warn
// level since they are expected protocol outcomes, not system faults.
func (c *CommandLogger) Run(command string, fn func() error) error {
	t1 := time.Now()
	err := fn()

	logEvent := c.logger.Info()
	if err != nil {
		logEvent = c.logger.Warn().Err(err)
	}

	logEvent.
		Str("command", command).
		Dur("latency", time.Since(t1)).
		Msg("Command completed")

	return err
}
