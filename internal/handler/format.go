package handler

import (
	"errors"
	"strings"

	"kith/internal/pkg/errs"
)

// FormatFriends renders a friend list in the display format of the command
// surface: "{}" when empty, otherwise "{a,b}" in acceptance order.
func FormatFriends(friends []string) string {
	if len(friends) == 0 {
		return "{}"
	}
	return "{" + strings.Join(friends, ",") + "}"
}

// userMessage extracts the fixed user-facing message from a business error,
// falling back to the plain error text for anything else.
func userMessage(err error) string {
	var customErr *errs.CustomError
	if errors.As(err, &customErr) {
		return customErr.Message
	}
	return err.Error()
}

// splitArgs tokenizes a command line on whitespace, honoring double quotes so
// message bodies and attribute values may contain spaces.
func splitArgs(line string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false
	hasToken := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case (r == ' ' || r == '\t') && !inQuotes:
			if hasToken {
				args = append(args, current.String())
				current.Reset()
				hasToken = false
			}
		default:
			current.WriteRune(r)
			hasToken = true
		}
	}

	if hasToken {
		args = append(args, current.String())
	}

	return args
}
