package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"kith/internal/pkg/errs"
)

func TestFormatFriends(t *testing.T) {
	assert.Equal(t, "{}", FormatFriends(nil))
	assert.Equal(t, "{}", FormatFriends([]string{}))
	assert.Equal(t, "{alice}", FormatFriends([]string{"alice"}))
	assert.Equal(t, "{alice,bob}", FormatFriends([]string{"alice", "bob"}))
}

func TestSplitArgs(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want []string
	}{
		{"plain words", "addFriend tok bob", []string{"addFriend", "tok", "bob"}},
		{"quoted body", `sendMessage tok bob "oi, tudo bem?"`, []string{"sendMessage", "tok", "bob", "oi, tudo bem?"}},
		{"empty quotes", `createAccount alice pw ""`, []string{"createAccount", "alice", "pw", ""}},
		{"extra spacing", "  reset   ", []string{"reset"}},
		{"quotes mid-token", `getAttribute alice "display name"`, []string{"getAttribute", "alice", "display name"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, splitArgs(tc.line))
		})
	}
}

func TestUserMessage(t *testing.T) {
	err := errs.NewError(errs.ErrAccountNotFound)
	assert.Equal(t, "Account not found.", userMessage(err))

	assert.Equal(t, "plain failure", userMessage(errors.New("plain failure")))
}
