package handler

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kith/internal/app/snapshot"
	"kith/internal/app/social"
	"kith/internal/configs"
)

func newTestConsole(t *testing.T, script string) (*Console, *bytes.Buffer) {
	t.Helper()

	cfg := &configs.AppConfig{
		Environment:     "development",
		JWTSecret:       "test-signing-secret",
		SnapshotBackend: configs.SnapshotBackendFile,
		SnapshotPath:    filepath.Join(t.TempDir(), "accounts.json"),
	}

	store, err := snapshot.NewStore(cfg)
	require.NoError(t, err)

	svc, newErr := social.New(context.Background(), cfg, store)
	require.NoError(t, newErr)

	out := &bytes.Buffer{}
	return NewConsole(svc, strings.NewReader(script), out), out
}

func outputLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestConsoleScriptedSession(t *testing.T) {
	script := strings.Join([]string{
		`createAccount alice pw "Alice Silva"`,
		"getAttribute alice name",
		"getFriends alice",
		"isFriend alice bob",
		"",
		"# comments and blank lines are skipped",
		"quit",
		"getAttribute alice name", // never reached
	}, "\n")

	console, out := newTestConsole(t, script)
	require.NoError(t, console.Run(context.Background()))

	assert.Equal(t, []string{
		"OK",
		"Alice Silva",
		"{}",
		"false",
	}, outputLines(out))
}

func TestConsoleErrorMessages(t *testing.T) {
	script := strings.Join([]string{
		"createAccount alice pw",
		"createAccount alice pw",
		"getAttribute ghost name",
		"openSession alice wrong",
		"readMessage bogus-token",
	}, "\n")

	console, out := newTestConsole(t, script)
	require.NoError(t, console.Run(context.Background()))

	assert.Equal(t, []string{
		"OK",
		"An account with this login already exists.",
		"Account not found.",
		"Incorrect login or password.",
		"Account not found.",
	}, outputLines(out))
}

func TestConsoleUnknownCommandAndUsage(t *testing.T) {
	script := strings.Join([]string{
		"frobnicate",
		"createAccount onlylogin",
	}, "\n")

	console, out := newTestConsole(t, script)
	require.NoError(t, console.Run(context.Background()))

	lines := outputLines(out)
	require.Len(t, lines, 2)
	assert.Equal(t, "unknown command: frobnicate", lines[0])
	assert.Equal(t, "usage: createAccount <login> <password> [name]", lines[1])
}

func TestConsoleMessageRoundTrip(t *testing.T) {
	// Tokens are opaque, so drive the service directly for session-bound
	// commands and use the console only for the final read.
	console, out := newTestConsole(t, "")
	svc := console.svc

	require.Nil(t, svc.CreateAccount("alice", "pw", ""))
	require.Nil(t, svc.CreateAccount("bob", "pw", ""))

	aliceToken, err := svc.OpenSession("alice", "pw")
	require.Nil(t, err)
	bobToken, err := svc.OpenSession("bob", "pw")
	require.Nil(t, err)

	require.Nil(t, svc.SendMessage(aliceToken, "bob", "oi"))

	script := strings.Join([]string{
		"readMessage " + bobToken,
		"readMessage " + bobToken,
	}, "\n")

	console.in = strings.NewReader(script)
	require.NoError(t, console.Run(context.Background()))

	assert.Equal(t, []string{
		"oi",
		"No messages.",
	}, outputLines(out))
}
