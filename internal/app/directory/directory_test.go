package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kith/internal/pkg/errs"
)

func TestCreateAndLookup(t *testing.T) {
	dir := New()

	acc, err := dir.Create("alice", "s3cret", "Alice")
	require.Nil(t, err)
	require.NotNil(t, acc)
	assert.NotEmpty(t, acc.Handle)

	assert.Same(t, acc, dir.Lookup("alice"))
	assert.Same(t, acc, dir.Get(acc.Handle))
	assert.Nil(t, dir.Lookup("bob"))
	assert.Equal(t, 1, dir.Len())
}

func TestCreateDuplicateLogin(t *testing.T) {
	dir := New()

	_, err := dir.Create("alice", "pw1", "")
	require.Nil(t, err)

	_, err = dir.Create("alice", "pw2", "")
	require.NotNil(t, err)
	assert.Equal(t, errs.ErrDuplicateAccount, err.Code)
	assert.Equal(t, 1, dir.Len())
}

func TestCreateInvalidCredentials(t *testing.T) {
	dir := New()

	_, err := dir.Create("", "pw", "")
	require.NotNil(t, err)
	assert.Equal(t, errs.ErrInvalidLogin, err.Code)

	_, err = dir.Create("alice", "", "")
	require.NotNil(t, err)
	assert.Equal(t, errs.ErrInvalidPassword, err.Code)

	assert.Equal(t, 0, dir.Len())
}

func TestRename(t *testing.T) {
	dir := New()

	acc, err := dir.Create("alice", "pw", "")
	require.Nil(t, err)

	require.Nil(t, dir.Rename(acc.Handle, "alicia"))

	assert.Equal(t, "alicia", acc.Login)
	assert.Nil(t, dir.Lookup("alice"))
	assert.Same(t, acc, dir.Lookup("alicia"))
	// The stable handle is untouched by the rename.
	assert.Same(t, acc, dir.Get(acc.Handle))
}

func TestRenameToTakenLogin(t *testing.T) {
	dir := New()

	alice, err := dir.Create("alice", "pw", "")
	require.Nil(t, err)
	bob, err := dir.Create("bob", "pw", "")
	require.Nil(t, err)

	renameErr := dir.Rename(alice.Handle, "bob")
	require.NotNil(t, renameErr)
	assert.Equal(t, errs.ErrInvalidLogin, renameErr.Code)

	// Both accounts keep their logins.
	assert.Equal(t, "alice", alice.Login)
	assert.Equal(t, "bob", bob.Login)
	assert.Same(t, alice, dir.Lookup("alice"))
	assert.Same(t, bob, dir.Lookup("bob"))
}

func TestRenameToOwnLoginIsNoop(t *testing.T) {
	dir := New()

	alice, err := dir.Create("alice", "pw", "")
	require.Nil(t, err)

	require.Nil(t, dir.Rename(alice.Handle, "alice"))
	assert.Equal(t, "alice", alice.Login)
	assert.Same(t, alice, dir.Lookup("alice"))
}

func TestRenameUnknownHandle(t *testing.T) {
	dir := New()

	err := dir.Rename("missing-handle", "new")
	require.NotNil(t, err)
	assert.Equal(t, errs.ErrAccountNotFound, err.Code)
}

func TestAccountsCreationOrder(t *testing.T) {
	dir := New()

	for _, login := range []string{"alice", "bob", "carol"} {
		_, err := dir.Create(login, "pw", "")
		require.Nil(t, err)
	}

	accounts := dir.Accounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, "alice", accounts[0].Login)
	assert.Equal(t, "bob", accounts[1].Login)
	assert.Equal(t, "carol", accounts[2].Login)
}

func TestUniqueHandles(t *testing.T) {
	dir := New()

	seen := make(map[string]bool)
	for _, login := range []string{"a", "b", "c", "d"} {
		acc, err := dir.Create(login, "pw", "")
		require.Nil(t, err)
		assert.False(t, seen[acc.Handle])
		seen[acc.Handle] = true
	}
}

func TestReset(t *testing.T) {
	dir := New()

	_, err := dir.Create("alice", "pw", "")
	require.Nil(t, err)

	dir.Reset()

	assert.Equal(t, 0, dir.Len())
	assert.Nil(t, dir.Lookup("alice"))
	assert.Empty(t, dir.Accounts())

	// The registry is usable again after a reset.
	_, err = dir.Create("alice", "pw", "")
	assert.Nil(t, err)
}
