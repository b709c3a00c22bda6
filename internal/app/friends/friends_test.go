package friends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kith/internal/app/account"
	"kith/internal/pkg/errs"
)

func pair() (*account.Account, *account.Account) {
	alice := account.New("h-alice", "alice", "pw", "Alice")
	bob := account.New("h-bob", "bob", "pw", "Bob")
	return alice, bob
}

func TestAdvanceFromUnrelated(t *testing.T) {
	alice, bob := pair()

	state, err := Advance(alice, bob)
	require.Nil(t, err)
	assert.Equal(t, RequestSent, state)

	// The request lands on the target only.
	assert.True(t, bob.HasPendingFrom("alice"))
	assert.False(t, alice.HasPendingFrom("bob"))
	assert.False(t, alice.HasFriend("bob"))
	assert.False(t, bob.HasFriend("alice"))
}

func TestAdvanceAcceptance(t *testing.T) {
	alice, bob := pair()

	_, err := Advance(alice, bob)
	require.Nil(t, err)

	// The reverse add is interpreted as acceptance.
	state, err := Advance(bob, alice)
	require.Nil(t, err)
	assert.Equal(t, Mutual, state)

	assert.Equal(t, []string{"alice"}, bob.Friends)
	assert.Equal(t, []string{"bob"}, alice.Friends)
	assert.Empty(t, alice.PendingRequests)
	assert.Empty(t, bob.PendingRequests)
}

func TestAdvanceDuplicateRequest(t *testing.T) {
	alice, bob := pair()

	_, err := Advance(alice, bob)
	require.Nil(t, err)

	// Same-direction repeat is rejected, not auto-accepted.
	_, err = Advance(alice, bob)
	require.NotNil(t, err)
	assert.Equal(t, errs.ErrDuplicateRequest, err.Code)

	// No duplicate entry in the pending list.
	assert.Equal(t, []string{"alice"}, bob.PendingRequests)
	assert.False(t, alice.HasFriend("bob"))
}

func TestAdvanceAlreadyFriends(t *testing.T) {
	alice, bob := pair()

	_, err := Advance(alice, bob)
	require.Nil(t, err)
	_, err = Advance(bob, alice)
	require.Nil(t, err)

	_, err = Advance(alice, bob)
	require.NotNil(t, err)
	assert.Equal(t, errs.ErrAlreadyFriends, err.Code)

	_, err = Advance(bob, alice)
	require.NotNil(t, err)
	assert.Equal(t, errs.ErrAlreadyFriends, err.Code)

	// Each side lists the other exactly once.
	assert.Equal(t, []string{"bob"}, alice.Friends)
	assert.Equal(t, []string{"alice"}, bob.Friends)
}

func TestAdvanceSelf(t *testing.T) {
	alice, _ := pair()

	_, err := Advance(alice, alice)
	require.NotNil(t, err)
	assert.Equal(t, errs.ErrSelfFriendship, err.Code)
	assert.Empty(t, alice.PendingRequests)
	assert.Empty(t, alice.Friends)
}

func TestClassify(t *testing.T) {
	alice, bob := pair()

	assert.Equal(t, Unrelated, Classify(alice, bob))

	_, err := Advance(alice, bob)
	require.Nil(t, err)
	assert.Equal(t, RequestSent, Classify(alice, bob))
	assert.Equal(t, RequestReceived, Classify(bob, alice))

	_, err = Advance(bob, alice)
	require.Nil(t, err)
	assert.Equal(t, Mutual, Classify(alice, bob))
	assert.Equal(t, Mutual, Classify(bob, alice))
}

func TestAcceptanceOrderIsPreserved(t *testing.T) {
	bob := account.New("h-bob", "bob", "pw", "")

	// Bob accepts alice first, then carol.
	for _, login := range []string{"alice", "carol"} {
		peer := account.New("h-"+login, login, "pw", "")
		_, err := Advance(peer, bob)
		require.Nil(t, err)
		_, err = Advance(bob, peer)
		require.Nil(t, err)
	}

	assert.Equal(t, []string{"alice", "carol"}, bob.Friends)
}
