/*
Package friends implements the two-phase friendship protocol as an explicit
state machine.

A friend request is one-directional and pending until the target performs the
same "add" action back toward the requester, at which point the relationship
becomes mutual. There is deliberately no decline operation: a pending request
either resolves to acceptance or stays pending.
*/
package friends

import (
	"kith/internal/app/account"
	"kith/internal/pkg/errs"
)

// State is the relationship between an ordered pair of accounts, from the
// viewer's perspective.
type State int

const (
	// Unrelated means no friendship and no pending request in either direction.
	Unrelated State = iota

	// RequestReceived means the peer has asked the viewer for friendship and
	// the viewer has not accepted yet.
	RequestReceived

	// RequestSent means the viewer has asked the peer for friendship and the
	// peer has not accepted yet.
	RequestSent

	// Mutual means both accounts list each other as friends.
	Mutual
)

// String returns a short name for the state, used in logs.
func (s State) String() string {
	switch s {
	case RequestReceived:
		return "request_received"
	case RequestSent:
		return "request_sent"
	case Mutual:
		return "mutual"
	default:
		return "unrelated"
	}
}

// Classify determines the relationship state between viewer and peer.
// Pending requests take precedence over the friend list, mirroring the
// evaluation order of the add operation.
func Classify(viewer, peer *account.Account) State {
	switch {
	case viewer.HasPendingFrom(peer.Login):
		return RequestReceived
	case peer.HasPendingFrom(viewer.Login):
		return RequestSent
	case viewer.HasFriend(peer.Login):
		return Mutual
	default:
		return Unrelated
	}
}

// Advance applies one "add friend" step from requester toward target and
// returns the resulting state. Exactly one transition exists per state:
//
//	Unrelated       -> RequestSent   (a pending request is recorded on the target)
//	RequestReceived -> Mutual        (the inverse pending request is accepted)
//	RequestSent     -> error         (same-direction repeat, ErrDuplicateRequest)
//	Mutual          -> error         (ErrAlreadyFriends)
//
// Either both accounts are updated or neither is.
func Advance(requester, target *account.Account) (State, *errs.CustomError) {
	if requester.Handle == target.Handle {
		return Unrelated, errs.NewError(errs.ErrSelfFriendship)
	}

	switch state := Classify(requester, target); state {
	case RequestReceived:
		requester.AcceptFriend(target.Login)
		target.AcceptFriend(requester.Login)
		return Mutual, nil

	case RequestSent:
		return state, errs.NewError(errs.ErrDuplicateRequest)

	case Mutual:
		return state, errs.NewError(errs.ErrAlreadyFriends)

	default:
		target.AddPendingRequest(requester.Login)
		return RequestSent, nil
	}
}
