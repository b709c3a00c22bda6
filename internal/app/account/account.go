/*
Package account contains the core data structures for user identity, profile
attributes, friendship state, and the per-account mailbox.

This file defines the Account struct. Its JSON tags form the durable snapshot
shape: everything except the internal handle is persisted verbatim.
*/
package account

// Account represents a registered user of the service.
//
// Friends and PendingRequests reference peers by login, in insertion order.
// PendingRequests holds inbound requests only: the logins of accounts that
// asked this account for friendship and are still awaiting acceptance.
type Account struct {
	// Handle is the stable internal identifier. It never changes, is never
	// persisted, and is reassigned when a snapshot is loaded.
	Handle string `json:"-"`

	// Login is the unique, human-chosen identifier. Mutable via profile edit,
	// but uniqueness across the directory is enforced at all times.
	Login string `json:"login"`

	// Password is the plaintext-compared credential. It is also a readable
	// profile attribute, so it cannot be stored hashed.
	Password string `json:"password"`

	// Name is the display name.
	Name string `json:"name"`

	// Attributes holds the free-form profile attributes. The reserved names
	// "name", "password" and "login" are never stored here; they are resolved
	// to the built-in fields at the API boundary.
	Attributes map[string]string `json:"attributes"`

	// Friends lists mutual friends in acceptance order, without duplicates.
	Friends []string `json:"friends"`

	// PendingRequests lists inbound friend requests not yet accepted.
	PendingRequests []string `json:"pendingRequests"`

	// Mailbox is the FIFO queue of inbound messages.
	Mailbox Mailbox `json:"mailbox"`
}

// New constructs an Account with the given handle and credentials and empty
// attribute, friend, request and mailbox state.
func New(handle, login, password, name string) *Account {
	return &Account{
		Handle:          handle,
		Login:           login,
		Password:        password,
		Name:            name,
		Attributes:      make(map[string]string),
		Friends:         []string{},
		PendingRequests: []string{},
		Mailbox:         Mailbox{},
	}
}

// CheckPassword reports whether the supplied password matches the account's credential.
func (a *Account) CheckPassword(password string) bool {
	return a.Password == password
}

// HasFriend reports whether login appears in this account's friend list.
func (a *Account) HasFriend(login string) bool {
	for _, friend := range a.Friends {
		if friend == login {
			return true
		}
	}
	return false
}

// HasPendingFrom reports whether this account holds an inbound, unaccepted
// friend request from login.
func (a *Account) HasPendingFrom(login string) bool {
	for _, requester := range a.PendingRequests {
		if requester == login {
			return true
		}
	}
	return false
}

// AddPendingRequest records an inbound friend request from login.
func (a *Account) AddPendingRequest(login string) {
	a.PendingRequests = append(a.PendingRequests, login)
}

// AcceptFriend appends login to the friend list, dropping any pending request
// from that login. Appending preserves acceptance order.
func (a *Account) AcceptFriend(login string) {
	a.removePendingFrom(login)
	a.Friends = append(a.Friends, login)
}

func (a *Account) removePendingFrom(login string) {
	for i, requester := range a.PendingRequests {
		if requester == login {
			a.PendingRequests = append(a.PendingRequests[:i], a.PendingRequests[i+1:]...)
			return
		}
	}
}
