/*
Package errs provides custom error types and application-level error code constants.

These error codes clearly identify specific business or system errors both
internally within the service and in the messages surfaced to callers.
*/
package errs

// 2xxx: Account and Profile Business Logic Errors
const (
	// ErrAccountNotFound indicates that an operation referenced a login or
	// session token with no corresponding live account.
	ErrAccountNotFound = 2001

	// ErrDuplicateAccount indicates an account creation with an already-used login.
	ErrDuplicateAccount = 2002

	// ErrInvalidLogin indicates an empty login at creation, or a rename to a login
	// that is already occupied by another account.
	ErrInvalidLogin = 2003

	// ErrInvalidPassword indicates an empty password at account creation.
	ErrInvalidPassword = 2004

	// ErrAttributeNotSet indicates a read of a custom profile attribute that was never written.
	ErrAttributeNotSet = 2005
)

// 21xx: Friendship Protocol Errors
const (
	// ErrSelfFriendship indicates an account attempted to add itself as a friend.
	ErrSelfFriendship = 2101

	// ErrDuplicateRequest indicates a repeated friend request that is still awaiting acceptance.
	ErrDuplicateRequest = 2102

	// ErrAlreadyFriends indicates a friend request toward an account that is already a friend.
	ErrAlreadyFriends = 2103
)

// 22xx: Messaging Errors
const (
	// ErrSelfMessage indicates an account attempted to send a message to itself.
	ErrSelfMessage = 2201

	// ErrEmptyMailbox indicates a mailbox read with no queued message.
	ErrEmptyMailbox = 2202
)

// 3xxx: Session and Security Errors
const (
	// ErrAuthenticationFailed indicates a login/password mismatch at session open.
	ErrAuthenticationFailed = 3001
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general internal error.
	ErrUnknown = 5000

	// ErrSnapshotLoad indicates the persisted account snapshot could not be read or decoded.
	ErrSnapshotLoad = 5001

	// ErrSnapshotSave indicates the account snapshot could not be written.
	ErrSnapshotSave = 5002

	// ErrSnapshotDelete indicates the account snapshot could not be removed during reset.
	ErrSnapshotDelete = 5003
)
