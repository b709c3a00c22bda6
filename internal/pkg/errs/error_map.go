/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct. Every error
kind has exactly one fixed, user-facing message; callers distinguish outcomes by
this message (and the code), never by inspecting internal state.
*/
package errs

// errorMap stores the CustomError template corresponding to every application error code.
var errorMap = map[int]CustomError{
	// 2xxx: Account and Profile Business Logic Errors
	ErrAccountNotFound:  {Code: ErrAccountNotFound, Message: "Account not found."},
	ErrDuplicateAccount: {Code: ErrDuplicateAccount, Message: "An account with this login already exists."},
	ErrInvalidLogin:     {Code: ErrInvalidLogin, Message: "Invalid login."},
	ErrInvalidPassword:  {Code: ErrInvalidPassword, Message: "Invalid password."},
	ErrAttributeNotSet:  {Code: ErrAttributeNotSet, Message: "Attribute not set."},

	// 21xx: Friendship Protocol Errors
	ErrSelfFriendship:   {Code: ErrSelfFriendship, Message: "An account cannot add itself as a friend."},
	ErrDuplicateRequest: {Code: ErrDuplicateRequest, Message: "Friend already added, awaiting acceptance."},
	ErrAlreadyFriends:   {Code: ErrAlreadyFriends, Message: "Friend already added."},

	// 22xx: Messaging Errors
	ErrSelfMessage:  {Code: ErrSelfMessage, Message: "An account cannot send a message to itself."},
	ErrEmptyMailbox: {Code: ErrEmptyMailbox, Message: "No messages."},

	// 3xxx: Session and Security Errors
	ErrAuthenticationFailed: {Code: ErrAuthenticationFailed, Message: "Incorrect login or password."},

	// 5xxx: Internal System Errors
	ErrUnknown:        {Code: ErrUnknown, Message: "Something went wrong. Please try again."},
	ErrSnapshotLoad:   {Code: ErrSnapshotLoad, Message: "Failed to load the account snapshot."},
	ErrSnapshotSave:   {Code: ErrSnapshotSave, Message: "Failed to save the account snapshot."},
	ErrSnapshotDelete: {Code: ErrSnapshotDelete, Message: "Failed to delete the account snapshot."},
}
