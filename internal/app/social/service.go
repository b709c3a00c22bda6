/*
Package social contains the service facade binding the directory, the session
manager, the friendship protocol and the mailboxes together.

This file defines the Service struct, the single entry point for every
operation of the command surface. All mutating operations are serialized
behind one exclusive lock: the design assumes one logical actor at a time, so
no finer locking granularity exists anywhere below this layer.
*/
package social

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"kith/internal/app/account"
	"kith/internal/app/directory"
	"kith/internal/app/friends"
	"kith/internal/app/session"
	"kith/internal/app/snapshot"
	"kith/internal/configs"
	"kith/internal/pkg/errs"
	"kith/internal/pkg/logx"
)

// Service is the social-graph service. It owns the Directory, the session
// Manager and the snapshot Store, and exposes the operations of the command
// surface. Construct it with New and tear it down with Shutdown.
type Service struct {
	// mu serializes every operation against the in-memory state.
	mu sync.Mutex

	// dir is the process-wide account registry.
	dir *directory.Directory

	// sessions maps live tokens to authenticated accounts.
	sessions *session.Manager

	// store persists the account graph across process restarts.
	store snapshot.Store

	// structured logger with Service context.
	logger zerolog.Logger
}

// New constructs the Service and loads the persisted snapshot, replaying
// account creation and restoring friends, pending requests, mailboxes and
// attributes verbatim. An absent snapshot yields an empty directory.
func New(ctx context.Context, cfg *configs.AppConfig, store snapshot.Store) (*Service, error) {
	s := &Service{
		dir:      directory.New(),
		sessions: session.NewManager(cfg.JWTSecret),
		store:    store,
		logger:   logx.Logger().With().Str("component", "Service").Logger(),
	}

	records, err := store.Load(ctx)
	if err != nil {
		logx.Error(err, "failed to load account snapshot")
		return nil, errs.NewError(errs.ErrSnapshotLoad)
	}

	for _, rec := range records {
		acc, cerr := s.dir.Create(rec.Login, rec.Password, rec.Name)
		if cerr != nil {
			s.logger.Warn().Str("login", rec.Login).Str("reason", cerr.Message).Msg("Skipping invalid snapshot record.")
			continue
		}

		acc.Friends = append(acc.Friends, rec.Friends...)
		acc.PendingRequests = append(acc.PendingRequests, rec.PendingRequests...)
		acc.Mailbox = append(acc.Mailbox, rec.Mailbox...)
		for name, value := range rec.Attributes {
			acc.Attributes[name] = value
		}
	}

	s.logger.Info().Int("accounts", s.dir.Len()).Msg("Service initialized from snapshot.")
	return s, nil
}

// CreateAccount registers a new account with the given login, password and
// optional display name.
func (s *Service) CreateAccount(login, password, name string) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.dir.Create(login, password, name)
	return err
}

// Attribute returns the value of an account's profile attribute. The reserved
// names "name", "password" and "login" read the built-in fields.
func (s *Service) Attribute(login, name string) (string, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.dir.Lookup(login)
	if acc == nil {
		return "", errs.NewError(errs.ErrAccountNotFound)
	}

	return acc.Attribute(account.ResolveField(name))
}

// OpenSession authenticates the login/password pair and returns a new session
// token. Unknown logins and password mismatches are indistinguishable to the
// caller: both fail with ErrAuthenticationFailed.
func (s *Service) OpenSession(login, password string) (string, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.dir.Lookup(login)
	if acc == nil || !acc.CheckPassword(password) {
		s.logger.Warn().Str("login", login).Msg("Authentication failed.")
		return "", errs.NewError(errs.ErrAuthenticationFailed)
	}

	return s.sessions.Issue(acc)
}

// EditProfile writes a profile attribute of the authenticated account.
// Writing "login" is a rename and is subject to the directory uniqueness rule.
func (s *Service) EditProfile(token, name, value string) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.authenticate(token)
	if err != nil {
		return err
	}

	field := account.ResolveField(name)
	if field.Kind == account.FieldLogin {
		return s.dir.Rename(acc.Handle, value)
	}

	acc.SetAttribute(field, value)
	return nil
}

// IsFriend reports whether friend appears in login's friend list. The
// relation is symmetric by construction, but the query checks one side only.
func (s *Service) IsFriend(login, friend string) (bool, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.dir.Lookup(login)
	if acc == nil {
		return false, errs.NewError(errs.ErrAccountNotFound)
	}

	return acc.HasFriend(friend), nil
}

// AddFriend advances the friendship protocol from the authenticated account
// toward the target login: it either records a pending request or, when the
// target had already requested the caller, accepts it into mutual friendship.
func (s *Service) AddFriend(token, friendLogin string) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.authenticate(token)
	if err != nil {
		return err
	}

	target := s.dir.Lookup(friendLogin)
	if target == nil {
		return errs.NewError(errs.ErrAccountNotFound)
	}

	state, err := friends.Advance(acc, target)
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("requester", acc.Login).
		Str("target", target.Login).
		Str("state", state.String()).
		Msg("Friendship advanced.")
	return nil
}

// Friends returns login's friend list in acceptance order.
func (s *Service) Friends(login string) ([]string, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := s.dir.Lookup(login)
	if acc == nil {
		return nil, errs.NewError(errs.ErrAccountNotFound)
	}

	list := make([]string, len(acc.Friends))
	copy(list, acc.Friends)
	return list, nil
}

// SendMessage appends a message from the authenticated account to the
// recipient's mailbox tail.
func (s *Service) SendMessage(token, recipient, body string) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, err := s.authenticate(token)
	if err != nil {
		return err
	}

	receiver := s.dir.Lookup(recipient)
	if receiver == nil {
		return errs.NewError(errs.ErrAccountNotFound)
	}

	if sender.Handle == receiver.Handle {
		return errs.NewError(errs.ErrSelfMessage)
	}

	receiver.Mailbox.Push(account.Message{Sender: sender.Login, Body: body})
	return nil
}

// ReadMessage removes and returns the head message of the authenticated
// account's mailbox. Strict FIFO, at most one message per call.
func (s *Service) ReadMessage(token string) (string, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.authenticate(token)
	if err != nil {
		return "", err
	}

	msg, ok := acc.Mailbox.Pop()
	if !ok {
		return "", errs.NewError(errs.ErrEmptyMailbox)
	}

	return msg.Body, nil
}

// Reset clears all accounts, invalidates all sessions and deletes the durable
// snapshot.
func (s *Service) Reset(ctx context.Context) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dir.Reset()
	s.sessions.Reset()

	if err := s.store.Delete(ctx); err != nil {
		logx.Error(err, "failed to delete snapshot during reset")
		return errs.NewError(errs.ErrSnapshotDelete)
	}

	s.logger.Info().Msg("System reset complete.")
	return nil
}

// Shutdown saves the full account graph to the snapshot store. Sessions are
// not persisted.
func (s *Service) Shutdown(ctx context.Context) *errs.CustomError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, s.dir.Accounts()); err != nil {
		logx.Error(err, "failed to save snapshot during shutdown")
		return errs.NewError(errs.ErrSnapshotSave)
	}

	s.logger.Info().Int("accounts", s.dir.Len()).Msg("Snapshot saved.")
	return nil
}

// authenticate resolves a session token to its live account. Callers hold the lock.
func (s *Service) authenticate(token string) (*account.Account, *errs.CustomError) {
	handle, err := s.sessions.Resolve(token)
	if err != nil {
		return nil, err
	}

	acc := s.dir.Get(handle)
	if acc == nil {
		// The directory was reset while the token survived in a caller's hand.
		return nil, errs.NewError(errs.ErrAccountNotFound)
	}

	return acc, nil
}
