/*
Package directory implements the process-wide account registry.

The Directory exclusively owns all Account instances. Accounts are keyed by a
stable internal handle; the mutable login is a secondary index, so renaming an
account only rewrites the index entry, never the primary key.
*/
package directory

import (
	"github.com/rs/zerolog"

	"kith/internal/app/account"
	"kith/internal/pkg/errs"
	"kith/internal/pkg/logx"
	"kith/internal/pkg/randx"
)

// Directory is the registry of all live accounts.
//
// It is not safe for concurrent use on its own; the owning service serializes
// access behind a single lock.
type Directory struct {
	// accounts maps stable handles to accounts.
	accounts map[string]*account.Account

	// logins maps each unique login to the owning account's handle.
	logins map[string]string

	// order holds handles in creation order, giving snapshots a stable layout.
	order []string

	// structured logger with Directory context.
	logger zerolog.Logger
}

// New constructs an empty Directory.
func New() *Directory {
	return &Directory{
		accounts: make(map[string]*account.Account),
		logins:   make(map[string]string),
		logger:   logx.Logger().With().Str("component", "Directory").Logger(),
	}
}

// Create registers a new account under the given login. It fails with
// ErrDuplicateAccount when the login is taken, and with ErrInvalidLogin or
// ErrInvalidPassword when the respective credential is empty.
func (d *Directory) Create(login, password, name string) (*account.Account, *errs.CustomError) {
	if _, ok := d.logins[login]; ok {
		d.logger.Warn().Str("login", login).Msg("Attempted to create existing account.")
		return nil, errs.NewError(errs.ErrDuplicateAccount)
	}

	if login == "" {
		return nil, errs.NewError(errs.ErrInvalidLogin)
	}
	if password == "" {
		return nil, errs.NewError(errs.ErrInvalidPassword)
	}

	acc := account.New(randx.AccountHandle(), login, password, name)

	d.accounts[acc.Handle] = acc
	d.logins[login] = acc.Handle
	d.order = append(d.order, acc.Handle)

	d.logger.Info().Str("login", login).Str("handle", acc.Handle).Msg("Account created.")
	return acc, nil
}

// Lookup returns the account registered under the given login, or nil.
// Exact match only.
func (d *Directory) Lookup(login string) *account.Account {
	handle, ok := d.logins[login]
	if !ok {
		return nil
	}
	return d.accounts[handle]
}

// Get returns the account with the given stable handle, or nil.
func (d *Directory) Get(handle string) *account.Account {
	return d.accounts[handle]
}

// Rename changes the login of the account identified by handle. It fails with
// ErrInvalidLogin when the new login is occupied by a different account.
// Renaming an account to its current login is a no-op.
func (d *Directory) Rename(handle, newLogin string) *errs.CustomError {
	acc := d.accounts[handle]
	if acc == nil {
		return errs.NewError(errs.ErrAccountNotFound)
	}

	if owner, ok := d.logins[newLogin]; ok {
		if owner == handle {
			return nil
		}
		d.logger.Warn().
			Str("login", acc.Login).
			Str("new_login", newLogin).
			Msg("Rename rejected: login already taken.")
		return errs.NewError(errs.ErrInvalidLogin)
	}

	if newLogin == "" {
		return errs.NewError(errs.ErrInvalidLogin)
	}

	oldLogin := acc.Login
	delete(d.logins, oldLogin)
	d.logins[newLogin] = handle
	acc.Login = newLogin

	d.logger.Info().Str("old_login", oldLogin).Str("new_login", newLogin).Msg("Account renamed.")
	return nil
}

// Accounts returns all live accounts in creation order.
func (d *Directory) Accounts() []*account.Account {
	accounts := make([]*account.Account, 0, len(d.order))
	for _, handle := range d.order {
		accounts = append(accounts, d.accounts[handle])
	}
	return accounts
}

// Len returns the number of live accounts.
func (d *Directory) Len() int {
	return len(d.accounts)
}

// Reset removes every account from the registry.
func (d *Directory) Reset() {
	d.accounts = make(map[string]*account.Account)
	d.logins = make(map[string]string)
	d.order = nil

	d.logger.Info().Msg("Directory cleared.")
}
