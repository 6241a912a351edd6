package ledger

import (
	"fmt"
	"sync"
)

// AccountStore is a concurrent id -> Account mapping. It is populated
// by account creation and read on every operation, so it sits on
// sync.Map's read-mostly sweet spot. The store enforces no
// cross-account invariants; those belong to Account.Transfer.
type AccountStore struct {
	accounts sync.Map // int64 -> *Account
}

// NewAccountStore creates an empty store.
func NewAccountStore() *AccountStore {
	return &AccountStore{}
}

// Put registers an account under its id.
func (s *AccountStore) Put(a *Account) {
	s.accounts.Store(a.ID(), a)
}

// GetStrict resolves an account by id, failing with ErrAccountNotFound
// when absent.
func (s *AccountStore) GetStrict(id int64) (*Account, error) {
	v, ok := s.accounts.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, id)
	}
	return v.(*Account), nil
}
