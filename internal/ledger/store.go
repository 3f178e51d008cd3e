// Package ledger owns the canonical in-memory copy of the accounts list and
// keeps it in lockstep with durable storage. All mutations funnel through
// Replace: serialize, write, and only on a successful write commit to memory
// and notify subscribers. Memory and disk never diverge on a failed write.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Nayem55/accounts-app/internal/kv"
	"github.com/Nayem55/accounts-app/internal/model"
)

// DefaultKey is the storage slot the ledger lives under.
const DefaultKey = "accounts"

// Store holds the canonical ledger state. Consumers receive it by injection
// and render from Snapshot; local copies are read-only working data.
type Store struct {
	kv  kv.Store
	key string
	now func() time.Time

	mu       sync.Mutex
	accounts []model.Account
	subs     map[int]func([]model.Account)
	nextSub  int
}

// New creates a Store persisting to the given slot of a kv.Store. Call Load
// before first use.
func New(store kv.Store, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		kv:   store,
		key:  key,
		now:  time.Now,
		subs: make(map[int]func([]model.Account)),
	}
}

// Load reads the persisted ledger. A missing slot yields an empty ledger.
// An unparsable blob also yields an empty ledger but returns a
// *CorruptStateError so the caller can report it; the stored data is not
// touched or repaired.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}
	if !found {
		s.accounts = nil
		return nil
	}

	accounts, err := decodeAccounts(blob)
	if err != nil {
		s.accounts = nil
		return &CorruptStateError{Key: s.key, Err: err}
	}
	s.accounts = accounts
	return nil
}

// Replace is the sole mutation entry point: it persists newAccounts and, only
// after the write succeeds, commits them as the canonical state and notifies
// subscribers. On a *PersistError the in-memory ledger is unchanged.
func (s *Store) Replace(ctx context.Context, newAccounts []model.Account) error {
	s.mu.Lock()
	err := s.replaceLocked(ctx, newAccounts)
	subs, snap := s.notificationLocked(err)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return err
}

func (s *Store) replaceLocked(ctx context.Context, newAccounts []model.Account) error {
	newAccounts = model.CloneAccounts(newAccounts)

	blob, err := encodeAccounts(newAccounts)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, blob); err != nil {
		return &PersistError{Key: s.key, Err: err}
	}

	s.accounts = newAccounts
	return nil
}

// notificationLocked collects the subscriber list and a snapshot to deliver
// once the lock is released. Notifying outside the lock lets subscribers read
// the store without deadlocking.
func (s *Store) notificationLocked(err error) ([]func([]model.Account), []model.Account) {
	if err != nil || len(s.subs) == 0 {
		return nil, nil
	}
	subs := make([]func([]model.Account), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs, model.CloneAccounts(s.accounts)
}

// update runs a read-modify-write cycle atomically: transform receives a copy
// of the canonical accounts and returns the replacement sequence. Holding the
// lock across the whole cycle rules out lost updates between concurrent
// callers.
func (s *Store) update(ctx context.Context, transform func([]model.Account) ([]model.Account, error)) error {
	s.mu.Lock()
	next, err := transform(model.CloneAccounts(s.accounts))
	if err == nil {
		err = s.replaceLocked(ctx, next)
	}
	subs, snap := s.notificationLocked(err)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return err
}

// Snapshot returns a deep copy of the canonical accounts in display order.
func (s *Store) Snapshot() []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneAccounts(s.accounts)
}

// Account returns a copy of the account with the given ID.
func (s *Store) Account(accountID string) (model.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == accountID {
			return a.Clone(), true
		}
	}
	return model.Account{}, false
}

// Export returns the canonical ledger in its stored blob format, suitable
// for writing to a backup file.
func (s *Store) Export() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return encodeAccounts(s.accounts)
}

// Import parses a blob in the stored format and installs it as the new
// ledger via Replace. A blob that does not parse leaves everything unchanged.
func (s *Store) Import(ctx context.Context, blob string) error {
	accounts, err := decodeAccounts(blob)
	if err != nil {
		return &CorruptStateError{Key: s.key, Err: err}
	}
	return s.Replace(ctx, accounts)
}

// Subscribe registers fn to run with a fresh snapshot after every successful
// Replace. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func([]model.Account)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subID := s.nextSub
	s.nextSub++
	s.subs[subID] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, subID)
	}
}
