package ledger

import (
	"errors"
	"fmt"
)

// ErrAccountNotFound reports a mutation that targeted an account ID no longer
// in the ledger.
var ErrAccountNotFound = errors.New("account not found")

// ErrTransactionNotFound reports a transaction index outside an account's
// transaction list.
var ErrTransactionNotFound = errors.New("transaction not found")

// ValidationError rejects bad input before any state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CorruptStateError reports a persisted ledger blob that could not be parsed.
// The store degrades to an empty ledger; the data is left in place untouched.
type CorruptStateError struct {
	Key string
	Err error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt ledger state in slot %q: %v", e.Key, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

// PersistError reports a failed durable write. The in-memory ledger is
// unchanged; the caller may retry the same action.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persisting ledger to slot %q: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
