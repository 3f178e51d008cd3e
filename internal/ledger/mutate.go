package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nayem55/accounts-app/internal/id"
	"github.com/Nayem55/accounts-app/internal/model"
)

// AddAccount appends a new empty account and returns it. The ID is derived
// from the creation time and never collides with an existing one.
func (s *Store) AddAccount(ctx context.Context, name string) (model.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Account{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	var created model.Account
	err := s.update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		taken := make(map[string]bool, len(accounts))
		for _, a := range accounts {
			taken[a.ID] = true
		}
		created = model.Account{
			ID:           id.NextAccountID(s.now(), taken),
			Name:         name,
			Transactions: []model.Transaction{},
		}
		return append(accounts, created), nil
	})
	return created, err
}

// RenameAccount changes an account's name, keeping its ID and transactions.
func (s *Store) RenameAccount(ctx context.Context, accountID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	return s.update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		for i := range accounts {
			if accounts[i].ID == accountID {
				accounts[i].Name = name
				return accounts, nil
			}
		}
		return nil, fmt.Errorf("renaming account %s: %w", accountID, ErrAccountNotFound)
	})
}

// DeleteAccount removes an account and all its transactions.
func (s *Store) DeleteAccount(ctx context.Context, accountID string) error {
	return s.update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		next := accounts[:0]
		for _, a := range accounts {
			if a.ID != accountID {
				next = append(next, a)
			}
		}
		if len(next) == len(accounts) {
			return nil, fmt.Errorf("deleting account %s: %w", accountID, ErrAccountNotFound)
		}
		return next, nil
	})
}

// AddTransaction appends a credit or debit entry to an account, stamped with
// the current time, and returns it.
func (s *Store) AddTransaction(ctx context.Context, accountID, particular, amount string, txType model.TxType) (model.Transaction, error) {
	tx, err := newTransaction(particular, amount, txType, s.now().UTC())
	if err != nil {
		return model.Transaction{}, err
	}

	err = s.update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		for i := range accounts {
			if accounts[i].ID == accountID {
				accounts[i].Transactions = append(accounts[i].Transactions, tx)
				return accounts, nil
			}
		}
		return nil, fmt.Errorf("adding transaction to account %s: %w", accountID, ErrAccountNotFound)
	})
	return tx, err
}

// EditTransaction rewrites the particular, amount and type of the entry at
// index. The original date is preserved; edits do not re-stamp to now.
func (s *Store) EditTransaction(ctx context.Context, accountID string, index int, particular, amount string, txType model.TxType) error {
	// Validate before touching state; the date is filled in below.
	edited, err := newTransaction(particular, amount, txType, time.Time{})
	if err != nil {
		return err
	}

	return s.update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		for i := range accounts {
			if accounts[i].ID != accountID {
				continue
			}
			txs := accounts[i].Transactions
			if index < 0 || index >= len(txs) {
				return nil, fmt.Errorf("editing transaction %d of account %s: %w", index, accountID, ErrTransactionNotFound)
			}
			edited.Date = txs[index].Date
			txs[index] = edited
			return accounts, nil
		}
		return nil, fmt.Errorf("editing transaction of account %s: %w", accountID, ErrAccountNotFound)
	})
}

// DeleteTransaction removes the entry at index, shifting later entries down.
// Index targeting is safe because entries are only ever appended, never
// reordered.
func (s *Store) DeleteTransaction(ctx context.Context, accountID string, index int) error {
	return s.update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		for i := range accounts {
			if accounts[i].ID != accountID {
				continue
			}
			txs := accounts[i].Transactions
			if index < 0 || index >= len(txs) {
				return nil, fmt.Errorf("deleting transaction %d of account %s: %w", index, accountID, ErrTransactionNotFound)
			}
			accounts[i].Transactions = append(txs[:index], txs[index+1:]...)
			return accounts, nil
		}
		return nil, fmt.Errorf("deleting transaction of account %s: %w", accountID, ErrAccountNotFound)
	})
}

// newTransaction validates raw input and builds a Transaction with the amount
// routed to exactly one of credit/debit.
func newTransaction(particular, amount string, txType model.TxType, date time.Time) (model.Transaction, error) {
	particular = strings.TrimSpace(particular)
	if particular == "" {
		return model.Transaction{}, &ValidationError{Field: "particular", Reason: "must not be empty"}
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return model.Transaction{}, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", amount)}
	}
	if !value.IsPositive() {
		return model.Transaction{}, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}

	if !txType.Valid() {
		return model.Transaction{}, &ValidationError{Field: "type", Reason: fmt.Sprintf("%q is not credit or debit", txType)}
	}

	tx := model.Transaction{
		Date:       date,
		Particular: particular,
		Credit:     decimal.Zero,
		Debit:      decimal.Zero,
	}
	if txType == model.TxCredit {
		tx.Credit = value
	} else {
		tx.Debit = value
	}
	return tx, nil
}
