package model

// Account is a named bucket of transactions with an independent running
// balance. Transactions keep insertion order: appends go at the end, and
// edits and deletes address entries by index.
type Account struct {
	ID           string        `json:"id"`   // derived from creation time, never reused
	Name         string        `json:"name"` // free-text label, never empty
	Transactions []Transaction `json:"transactions"`
}

// Clone returns a deep copy of the account. The Transactions slice is always
// non-nil so the account serializes with an empty array rather than null.
func (a Account) Clone() Account {
	txs := make([]Transaction, len(a.Transactions))
	copy(txs, a.Transactions)
	a.Transactions = txs
	return a
}

// CloneAccounts deep-copies a ledger snapshot.
func CloneAccounts(accounts []Account) []Account {
	out := make([]Account, len(accounts))
	for i, a := range accounts {
		out[i] = a.Clone()
	}
	return out
}
