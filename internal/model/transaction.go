package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are plain numbers on the wire, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TxType selects which side of a transaction an amount lands on.
type TxType string

const (
	TxCredit TxType = "credit"
	TxDebit  TxType = "debit"
)

// Valid reports whether t is a known transaction type.
func (t TxType) Valid() bool {
	return t == TxCredit || t == TxDebit
}

// Transaction is a single credit or debit entry in an account.
// Exactly one of Credit/Debit is non-zero, enforced at creation.
type Transaction struct {
	Date       time.Time       // stamped at creation, preserved on edit
	Particular string          // free-text label, never empty
	Credit     decimal.Decimal // zero when the entry is a debit
	Debit      decimal.Decimal // zero when the entry is a credit
}

// txJSON is the wire shape of a Transaction. Date is raw because older
// ledger blobs store it as epoch milliseconds rather than a timestamp string.
type txJSON struct {
	Date       json.RawMessage `json:"date"`
	Particular string          `json:"particular"`
	Credit     decimal.Decimal `json:"credit"`
	Debit      decimal.Decimal `json:"debit"`
}

// MarshalJSON writes the transaction with an RFC 3339 UTC date.
func (t Transaction) MarshalJSON() ([]byte, error) {
	date, err := json.Marshal(t.Date.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, err
	}
	return json.Marshal(txJSON{
		Date:       date,
		Particular: t.Particular,
		Credit:     t.Credit,
		Debit:      t.Debit,
	})
}

// UnmarshalJSON accepts the date as either an RFC 3339 string or epoch
// milliseconds.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw txJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := parseDate(raw.Date)
	if err != nil {
		return err
	}

	t.Date = date
	t.Particular = raw.Particular
	t.Credit = raw.Credit
	t.Debit = raw.Debit
	return nil
}

func parseDate(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 {
		return time.Time{}, fmt.Errorf("transaction date missing")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		ts, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing transaction date %q: %w", s, err)
		}
		return ts, nil
	}

	var millis int64
	if err := json.Unmarshal(raw, &millis); err != nil {
		return time.Time{}, fmt.Errorf("transaction date %s is neither a timestamp string nor epoch milliseconds", raw)
	}
	return time.UnixMilli(millis).UTC(), nil
}
