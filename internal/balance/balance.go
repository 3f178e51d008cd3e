// Package balance derives credit/debit/balance totals from transactions.
// Everything here is pure: no state, no I/O.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/Nayem55/accounts-app/internal/model"
)

// Totals holds aggregated amounts for a set of transactions.
type Totals struct {
	Credit  decimal.Decimal
	Debit   decimal.Decimal
	Balance decimal.Decimal // always Credit - Debit
}

// Add combines two totals.
func (t Totals) Add(other Totals) Totals {
	return Totals{
		Credit:  t.Credit.Add(other.Credit),
		Debit:   t.Debit.Add(other.Debit),
		Balance: t.Balance.Add(other.Balance),
	}
}

// Sum totals a sequence of transactions. An empty sequence yields zeros.
func Sum(txs []model.Transaction) Totals {
	credit := decimal.Zero
	debit := decimal.Zero
	for _, tx := range txs {
		credit = credit.Add(tx.Credit)
		debit = debit.Add(tx.Debit)
	}
	return Totals{
		Credit:  credit,
		Debit:   debit,
		Balance: credit.Sub(debit),
	}
}

// SumAll totals every transaction across a ledger, in account order then
// transaction order. Equal to adding up each account's own totals.
func SumAll(accounts []model.Account) Totals {
	total := Totals{Credit: decimal.Zero, Debit: decimal.Zero, Balance: decimal.Zero}
	for _, acc := range accounts {
		total = total.Add(Sum(acc.Transactions))
	}
	return total
}
