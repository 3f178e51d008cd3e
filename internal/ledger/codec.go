package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/Nayem55/accounts-app/internal/model"
)

// encodeAccounts serializes the whole ledger into the stored blob format:
// a JSON array of accounts. An empty ledger encodes as "[]", never "null".
func encodeAccounts(accounts []model.Account) (string, error) {
	if accounts == nil {
		accounts = []model.Account{}
	}
	data, err := json.Marshal(accounts)
	if err != nil {
		return "", fmt.Errorf("encoding accounts: %w", err)
	}
	return string(data), nil
}

// decodeAccounts parses a stored blob back into accounts.
func decodeAccounts(blob string) ([]model.Account, error) {
	var accounts []model.Account
	if err := json.Unmarshal([]byte(blob), &accounts); err != nil {
		return nil, fmt.Errorf("decoding accounts: %w", err)
	}
	return accounts, nil
}
