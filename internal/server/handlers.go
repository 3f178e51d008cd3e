package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/Nayem55/accounts-app/internal/balance"
	"github.com/Nayem55/accounts-app/internal/ledger"
	"github.com/Nayem55/accounts-app/internal/model"
)

// amountField accepts a JSON amount as either a number or a string, since
// both shapes are in the wild. The raw text is handed to the ledger, which
// owns numeric validation.
type amountField string

func (a *amountField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = amountField(s)
		return nil
	}
	*a = amountField(data)
	return nil
}

type accountRequest struct {
	Name string `json:"name"`
}

type transactionRequest struct {
	Particular string      `json:"particular"`
	Amount     amountField `json:"amount"`
	Type       string      `json:"type"`
}

type totalsResponse struct {
	Credit   decimal.Decimal `json:"credit"`
	Debit    decimal.Decimal `json:"debit"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type accountResponse struct {
	model.Account
	Totals totalsResponse `json:"totals"`
}

func (s *Server) totals(t balance.Totals) totalsResponse {
	return totalsResponse{
		Credit:   t.Credit,
		Debit:    t.Debit,
		Balance:  t.Balance,
		Currency: s.currency,
	}
}

func (s *Server) accountView(acc model.Account) accountResponse {
	return accountResponse{
		Account: acc,
		Totals:  s.totals(balance.Sum(acc.Transactions)),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := s.store.Snapshot()
	views := make([]accountResponse, len(accounts))
	for i, acc := range accounts {
		views[i] = s.accountView(acc)
	}
	respondWithJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	acc, ok := s.store.Account(mux.Vars(r)["id"])
	if !ok {
		respondWithError(w, http.StatusNotFound, "account not found")
		return
	}
	respondWithJSON(w, http.StatusOK, s.accountView(acc))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.totals(balance.SumAll(s.store.Snapshot())))
}

func (s *Server) handleAddAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	acc, err := s.store.AddAccount(r.Context(), req.Name)
	if err != nil {
		s.mutationFailed(w, "add_account", err)
		return
	}
	mutationsTotal.WithLabelValues("add_account", "ok").Inc()
	respondWithJSON(w, http.StatusCreated, s.accountView(acc))
}

func (s *Server) handleRenameAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	if err := s.store.RenameAccount(r.Context(), mux.Vars(r)["id"], req.Name); err != nil {
		s.mutationFailed(w, "rename_account", err)
		return
	}
	mutationsTotal.WithLabelValues("rename_account", "ok").Inc()
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAccount(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.mutationFailed(w, "delete_account", err)
		return
	}
	mutationsTotal.WithLabelValues("delete_account", "ok").Inc()
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	tx, err := s.store.AddTransaction(r.Context(), mux.Vars(r)["id"], req.Particular, string(req.Amount), model.TxType(req.Type))
	if err != nil {
		s.mutationFailed(w, "add_transaction", err)
		return
	}
	mutationsTotal.WithLabelValues("add_transaction", "ok").Inc()
	respondWithJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleEditTransaction(w http.ResponseWriter, r *http.Request) {
	index, err := txIndex(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid transaction index")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	err = s.store.EditTransaction(r.Context(), mux.Vars(r)["id"], index, req.Particular, string(req.Amount), model.TxType(req.Type))
	if err != nil {
		s.mutationFailed(w, "edit_transaction", err)
		return
	}
	mutationsTotal.WithLabelValues("edit_transaction", "ok").Inc()
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	index, err := txIndex(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid transaction index")
		return
	}

	if err := s.store.DeleteTransaction(r.Context(), mux.Vars(r)["id"], index); err != nil {
		s.mutationFailed(w, "delete_transaction", err)
		return
	}
	mutationsTotal.WithLabelValues("delete_transaction", "ok").Inc()
	respondWithJSON(w, http.StatusNoContent, nil)
}

func txIndex(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["index"])
}

// mutationFailed maps ledger errors onto HTTP statuses: rejected input is the
// client's fault, stale targets are 404, and a failed durable write is a
// recoverable upstream failure the client may retry.
func (s *Server) mutationFailed(w http.ResponseWriter, action string, err error) {
	var verr *ledger.ValidationError
	var perr *ledger.PersistError

	switch {
	case errors.As(err, &verr):
		mutationsTotal.WithLabelValues(action, "invalid").Inc()
		respondWithError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, ledger.ErrAccountNotFound), errors.Is(err, ledger.ErrTransactionNotFound):
		mutationsTotal.WithLabelValues(action, "not_found").Inc()
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &perr):
		mutationsTotal.WithLabelValues(action, "persist_failed").Inc()
		respondWithError(w, http.StatusBadGateway, "saving ledger failed, retry the action")
	default:
		mutationsTotal.WithLabelValues(action, "error").Inc()
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}
