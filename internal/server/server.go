// Package server exposes the ledger over a local HTTP JSON API. It is a
// presentation surface for the single on-device user, not a sync protocol:
// every handler renders from the injected store's canonical snapshot.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nayem55/accounts-app/internal/ledger"
	"github.com/Nayem55/accounts-app/internal/model"
)

var (
	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "accounts_ledger_mutations_total",
		Help: "Ledger mutations processed, labeled by action and outcome",
	}, []string{"action", "outcome"})

	accountCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "accounts_ledger_accounts",
		Help: "Number of accounts in the ledger",
	})
)

// Server handles the HTTP surface over a ledger store.
type Server struct {
	store    *ledger.Store
	currency string
	router   *mux.Router
}

// New creates a Server around an already-loaded ledger store. The currency
// is a display label echoed in totals payloads.
func New(store *ledger.Store, currency string) *Server {
	s := &Server{store: store, currency: currency}

	accountCount.Set(float64(len(store.Snapshot())))
	store.Subscribe(func(accounts []model.Account) {
		accountCount.Set(float64(len(accounts)))
	})

	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/accounts", s.handleListAccounts).Methods(http.MethodGet)
	api.HandleFunc("/accounts", s.handleAddAccount).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{id}", s.handleGetAccount).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{id}", s.handleRenameAccount).Methods(http.MethodPut)
	api.HandleFunc("/accounts/{id}", s.handleDeleteAccount).Methods(http.MethodDelete)
	api.HandleFunc("/accounts/{id}/transactions", s.handleAddTransaction).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{id}/transactions/{index}", s.handleEditTransaction).Methods(http.MethodPut)
	api.HandleFunc("/accounts/{id}/transactions/{index}", s.handleDeleteTransaction).Methods(http.MethodDelete)
	api.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)

	s.router = r
	return s
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
