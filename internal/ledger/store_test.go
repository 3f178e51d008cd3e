package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nayem55/accounts-app/internal/kv"
	"github.com/Nayem55/accounts-app/internal/model"
)

func newTestStore(t *testing.T) (*Store, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	store := New(mem, DefaultKey)

	// Deterministic clock: each call advances one millisecond so
	// timestamp-derived IDs stay unique.
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
	return store, mem
}

func sampleAccounts() []model.Account {
	return []model.Account{
		{
			ID:   "1717231800000",
			Name: "Wallet",
			Transactions: []model.Transaction{
				{
					Date:       time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
					Particular: "Salary",
					Credit:     decimal.NewFromInt(1000),
					Debit:      decimal.Zero,
				},
			},
		},
		{ID: "1717231800001", Name: "Savings", Transactions: []model.Transaction{}},
	}
}

// assertLedgerEqual compares two ledgers structurally via their stored form.
func assertLedgerEqual(t *testing.T, want, got []model.Account) {
	t.Helper()
	wantBlob, err := encodeAccounts(want)
	require.NoError(t, err)
	gotBlob, err := encodeAccounts(got)
	require.NoError(t, err)
	assert.Equal(t, wantBlob, gotBlob)
}

func TestLoadMissingSlot(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Load(context.Background()))
	assert.Empty(t, store.Snapshot())
}

func TestLoadCorruptBlobDegradesToEmpty(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, DefaultKey, "{not json"))

	err := store.Load(ctx)
	require.Error(t, err)

	var corrupt *CorruptStateError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, DefaultKey, corrupt.Key)

	// Usable with an empty ledger; stored blob untouched.
	assert.Empty(t, store.Snapshot())
	blob, _, err := mem.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "{not json", blob)
}

func TestReplaceThenLoadIsIdempotent(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()
	want := sampleAccounts()

	require.NoError(t, store.Replace(ctx, want))

	reloaded := New(mem, DefaultKey)
	require.NoError(t, reloaded.Load(ctx))
	assertLedgerEqual(t, want, reloaded.Snapshot())
}

func TestReplacePersistsBeforeCommit(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, sampleAccounts()))

	mem.FailSet = errors.New("disk full")
	err := store.Replace(ctx, nil)
	require.Error(t, err)

	var persist *PersistError
	require.ErrorAs(t, err, &persist)

	// In-memory state must not diverge from disk on a failed write.
	assertLedgerEqual(t, sampleAccounts(), store.Snapshot())
}

func TestReplaceEmptyLedgerStoresArray(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, nil))

	blob, found, err := mem.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", blob)
}

func TestSubscribeNotifiesOnSuccessfulReplace(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()

	var notified [][]model.Account
	cancel := store.Subscribe(func(accounts []model.Account) {
		notified = append(notified, accounts)
	})

	require.NoError(t, store.Replace(ctx, sampleAccounts()))
	require.Len(t, notified, 1)
	assertLedgerEqual(t, sampleAccounts(), notified[0])

	// Failed writes publish nothing.
	mem.FailSet = errors.New("disk full")
	require.Error(t, store.Replace(ctx, nil))
	assert.Len(t, notified, 1)
	mem.FailSet = nil

	cancel()
	require.NoError(t, store.Replace(ctx, nil))
	assert.Len(t, notified, 1)
}

func TestSubscriberMayReadStore(t *testing.T) {
	store, _ := newTestStore(t)

	var seen int
	store.Subscribe(func([]model.Account) {
		seen = len(store.Snapshot())
	})

	require.NoError(t, store.Replace(context.Background(), sampleAccounts()))
	assert.Equal(t, 2, seen)
}

func TestSnapshotIsACopy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, sampleAccounts()))

	snap := store.Snapshot()
	snap[0].Name = "Tampered"
	snap[0].Transactions[0].Particular = "Tampered"

	fresh := store.Snapshot()
	assert.Equal(t, "Wallet", fresh[0].Name)
	assert.Equal(t, "Salary", fresh[0].Transactions[0].Particular)
}

func TestAccountLookup(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Replace(context.Background(), sampleAccounts()))

	acc, ok := store.Account("1717231800001")
	require.True(t, ok)
	assert.Equal(t, "Savings", acc.Name)

	_, ok = store.Account("nope")
	assert.False(t, ok)
}

func TestExportImportRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, sampleAccounts()))

	blob, err := store.Export()
	require.NoError(t, err)

	restored, _ := newTestStore(t)
	require.NoError(t, restored.Import(ctx, blob))
	assertLedgerEqual(t, sampleAccounts(), restored.Snapshot())
}

func TestImportRejectsBadBlob(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, sampleAccounts()))

	err := store.Import(ctx, "not json")
	var corrupt *CorruptStateError
	require.ErrorAs(t, err, &corrupt)

	// Nothing changed.
	assertLedgerEqual(t, sampleAccounts(), store.Snapshot())
}

func TestLoadAcceptsLegacyEpochDates(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()

	legacy := `[{"id":"1700000000000","name":"Wallet","transactions":[` +
		`{"date":1717231800000,"particular":"Salary","credit":1000,"debit":0}]}]`
	require.NoError(t, mem.Set(ctx, DefaultKey, legacy))

	require.NoError(t, store.Load(ctx))
	snap := store.Snapshot()
	require.Len(t, snap, 1)
	require.Len(t, snap[0].Transactions, 1)
	assert.Equal(t, int64(1717231800000), snap[0].Transactions[0].Date.UnixMilli())
}
