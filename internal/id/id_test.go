package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAccountID(t *testing.T) {
	ts := time.Date(2024, 6, 1, 8, 50, 0, 0, time.UTC)
	assert.Equal(t, "1717231800000", FormatAccountID(ts))
}

func TestParseAccountIDRoundTrip(t *testing.T) {
	ts := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	got, err := ParseAccountID(FormatAccountID(ts))
	require.NoError(t, err)
	assert.True(t, got.Equal(ts))
}

func TestParseAccountIDInvalid(t *testing.T) {
	_, err := ParseAccountID("wallet")
	require.Error(t, err)

	_, err = ParseAccountID("")
	require.Error(t, err)
}

func TestNextAccountIDAvoidsCollisions(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	first := FormatAccountID(now)

	got := NextAccountID(now, map[string]bool{first: true})
	assert.NotEqual(t, first, got)

	parsed, err := ParseAccountID(got)
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, parsed.Sub(now))
}

func TestNextAccountIDNoCollision(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, FormatAccountID(now), NextAccountID(now, nil))
}
