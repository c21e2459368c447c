package ledger

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

func TestSimulated(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	l := NewSimulated(WithSeed(42), WithClock(func() time.Time { return fixed }), WithExplorerURL("https://explorer.test/tx/"))
	ctx := context.Background()

	first, err := l.Record(ctx, KindRegistration, "doc-001")
	require.NoError(t, err)
	second, err := l.Record(ctx, KindBadge, "doc-001")
	require.NoError(t, err)

	assert.Regexp(t, txHashPattern, first.TxHash)
	assert.NotEqual(t, first.TxHash, second.TxHash)
	assert.Greater(t, second.BlockNumber, first.BlockNumber)
	assert.Equal(t, StatusConfirmed, first.Status)
	assert.Equal(t, fixed, first.Timestamp)
	assert.Equal(t, "https://explorer.test/tx/"+first.TxHash, first.ExplorerURL)

	for _, tx := range []Transaction{first, second} {
		assert.GreaterOrEqual(t, tx.GasUsed, uint64(80000))
		assert.Less(t, tx.GasUsed, uint64(280000))
		assert.InDelta(t, GasCostUSD(tx.GasUsed), tx.GasCostUSD, 1e-9)
	}
}

func TestSimulated_SeedIsReproducible(t *testing.T) {
	a, err := NewSimulated(WithSeed(7)).Record(context.Background(), KindVerification, "doc-1")
	require.NoError(t, err)
	b, err := NewSimulated(WithSeed(7)).Record(context.Background(), KindVerification, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, a.TxHash, b.TxHash)
	assert.Equal(t, a.BlockNumber, b.BlockNumber)
}

func TestSimulated_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSimulated().Record(ctx, KindBadge, "doc-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGasCostUSD(t *testing.T) {
	// 100000 gas * 12.5 gwei = 0.00125 ETH = 3.0625 USD
	assert.InDelta(t, 3.0625, GasCostUSD(100000), 1e-9)
}

func TestStatic(t *testing.T) {
	s := &Static{Tx: Transaction{TxHash: "0xabc"}}
	tx, err := s.Record(context.Background(), KindBadge, "doc-9")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", tx.TxHash)
	assert.Equal(t, []Call{{Kind: KindBadge, Reference: "doc-9"}}, s.Calls())
}
