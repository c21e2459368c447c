// Package ledger simulates the on-chain anchoring shown next to documents,
// badges, and verification runs. Nothing in the document lifecycle reads these
// values; they are display decoration behind an interface so tests stay deterministic.
package ledger

import (
	"context"
	"encoding/hex"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// Kind names what a transaction anchors.
type Kind string

const (
	KindRegistration Kind = "registration"
	KindAmendment    Kind = "amendment"
	KindBadge        Kind = "badge"
	KindVerification Kind = "verification"
)

// Status of a transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Transaction is the receipt attached to a ledger-anchored action.
type Transaction struct {
	TxHash      string    `json:"txHash"`
	BlockNumber uint64    `json:"blockNumber"`
	GasUsed     uint64    `json:"gasUsed"`
	GasCostUSD  float64   `json:"gasCost"`
	Timestamp   time.Time `json:"timestamp"`
	Status      Status    `json:"status"`
	ExplorerURL string    `json:"explorerUrl"`
}

// Ledger records an anchoring transaction for reference (a document or badge id).
type Ledger interface {
	Record(ctx context.Context, kind Kind, reference string) (Transaction, error)
}

// Gas economics used to derive the displayed cost.
const (
	GasPriceGwei = 12.5
	EthUSD       = 2450.0
	minGas       = 80000
	gasSpread    = 200000
	baseBlock    = 18_500_000
)

// DefaultExplorerURL is the transaction explorer prefix used when none is configured.
const DefaultExplorerURL = "https://sepolia.etherscan.io/tx/"

// GasCostUSD converts gas units to the displayed USD cost.
func GasCostUSD(gasUsed uint64) float64 {
	return float64(gasUsed) * GasPriceGwei * 1e-9 * EthUSD
}

// Simulated produces random-looking transactions with a monotonically
// increasing block number.
type Simulated struct {
	mu          sync.Mutex
	rng         *rand.Rand
	block       uint64
	explorerURL string
	now         func() time.Time
}

// SimulatedOption configures Simulated.
type SimulatedOption func(*Simulated)

// WithExplorerURL overrides the explorer prefix.
func WithExplorerURL(url string) SimulatedOption {
	return func(s *Simulated) {
		if url != "" {
			s.explorerURL = url
		}
	}
}

// WithSeed makes output reproducible.
func WithSeed(seed uint64) SimulatedOption {
	return func(s *Simulated) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithClock sets the timestamp source.
func WithClock(now func() time.Time) SimulatedOption {
	return func(s *Simulated) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSimulated(opts ...SimulatedOption) *Simulated {
	s := &Simulated{
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		explorerURL: DefaultExplorerURL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.block = baseBlock + s.rng.Uint64N(100_000)
	return s
}

func (s *Simulated) Record(ctx context.Context, _ Kind, _ string) (Transaction, error) {
	if err := ctx.Err(); err != nil {
		return Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var raw [32]byte
	for i := 0; i < len(raw); i += 8 {
		v := s.rng.Uint64()
		for j := 0; j < 8; j++ {
			raw[i+j] = byte(v >> (8 * j))
		}
	}
	s.block += 1 + s.rng.Uint64N(3)
	gas := minGas + s.rng.Uint64N(gasSpread)
	hash := "0x" + hex.EncodeToString(raw[:])

	return Transaction{
		TxHash:      hash,
		BlockNumber: s.block,
		GasUsed:     gas,
		GasCostUSD:  GasCostUSD(gas),
		Timestamp:   s.now(),
		Status:      StatusConfirmed,
		ExplorerURL: strings.TrimRight(s.explorerURL, "/") + "/" + hash,
	}, nil
}

// Static returns the same transaction every time, stamped with the
// recorded kind. Intended for tests.
type Static struct {
	Tx Transaction

	mu    sync.Mutex
	calls []Call
}

// Call is one Record invocation observed by Static.
type Call struct {
	Kind      Kind
	Reference string
}

func (s *Static) Record(ctx context.Context, kind Kind, reference string) (Transaction, error) {
	if err := ctx.Err(); err != nil {
		return Transaction{}, err
	}
	s.mu.Lock()
	s.calls = append(s.calls, Call{Kind: kind, Reference: reference})
	s.mu.Unlock()
	return s.Tx, nil
}

// Calls returns the invocations observed so far.
func (s *Static) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}
