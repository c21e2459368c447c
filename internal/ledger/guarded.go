package ledger

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"contium/pkg/platform/circuit"
)

// ErrUnavailable is returned while the breaker refuses ledger calls.
var ErrUnavailable = errors.New("ledger unavailable")

// Guarded stops calling a failing ledger until it recovers. Callers already
// treat ledger errors as non-fatal, so an open circuit only drops receipts.
type Guarded struct {
	next    Ledger
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewGuarded(next Ledger, breaker *circuit.Breaker, logger *slog.Logger) *Guarded {
	if next == nil || breaker == nil {
		panic("guarded ledger requires a ledger and a breaker")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Guarded{next: next, breaker: breaker, logger: logger}
}

func (g *Guarded) Record(ctx context.Context, kind Kind, reference string) (Transaction, error) {
	if !g.breaker.Allow() {
		return Transaction{}, ErrUnavailable
	}
	tx, err := g.next.Record(ctx, kind, reference)
	if err != nil {
		if change := g.breaker.RecordFailure(); change.Opened {
			g.logger.WarnContext(ctx, "circuit opened",
				"breaker", g.breaker.Name(),
				"error", err,
			)
		}
		return Transaction{}, err
	}
	if change := g.breaker.RecordSuccess(); change.Closed {
		g.logger.InfoContext(ctx, "circuit closed",
			"breaker", g.breaker.Name(),
		)
	}
	return tx, nil
}
