package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

type OutcomeStatus string

const (
	OutcomeApproved OutcomeStatus = "approved"
	OutcomeDeclined OutcomeStatus = "declined"
)

// Method is what the booking flow hands to the gateway. Only the type and the
// masked card tail ever leave this package.
type Method struct {
	Type       string // card, sbp, cash
	CardNumber string
	CardHolder string
}

// Last4 returns the card tail for receipts, empty for non-card methods.
func (m Method) Last4() string {
	if len(m.CardNumber) < 4 {
		return ""
	}
	return m.CardNumber[len(m.CardNumber)-4:]
}

type Outcome struct {
	Status    OutcomeStatus
	Reference string // gateway transaction reference, set on approval
	Reason    string // decline reason, set on decline
}

// Gateway authorizes a charge. Implementations must distinguish a decline
// (Outcome with OutcomeDeclined, nil error) from the gateway being unreachable
// (nil Outcome, non-nil error) so callers can leave bookings retryable.
type Gateway interface {
	Authorize(ctx context.Context, amount float64, method Method) (*Outcome, error)
}

// Simulated is the stand-in gateway: it waits for a configurable latency and
// approves with a configurable rate from a seeded source, which keeps tests
// deterministic.
type Simulated struct {
	mu           sync.Mutex
	rnd          *rand.Rand
	approvalRate float64
	latency      time.Duration
}

func NewSimulated(seed int64, approvalRate float64, latency time.Duration) *Simulated {
	if approvalRate < 0 || approvalRate > 1 {
		approvalRate = 0.9
	}
	return &Simulated{
		rnd:          rand.New(rand.NewSource(seed)),
		approvalRate: approvalRate,
		latency:      latency,
	}
}

func (g *Simulated) Authorize(ctx context.Context, amount float64, method Method) (*Outcome, error) {
	if amount <= 0 {
		return &Outcome{Status: OutcomeDeclined, Reason: "invalid amount"}, nil
	}

	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	g.mu.Lock()
	roll := g.rnd.Float64()
	ref := fmt.Sprintf("TXN-%d-%04d", time.Now().Unix(), g.rnd.Intn(10000))
	g.mu.Unlock()

	if roll < g.approvalRate {
		return &Outcome{Status: OutcomeApproved, Reference: ref}, nil
	}
	return &Outcome{Status: OutcomeDeclined, Reason: "card declined by issuer"}, nil
}
