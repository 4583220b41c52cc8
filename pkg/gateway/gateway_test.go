package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSimulatedApprovalRate(t *testing.T) {
	g := NewSimulated(1, 0.9, 0)
	method := Method{Type: "card", CardNumber: "4242424242424242"}

	approved := 0
	const n = 2000
	for i := 0; i < n; i++ {
		out, err := g.Authorize(context.Background(), 5000, method)
		require.NoError(t, err)
		require.NotNil(t, out)
		if out.Status == OutcomeApproved {
			require.NotEmpty(t, out.Reference)
			approved++
		} else {
			require.NotEmpty(t, out.Reason)
		}
	}

	rate := float64(approved) / n
	require.Greater(t, rate, 0.85)
	require.Less(t, rate, 0.95)
}

func TestSimulatedAlwaysApprove(t *testing.T) {
	g := NewSimulated(7, 1.0, 0)

	for i := 0; i < 50; i++ {
		out, err := g.Authorize(context.Background(), 100, Method{Type: "card"})
		require.NoError(t, err)
		require.Equal(t, OutcomeApproved, out.Status)
	}
}

func TestSimulatedInvalidAmount(t *testing.T) {
	g := NewSimulated(1, 1.0, 0)

	out, err := g.Authorize(context.Background(), 0, Method{Type: "card"})
	require.NoError(t, err)
	require.Equal(t, OutcomeDeclined, out.Status)
}

func TestSimulatedContextCancelled(t *testing.T) {
	g := NewSimulated(1, 1.0, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := g.Authorize(ctx, 5000, Method{Type: "card"})
	require.Error(t, err)
	require.Nil(t, out)
}

func TestMethodLast4(t *testing.T) {
	require.Equal(t, "4242", Method{CardNumber: "4242424242424242"}.Last4())
	require.Equal(t, "", Method{Type: "cash"}.Last4())
}
