package signal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHandler_InterruptCancelsContext verifies an interrupt cancels the
// context and closes Interrupted, exactly once.
func TestHandler_InterruptCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	assert.NoError(t, h.Context().Err())
	select {
	case <-h.Interrupted():
		t.Fatal("interrupted channel closed before any signal")
	default:
	}

	// Simulate the signal without delivering a real one.
	h.handleSignal()
	h.handleSignal()

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
	select {
	case <-h.Interrupted():
	default:
		t.Fatal("interrupted channel still open after signal")
	}
}

// TestHandler_StaysResponsiveAfterFirstSignal verifies the listener keeps
// draining the channel so repeated Ctrl+C never blocks delivery.
func TestHandler_StaysResponsiveAfterFirstSignal(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.sigChan <- nil
	// Blocks forever if the listener exited after the first signal.
	h.sigChan <- nil

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
}

// TestHandler_Stop verifies Stop cancels the context and is idempotent.
func TestHandler_Stop(t *testing.T) {
	h := NewHandler(context.Background())

	h.Stop()
	h.Stop()

	assert.Error(t, h.Context().Err())
}

// TestHandler_ParentCancellation verifies the handler's context follows its
// parent.
func TestHandler_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()

	assert.Error(t, h.Context().Err())
}
