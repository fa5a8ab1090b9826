package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pulseerrors "github.com/mrz1836/pulse/internal/errors"
)

// testError is a custom error type used to test default branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func TestSentinelErrors_Existence(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", pulseerrors.ErrNotFound},
		{"ErrMalformedDocument", pulseerrors.ErrMalformedDocument},
		{"ErrTaskNotFound", pulseerrors.ErrTaskNotFound},
		{"ErrSessionNotFound", pulseerrors.ErrSessionNotFound},
		{"ErrProjectNotFound", pulseerrors.ErrProjectNotFound},
		{"ErrProjectExists", pulseerrors.ErrProjectExists},
		{"ErrReservedName", pulseerrors.ErrReservedName},
		{"ErrSessionOngoing", pulseerrors.ErrSessionOngoing},
		{"ErrNoOngoingSession", pulseerrors.ErrNoOngoingSession},
		{"ErrSessionEnded", pulseerrors.ErrSessionEnded},
		{"ErrEmptyValue", pulseerrors.ErrEmptyValue},
		{"ErrNoTasksFound", pulseerrors.ErrNoTasksFound},
		{"ErrInvalidOutputFormat", pulseerrors.ErrInvalidOutputFormat},
		{"ErrInvalidPeriod", pulseerrors.ErrInvalidPeriod},
		{"ErrInvalidDate", pulseerrors.ErrInvalidDate},
		{"ErrOperationCanceled", pulseerrors.ErrOperationCanceled},
		{"ErrHookFailed", pulseerrors.ErrHookFailed},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err, "%s should not be nil", tc.name)
			assert.NotEmpty(t, tc.err.Error(), "%s should have a message", tc.name)
		})
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	allErrors := []error{
		pulseerrors.ErrNotFound,
		pulseerrors.ErrMalformedDocument,
		pulseerrors.ErrTaskNotFound,
		pulseerrors.ErrSessionNotFound,
		pulseerrors.ErrSessionOngoing,
		pulseerrors.ErrNoOngoingSession,
		pulseerrors.ErrSessionEnded,
		pulseerrors.ErrHookFailed,
	}

	for i, lhs := range allErrors {
		for j, rhs := range allErrors {
			if i == j {
				assert.ErrorIs(t, lhs, rhs)
				continue
			}
			assert.NotErrorIs(t, lhs, rhs, "sentinels %d and %d must stay distinct", i, j)
		}
	}
}

func TestSentinelErrors_WrappingPreservesIdentity(t *testing.T) {
	wrapped := fmt.Errorf("failed to end session 'abc': %w", pulseerrors.ErrSessionEnded)
	assert.ErrorIs(t, wrapped, pulseerrors.ErrSessionEnded)
	assert.NotErrorIs(t, wrapped, pulseerrors.ErrSessionOngoing)

	doubleWrapped := fmt.Errorf("stop: %w", wrapped)
	assert.ErrorIs(t, doubleWrapped, pulseerrors.ErrSessionEnded)
}

func TestWrap(t *testing.T) {
	t.Run("nil error passes through", func(t *testing.T) {
		assert.NoError(t, pulseerrors.Wrap(nil, "context"))
		assert.NoError(t, pulseerrors.Wrapf(nil, "context %s", "x"))
	})

	t.Run("preserves error chain", func(t *testing.T) {
		err := pulseerrors.Wrap(pulseerrors.ErrTaskNotFound, "toggle")
		require.Error(t, err)
		assert.ErrorIs(t, err, pulseerrors.ErrTaskNotFound)
		assert.Equal(t, "toggle: task not found", err.Error())
	})

	t.Run("wrapf interpolates", func(t *testing.T) {
		err := pulseerrors.Wrapf(pulseerrors.ErrProjectExists, "add project %q", "pulse")
		require.Error(t, err)
		assert.ErrorIs(t, err, pulseerrors.ErrProjectExists)
		assert.Contains(t, err.Error(), `add project "pulse"`)
	})
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil yields empty",
			err:  nil,
			want: "",
		},
		{
			name: "direct sentinel",
			err:  pulseerrors.ErrSessionOngoing,
			want: "A session is already running.",
		},
		{
			name: "wrapped sentinel",
			err:  fmt.Errorf("start: %w", pulseerrors.ErrSessionOngoing),
			want: "A session is already running.",
		},
		{
			name: "unknown error keeps its message",
			err:  testError{msg: "something odd"},
			want: "something odd",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pulseerrors.UserMessage(tc.err))
		})
	}
}

func TestActionable(t *testing.T) {
	t.Run("sentinel with action", func(t *testing.T) {
		msg, action := pulseerrors.Actionable(pulseerrors.ErrNoOngoingSession)
		assert.Equal(t, "No session is currently running.", msg)
		assert.Equal(t, "Run 'pulse start' to begin one.", action)
	})

	t.Run("sentinel without action", func(t *testing.T) {
		msg, action := pulseerrors.Actionable(pulseerrors.ErrSessionEnded)
		assert.NotEmpty(t, msg)
		assert.Empty(t, action)
	})

	t.Run("unknown error has no action", func(t *testing.T) {
		msg, action := pulseerrors.Actionable(testError{msg: "boom"})
		assert.Equal(t, "boom", msg)
		assert.Empty(t, action)
	})

	t.Run("nil yields empty pair", func(t *testing.T) {
		msg, action := pulseerrors.Actionable(nil)
		assert.Empty(t, msg)
		assert.Empty(t, action)
	})
}
