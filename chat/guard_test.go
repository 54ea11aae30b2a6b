package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionGuardRejectsSecondBegin(t *testing.T) {
	guard := NewSubmissionGuard(10 * time.Millisecond)

	require.NoError(t, guard.TryBegin())
	assert.ErrorIs(t, guard.TryBegin(), ErrAlreadyProcessing)
}

func TestSubmissionGuardCooldownWindow(t *testing.T) {
	guard := NewSubmissionGuard(20 * time.Millisecond)

	require.NoError(t, guard.TryBegin())
	guard.Release()

	// still inside the cooldown window
	assert.ErrorIs(t, guard.TryBegin(), ErrAlreadyProcessing)

	time.Sleep(50 * time.Millisecond)
	assert.NoError(t, guard.TryBegin())
}

func TestSubmissionGuardReleasesAfterFailureToo(t *testing.T) {
	guard := NewSubmissionGuard(0)

	require.NoError(t, guard.TryBegin())
	// failure and success share the same release path
	guard.Release()
	assert.NoError(t, guard.TryBegin())
}
