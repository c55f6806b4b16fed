//go:build unit

package commands_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/event"
	"booking-core/internal/domain/verification"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/shared"
	"booking-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// start sits two hours out so the fixture clock is already inside the issue window.
var codeStart = builder.DefaultNow.Add(2 * time.Hour)

func TestVerificationCommands_Issue(t *testing.T) {
	t.Run("provider sees the code, requester does not", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, codeStart)

		issued, err := f.verifications.Issue(f.ctx, view.ID, f.providerID)
		require.NoError(t, err)
		assert.True(t, issued.Issued)
		assert.Equal(t, "ABC001", issued.Code)
		assert.Equal(t, codeStart.Add(verification.DefaultGrace), issued.ExpiresAt)

		again, err := f.verifications.Issue(f.ctx, view.ID, f.requesterID)
		require.NoError(t, err)
		assert.False(t, again.Issued, "the live code is reused")
		assert.Empty(t, again.Code)
		assert.Equal(t, issued.ExpiresAt, again.ExpiresAt)

		assert.Contains(t, eventTypes(f.pendingEvents(t)), event.CodeIssued)
	})

	t.Run("before the window opens", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, builder.DefaultNow.Add(72*time.Hour))

		_, err := f.verifications.Issue(f.ctx, view.ID, f.providerID)
		require.ErrorIs(t, err, verification.ErrCodeWindowClosed)
	})

	t.Run("pending bookings get no code", func(t *testing.T) {
		f := newFixture(t)
		view := f.create(t, 1, codeStart)

		_, err := f.verifications.Issue(f.ctx, view.ID, f.providerID)
		require.ErrorIs(t, err, verification.ErrBookingNotAccepted)
	})

	t.Run("outsiders", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, codeStart)

		_, err := f.verifications.Issue(f.ctx, view.ID, uuid.New())
		require.ErrorIs(t, err, shared.ErrNotParticipant)
	})

	t.Run("concurrent issue mints a single code", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, codeStart)

		results := make([]*commands.IssuedCode, 8)
		errs := concurrently(len(results), func(i int) error {
			var err error
			results[i], err = f.verifications.Issue(f.ctx, view.ID, f.providerID)
			return err
		})

		minted := 0
		for i, err := range errs {
			require.NoError(t, err)
			assert.Equal(t, "ABC001", results[i].Code)
			if results[i].Issued {
				minted++
			}
		}
		assert.Equal(t, 1, minted)
	})
}

func TestVerificationCommands_Verify(t *testing.T) {
	t.Run("mismatches are persisted and reported", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, codeStart)
		issued, err := f.verifications.Issue(f.ctx, view.ID, f.providerID)
		require.NoError(t, err)

		for want := 1; want <= 2; want++ {
			result, err := f.verifications.Verify(f.ctx, view.ID, "WRONG0", f.requesterID)
			require.ErrorIs(t, err, verification.ErrCodeMismatch)
			require.NotNil(t, result)
			assert.Equal(t, want, result.FailedAttempts)
		}

		status, err := f.codeStatus.GetStatus(f.ctx, f.requesterID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, status.FailedAttempts)
		assert.Equal(t, string(verification.StateIssued), status.State)

		result, err := f.verifications.Verify(f.ctx, view.ID, " "+issued.Code+" ", f.requesterID)
		require.NoError(t, err)
		assert.True(t, result.Verified)
		assert.Equal(t, 2, result.FailedAttempts)

		_, err = f.verifications.Verify(f.ctx, view.ID, issued.Code, f.requesterID)
		require.ErrorIs(t, err, verification.ErrCodeAlreadyVerified)
	})

	t.Run("only the requester verifies", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, codeStart)
		issued, err := f.verifications.Issue(f.ctx, view.ID, f.providerID)
		require.NoError(t, err)

		_, err = f.verifications.Verify(f.ctx, view.ID, issued.Code, f.providerID)
		require.ErrorIs(t, err, shared.ErrNotRequester)
	})

	t.Run("after the grace period", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, codeStart)
		issued, err := f.verifications.Issue(f.ctx, view.ID, f.providerID)
		require.NoError(t, err)

		f.clock.Set(issued.ExpiresAt.Add(time.Second))
		_, err = f.verifications.Verify(f.ctx, view.ID, issued.Code, f.requesterID)
		require.ErrorIs(t, err, verification.ErrCodeWindowClosed)
	})

	t.Run("before any code is issued", func(t *testing.T) {
		f := newFixture(t)
		view := f.createAccepted(t, codeStart)

		_, err := f.verifications.Verify(f.ctx, view.ID, "ABC001", f.requesterID)
		require.ErrorIs(t, err, verification.ErrCodeNotIssued)
	})
}

func TestVerificationCommands_Resend(t *testing.T) {
	f := newFixture(t)
	view := f.createAccepted(t, codeStart)
	issued, err := f.verifications.Issue(f.ctx, view.ID, f.providerID)
	require.NoError(t, err)

	resent, err := f.verifications.Resend(f.ctx, view.ID, f.providerID)
	require.NoError(t, err)
	assert.Equal(t, issued.Code, resent.Code)
	assert.False(t, resent.Issued)

	_, err = f.verifications.Verify(f.ctx, view.ID, issued.Code, f.requesterID)
	require.NoError(t, err)

	_, err = f.verifications.Resend(f.ctx, view.ID, f.requesterID)
	require.ErrorIs(t, err, verification.ErrCodeAlreadyVerified)
}
