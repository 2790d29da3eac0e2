package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingEntry(due time.Time) *ScheduleEntry {
	return &ScheduleEntry{
		ID:      uuid.New(),
		DueDate: due,
		Status:  StatusPending,
	}
}

func TestPay_SetsStatusAndTransaction(t *testing.T) {
	now := date(2024, 3, 1)
	e := pendingEntry(date(2024, 3, 1))
	txID := uuid.New()

	require.NoError(t, e.Pay(txID, now))
	assert.Equal(t, StatusPaid, e.Status)
	require.NotNil(t, e.TransactionID)
	assert.Equal(t, txID, *e.TransactionID)
}

func TestPay_TwiceFails(t *testing.T) {
	now := date(2024, 3, 1)
	e := pendingEntry(date(2024, 3, 1))
	require.NoError(t, e.Pay(uuid.New(), now))

	err := e.Pay(uuid.New(), now)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestPay_AfterSkipFails(t *testing.T) {
	now := date(2024, 3, 1)
	e := pendingEntry(date(2024, 3, 1))
	require.NoError(t, e.Skip(now))

	err := e.Pay(uuid.New(), now)
	assert.ErrorIs(t, err, ErrAlreadySkipped)
	assert.Nil(t, e.TransactionID)
}

func TestPay_RequiresTransactionID(t *testing.T) {
	now := date(2024, 3, 1)
	e := pendingEntry(date(2024, 3, 1))

	err := e.Pay(uuid.Nil, now)
	assert.ErrorIs(t, err, ErrMissingTransactionID)
	assert.Equal(t, StatusPending, e.Status, "a failed pay leaves the entry pending")
}

func TestSkip_AfterPayFails(t *testing.T) {
	now := date(2024, 3, 1)
	e := pendingEntry(date(2024, 3, 1))
	require.NoError(t, e.Pay(uuid.New(), now))

	assert.ErrorIs(t, e.Skip(now), ErrAlreadyPaid)
}

func TestSkip_TwiceFails(t *testing.T) {
	now := date(2024, 3, 1)
	e := pendingEntry(date(2024, 3, 1))
	require.NoError(t, e.Skip(now))

	assert.ErrorIs(t, e.Skip(now), ErrAlreadySkipped)
}

func TestIsOverdue_ThirtyDayBoundary(t *testing.T) {
	now := date(2024, 3, 31)

	at29 := pendingEntry(now.AddDate(0, 0, -29))
	assert.False(t, at29.IsOverdue(now))
	assert.NoError(t, at29.CanBePaid(now))

	at30 := pendingEntry(now.AddDate(0, 0, -30))
	assert.False(t, at30.IsOverdue(now), "exactly 30 days is still payable")

	at31 := pendingEntry(now.AddDate(0, 0, -31))
	assert.True(t, at31.IsOverdue(now))
	assert.ErrorIs(t, at31.CanBePaid(now), ErrOverdue)
}

func TestPay_OverdueIsBlocked(t *testing.T) {
	now := date(2024, 3, 31)
	e := pendingEntry(now.AddDate(0, 0, -31))

	err := e.Pay(uuid.New(), now)
	assert.ErrorIs(t, err, ErrOverdue)
	assert.Equal(t, StatusPending, e.Status)
}

func TestSkip_AllowedWhenOverdue(t *testing.T) {
	now := date(2024, 3, 31)
	e := pendingEntry(now.AddDate(0, 0, -45))

	require.NoError(t, e.Skip(now))
	assert.Equal(t, StatusSkipped, e.Status)
}

func TestIsOverdue_IgnoresTimeOfDay(t *testing.T) {
	e := pendingEntry(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC))
	now := time.Date(2024, 3, 31, 0, 1, 0, 0, time.UTC)
	assert.False(t, e.IsOverdue(now), "30 calendar days, time component must not tip it over")
}

func TestIsDue(t *testing.T) {
	now := date(2024, 3, 15)

	dueToday := pendingEntry(date(2024, 3, 15))
	assert.True(t, dueToday.IsDue(now))

	duePast := pendingEntry(date(2024, 3, 1))
	assert.True(t, duePast.IsDue(now))

	dueFuture := pendingEntry(date(2024, 3, 16))
	assert.False(t, dueFuture.IsDue(now))

	paid := pendingEntry(date(2024, 3, 1))
	require.NoError(t, paid.Pay(uuid.New(), now))
	assert.False(t, paid.IsDue(now))
}
