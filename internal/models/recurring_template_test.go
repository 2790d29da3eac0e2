package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyTemplate(t *testing.T, start time.Time, end *time.Time) *RecurringTemplate {
	t.Helper()
	tpl, err := NewRecurringTemplate(RecurringTemplateParams{
		Description: "Rent",
		Amount:      dec("1500.00"),
		Type:        TypeExpense,
		Category:    CategoryHousing,
		Visibility:  VisibilityShared,
		Frequency:   FrequencyMonthly,
		Interval:    1,
		StartDate:   start,
		EndDate:     end,
	}, start)
	require.NoError(t, err)
	return tpl
}

func TestNewRecurringTemplate_Validation(t *testing.T) {
	_, err := NewRecurringTemplate(RecurringTemplateParams{
		Amount:    dec("0"),
		Frequency: FrequencyMonthly,
		Interval:  1,
		StartDate: date(2024, 1, 1),
	}, date(2024, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewRecurringTemplate(RecurringTemplateParams{
		Amount:    dec("10.00"),
		Frequency: FrequencyMonthly,
		Interval:  0,
		StartDate: date(2024, 1, 1),
	}, date(2024, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestBuildOccurrences_WithinHorizon(t *testing.T) {
	// Today 2024-01-01, rule starts 2024-01-15, horizon = today + 3 months.
	tpl := monthlyTemplate(t, date(2024, 1, 15), nil)
	now := date(2024, 1, 1)

	created, cursor, err := tpl.BuildOccurrences(nil, 3, now)
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, date(2024, 1, 15), created[0].DueDate)
	assert.Equal(t, date(2024, 2, 15), created[1].DueDate)
	assert.Equal(t, date(2024, 3, 15), created[2].DueDate)
	assert.Equal(t, date(2024, 4, 15), cursor, "cursor advances past the horizon")

	for _, o := range created {
		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, tpl.ID, o.TemplateID)
	}
}

func TestBuildOccurrences_Idempotent(t *testing.T) {
	tpl := monthlyTemplate(t, date(2024, 1, 15), nil)
	now := date(2024, 1, 1)

	first, cursor, err := tpl.BuildOccurrences(nil, 3, now)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	tpl.NextOccurrence = cursor

	second, _, err := tpl.BuildOccurrences(first, 3, now)
	require.NoError(t, err)
	assert.Empty(t, second, "re-running with the first batch back-fed emits nothing")
}

func TestBuildOccurrences_DedupsByDateEvenWithStaleCursor(t *testing.T) {
	tpl := monthlyTemplate(t, date(2024, 1, 15), nil)
	now := date(2024, 1, 1)

	first, _, err := tpl.BuildOccurrences(nil, 3, now)
	require.NoError(t, err)

	// Cursor was never persisted; the existing-dates set still blocks dupes.
	second, _, err := tpl.BuildOccurrences(first, 3, now)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestBuildOccurrences_ClampedByEndDate(t *testing.T) {
	end := date(2024, 2, 20)
	tpl := monthlyTemplate(t, date(2024, 1, 15), &end)
	now := date(2024, 1, 1)

	created, _, err := tpl.BuildOccurrences(nil, 6, now)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, date(2024, 1, 15), created[0].DueDate)
	assert.Equal(t, date(2024, 2, 15), created[1].DueDate)
}

func TestBuildOccurrences_InactiveTemplate(t *testing.T) {
	tpl := monthlyTemplate(t, date(2024, 1, 15), nil)
	tpl.IsActive = false

	_, _, err := tpl.BuildOccurrences(nil, 3, date(2024, 1, 1))
	assert.ErrorIs(t, err, ErrTemplateInactive)
}

func TestBuildOccurrences_NothingBeforeStart(t *testing.T) {
	// Horizon ends before the rule starts: empty batch, not an error.
	tpl := monthlyTemplate(t, date(2025, 6, 1), nil)

	created, cursor, err := tpl.BuildOccurrences(nil, 3, date(2024, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Equal(t, date(2025, 6, 1), cursor, "cursor stays put")
}
