package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRecurrenceRule_Validation(t *testing.T) {
	_, err := NewRecurrenceRule("HOURLY", 1, date(2024, 1, 1), nil)
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = NewRecurrenceRule(FrequencyMonthly, 0, date(2024, 1, 1), nil)
	assert.ErrorIs(t, err, ErrInvalidRule)

	end := date(2024, 1, 1)
	_, err = NewRecurrenceRule(FrequencyMonthly, 1, date(2024, 1, 1), &end)
	assert.ErrorIs(t, err, ErrInvalidRule, "end date equal to start date is rejected")

	end = date(2024, 6, 1)
	rule, err := NewRecurrenceRule(FrequencyMonthly, 1, date(2024, 1, 1), &end)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), rule.StartDate)
	require.NotNil(t, rule.EndDate)
	assert.Equal(t, date(2024, 6, 1), *rule.EndDate)
}

func TestNextDate_Daily(t *testing.T) {
	rule, err := NewRecurrenceRule(FrequencyDaily, 3, date(2024, 1, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 4), rule.NextDate(date(2024, 1, 1)))
}

func TestNextDate_Weekly(t *testing.T) {
	rule, err := NewRecurrenceRule(FrequencyWeekly, 2, date(2024, 1, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 15), rule.NextDate(date(2024, 1, 1)))
}

func TestNextDate_Monthly(t *testing.T) {
	rule, err := NewRecurrenceRule(FrequencyMonthly, 1, date(2024, 1, 15), nil)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 15), rule.NextDate(date(2024, 1, 15)))
}

func TestNextDate_MonthlyClampsAtMonthEnd(t *testing.T) {
	rule, err := NewRecurrenceRule(FrequencyMonthly, 1, date(2024, 1, 31), nil)
	require.NoError(t, err)

	// 2024 is a leap year.
	assert.Equal(t, date(2024, 2, 29), rule.NextDate(date(2024, 1, 31)))
	assert.Equal(t, date(2023, 2, 28), rule.NextDate(date(2023, 1, 31)))
	assert.Equal(t, date(2024, 4, 30), rule.NextDate(date(2024, 3, 31)))
}

func TestNextDate_Yearly(t *testing.T) {
	rule, err := NewRecurrenceRule(FrequencyYearly, 1, date(2024, 2, 29), nil)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 2, 28), rule.NextDate(date(2024, 2, 29)))
}

func TestNextDate_MonthlyRepeatedStepsMatchDirectAddition(t *testing.T) {
	rule, err := NewRecurrenceRule(FrequencyMonthly, 1, date(2024, 3, 10), nil)
	require.NoError(t, err)

	cursor := date(2024, 3, 10)
	for k := 1; k <= 24; k++ {
		cursor = rule.NextDate(cursor)
		assert.Equal(t, AddMonths(date(2024, 3, 10), k), cursor, "step %d", k)
	}
}

func TestNextDate_StripsTimeComponent(t *testing.T) {
	rule, err := NewRecurrenceRule(FrequencyDaily, 1, date(2024, 1, 1), nil)
	require.NoError(t, err)

	from := time.Date(2024, 1, 1, 17, 30, 12, 0, time.UTC)
	assert.Equal(t, date(2024, 1, 2), rule.NextDate(from))
}

func TestAddMonths_Backward(t *testing.T) {
	assert.Equal(t, date(2023, 12, 31), AddMonths(date(2024, 1, 31), -1))
	assert.Equal(t, date(2024, 2, 29), AddMonths(date(2024, 3, 31), -1))
}
