package models

import (
	"errors"
	"fmt"
	"time"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// ErrInvalidRule is wrapped by all recurrence-rule validation failures.
var ErrInvalidRule = errors.New("invalid recurrence rule")

// RecurrenceRule describes the cadence of a recurring template: every
// Interval units of Frequency starting at StartDate, optionally bounded by
// EndDate. Immutable once constructed; templates swap rules, never mutate
// them.
type RecurrenceRule struct {
	Frequency Frequency
	Interval  int
	StartDate time.Time
	EndDate   *time.Time
}

// NewRecurrenceRule validates and builds a rule. Dates are normalized to
// date-only (midnight UTC) so stepping and dedup never see a time component.
func NewRecurrenceRule(freq Frequency, interval int, start time.Time, end *time.Time) (RecurrenceRule, error) {
	switch freq {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
	default:
		return RecurrenceRule{}, fmt.Errorf("%w: unknown frequency %q", ErrInvalidRule, freq)
	}
	if interval < 1 {
		return RecurrenceRule{}, fmt.Errorf("%w: interval must be at least 1, got %d", ErrInvalidRule, interval)
	}

	rule := RecurrenceRule{
		Frequency: freq,
		Interval:  interval,
		StartDate: DateOnly(start),
	}
	if end != nil {
		e := DateOnly(*end)
		if !e.After(rule.StartDate) {
			return RecurrenceRule{}, fmt.Errorf("%w: end date %s is not after start date %s",
				ErrInvalidRule, e.Format(time.DateOnly), rule.StartDate.Format(time.DateOnly))
		}
		rule.EndDate = &e
	}
	return rule, nil
}

// NextDate returns the due date that follows from. Monthly and yearly steps
// use clamped calendar addition: Jan 31 + 1 month lands on the last day of
// February, never rolls into March.
func (r RecurrenceRule) NextDate(from time.Time) time.Time {
	from = DateOnly(from)
	switch r.Frequency {
	case FrequencyDaily:
		return from.AddDate(0, 0, r.Interval)
	case FrequencyWeekly:
		return from.AddDate(0, 0, r.Interval*7)
	case FrequencyMonthly:
		return AddMonths(from, r.Interval)
	case FrequencyYearly:
		return AddMonths(from, r.Interval*12)
	}
	return from
}

// AddMonths adds months to t, clamping the day to the last day of the target
// month instead of overflowing the way time.AddDate does.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// DateOnly strips the time component, keeping only the calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
