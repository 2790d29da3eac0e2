package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrTemplateInactive = errors.New("template is inactive")

// RecurringTemplate describes an open-ended periodic obligation (rent, a
// subscription). Every generated occurrence inherits the template's
// transaction shape. NextOccurrence is the generation cursor: the earliest
// due date not yet produced.
type RecurringTemplate struct {
	ID              uuid.UUID           `db:"id"`
	CoupleID        uuid.UUID           `db:"couple_id"`
	Description     string              `db:"description"`
	Amount          decimal.Decimal     `db:"amount"`
	Type            TransactionType     `db:"type"`
	Category        TransactionCategory `db:"category"`
	AccountID       uuid.UUID           `db:"account_id"`
	PaidByID        uuid.UUID           `db:"paid_by_id"`
	Visibility      Visibility          `db:"visibility"`
	IsCoupleExpense bool                `db:"is_couple_expense"`
	IsFreeSpending  bool                `db:"is_free_spending"`
	Rule            RecurrenceRule
	NextOccurrence  time.Time `db:"next_occurrence"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type RecurringTemplateParams struct {
	CoupleID        uuid.UUID
	Description     string
	Amount          decimal.Decimal
	Type            TransactionType
	Category        TransactionCategory
	AccountID       uuid.UUID
	PaidByID        uuid.UUID
	Visibility      Visibility
	IsCoupleExpense bool
	IsFreeSpending  bool
	Frequency       Frequency
	Interval        int
	StartDate       time.Time
	EndDate         *time.Time
}

// NewRecurringTemplate validates the transaction shape and the recurrence
// rule. The cursor starts at the rule's start date.
func NewRecurringTemplate(p RecurringTemplateParams, now time.Time) (*RecurringTemplate, error) {
	if !p.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	rule, err := NewRecurrenceRule(p.Frequency, p.Interval, p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}
	return &RecurringTemplate{
		ID:              uuid.New(),
		CoupleID:        p.CoupleID,
		Description:     p.Description,
		Amount:          p.Amount,
		Type:            p.Type,
		Category:        p.Category,
		AccountID:       p.AccountID,
		PaidByID:        p.PaidByID,
		Visibility:      p.Visibility,
		IsCoupleExpense: p.IsCoupleExpense,
		IsFreeSpending:  p.IsFreeSpending,
		Rule:            rule,
		NextOccurrence:  rule.StartDate,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// BuildOccurrences walks the recurrence rule from the template's cursor up to
// the horizon (today plus monthsAhead, clamped by the rule's end date) and
// returns the occurrences that are not already scheduled, plus the advanced
// cursor. Re-running with the previous output included in existing produces
// nothing, so periodic regeneration is safe; the store's uniqueness
// constraint on (template, due date) covers concurrent runs.
func (t *RecurringTemplate) BuildOccurrences(existing []*Occurrence, monthsAhead int, now time.Time) ([]*Occurrence, time.Time, error) {
	if !t.IsActive {
		return nil, t.NextOccurrence, ErrTemplateInactive
	}

	horizon := AddMonths(DateOnly(now), monthsAhead)
	if t.Rule.EndDate != nil && t.Rule.EndDate.Before(horizon) {
		horizon = *t.Rule.EndDate
	}

	scheduled := make(map[string]struct{}, len(existing))
	for _, o := range existing {
		scheduled[DateOnly(o.DueDate).Format(time.DateOnly)] = struct{}{}
	}

	var created []*Occurrence
	cursor := DateOnly(t.NextOccurrence)
	for !cursor.After(horizon) {
		if _, ok := scheduled[cursor.Format(time.DateOnly)]; !ok {
			created = append(created, &Occurrence{
				ScheduleEntry: ScheduleEntry{
					ID:        uuid.New(),
					DueDate:   cursor,
					Status:    StatusPending,
					CreatedAt: now,
					UpdatedAt: now,
				},
				TemplateID: t.ID,
			})
		}
		cursor = t.Rule.NextDate(cursor)
	}
	return created, cursor, nil
}
