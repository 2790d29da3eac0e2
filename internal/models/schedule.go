package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryStatus string

const (
	StatusPending EntryStatus = "PENDING"
	StatusPaid    EntryStatus = "PAID"
	StatusSkipped EntryStatus = "SKIPPED"
)

// OverdueGraceDays is how far past its due date a pending entry can still be
// paid. Shared by occurrences and installments so the two kinds never drift.
const OverdueGraceDays = 30

var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyPaid          = errors.New("entry is already paid")
	ErrAlreadySkipped       = errors.New("entry was skipped")
	ErrOverdue              = errors.New("entry is more than 30 days overdue and can no longer be paid")
	ErrMissingTransactionID = errors.New("transaction id is required to pay an entry")

	// ErrStatusConflict is reported by stores when a conditional status
	// update finds the entry no longer pending.
	ErrStatusConflict = errors.New("entry is no longer pending")
)

// ScheduleEntry is the lifecycle shared by occurrences and installments:
// PENDING until paid or skipped, both terminal. TransactionID is set exactly
// when the entry is paid. Transitions happen only through Pay and Skip.
type ScheduleEntry struct {
	ID            uuid.UUID   `db:"id"`
	DueDate       time.Time   `db:"due_date"`
	Status        EntryStatus `db:"status"`
	TransactionID *uuid.UUID  `db:"transaction_id"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

// IsOverdue reports whether the due date is more than OverdueGraceDays before
// now, comparing calendar days only. An overdue entry can still be skipped
// but never paid.
func (e *ScheduleEntry) IsOverdue(now time.Time) bool {
	deadline := DateOnly(e.DueDate).AddDate(0, 0, OverdueGraceDays)
	return DateOnly(now).After(deadline)
}

// IsDue reports whether the entry is pending and its due date has arrived.
func (e *ScheduleEntry) IsDue(now time.Time) bool {
	return e.Status == StatusPending && !DateOnly(e.DueDate).After(DateOnly(now))
}

// CanBePaid returns nil when Pay would succeed, otherwise the specific
// reason: ErrAlreadyPaid, ErrAlreadySkipped or ErrOverdue.
func (e *ScheduleEntry) CanBePaid(now time.Time) error {
	switch e.Status {
	case StatusPaid:
		return ErrAlreadyPaid
	case StatusSkipped:
		return ErrAlreadySkipped
	}
	if e.IsOverdue(now) {
		return ErrOverdue
	}
	return nil
}

// Pay transitions the entry to PAID, recording the settling transaction.
func (e *ScheduleEntry) Pay(transactionID uuid.UUID, now time.Time) error {
	if err := e.CanBePaid(now); err != nil {
		return err
	}
	if transactionID == uuid.Nil {
		return ErrMissingTransactionID
	}
	e.Status = StatusPaid
	e.TransactionID = &transactionID
	e.UpdatedAt = now
	return nil
}

// Skip transitions the entry to SKIPPED. Allowed for any pending entry,
// overdue or not.
func (e *ScheduleEntry) Skip(now time.Time) error {
	switch e.Status {
	case StatusPaid:
		return ErrAlreadyPaid
	case StatusSkipped:
		return ErrAlreadySkipped
	}
	e.Status = StatusSkipped
	e.UpdatedAt = now
	return nil
}

// Occurrence is one scheduled instance of a recurring template. Amount and
// transaction shape come from the template, which is constant across
// occurrences.
type Occurrence struct {
	ScheduleEntry
	TemplateID uuid.UUID `db:"template_id"`
}

// Installment is one pre-split payment of an installment template. Number is
// 1-based and unique per template.
type Installment struct {
	ScheduleEntry
	TemplateID uuid.UUID       `db:"template_id"`
	Number     int             `db:"number"`
	Amount     decimal.Decimal `db:"amount"`
}
