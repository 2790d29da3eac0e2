package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinInstallments = 2
	MaxInstallments = 120
)

var ErrInvalidInstallmentCount = errors.New("installment count must be between 2 and 120")

// InstallmentTemplate describes a fixed-count amortized purchase (a 12x
// plan). Total and count are immutable after creation; all installments are
// generated atomically when the template is created.
type InstallmentTemplate struct {
	ID                uuid.UUID           `db:"id"`
	CoupleID          uuid.UUID           `db:"couple_id"`
	Description       string              `db:"description"`
	TotalAmount       decimal.Decimal     `db:"total_amount"`
	TotalInstallments int                 `db:"total_installments"`
	FirstDueDate      time.Time           `db:"first_due_date"`
	Type              TransactionType     `db:"type"`
	Category          TransactionCategory `db:"category"`
	AccountID         uuid.UUID           `db:"account_id"`
	PaidByID          uuid.UUID           `db:"paid_by_id"`
	Visibility        Visibility          `db:"visibility"`
	IsCoupleExpense   bool                `db:"is_couple_expense"`
	IsFreeSpending    bool                `db:"is_free_spending"`
	IsActive          bool                `db:"is_active"`
	CreatedAt         time.Time           `db:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at"`
}

type InstallmentTemplateParams struct {
	CoupleID          uuid.UUID
	Description       string
	TotalAmount       decimal.Decimal
	TotalInstallments int
	FirstDueDate      time.Time
	Type              TransactionType
	Category          TransactionCategory
	AccountID         uuid.UUID
	PaidByID          uuid.UUID
	Visibility        Visibility
	IsCoupleExpense   bool
	IsFreeSpending    bool
}

func NewInstallmentTemplate(p InstallmentTemplateParams, now time.Time) (*InstallmentTemplate, error) {
	if !p.TotalAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if p.TotalInstallments < MinInstallments || p.TotalInstallments > MaxInstallments {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInstallmentCount, p.TotalInstallments)
	}
	return &InstallmentTemplate{
		ID:                uuid.New(),
		CoupleID:          p.CoupleID,
		Description:       p.Description,
		TotalAmount:       p.TotalAmount,
		TotalInstallments: p.TotalInstallments,
		FirstDueDate:      DateOnly(p.FirstDueDate),
		Type:              p.Type,
		Category:          p.Category,
		AccountID:         p.AccountID,
		PaidByID:          p.PaidByID,
		Visibility:        p.Visibility,
		IsCoupleExpense:   p.IsCoupleExpense,
		IsFreeSpending:    p.IsFreeSpending,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// BuildInstallments produces the template's full installment set: number i
// is due i-1 months after the first due date (clamped month addition) and
// carries its slice of the split total. Called once at creation; the count
// bounds are re-checked here since the split depends on them.
func (t *InstallmentTemplate) BuildInstallments(now time.Time) ([]*Installment, error) {
	if t.TotalInstallments < MinInstallments || t.TotalInstallments > MaxInstallments {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInstallmentCount, t.TotalInstallments)
	}
	amounts, err := SplitAmount(t.TotalAmount, t.TotalInstallments)
	if err != nil {
		return nil, err
	}

	installments := make([]*Installment, t.TotalInstallments)
	for i := 0; i < t.TotalInstallments; i++ {
		installments[i] = &Installment{
			ScheduleEntry: ScheduleEntry{
				ID:        uuid.New(),
				DueDate:   AddMonths(t.FirstDueDate, i),
				Status:    StatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			},
			TemplateID: t.ID,
			Number:     i + 1,
			Amount:     amounts[i],
		}
	}
	return installments, nil
}
