package service

import (
	"fmt"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/models"

	"github.com/google/uuid"
)

// Settlement turns a pending schedule entry into a ledger transaction. The
// builders here are the only place a transaction is shaped from a template,
// so the description and back-reference stay reproducible: downstream
// reconciliation matches transactions back to entries through them.

const (
	recurringFallbackDescription   = "Recurring payment"
	installmentFallbackDescription = "Installment purchase"
)

func occurrenceDescription(t *models.RecurringTemplate, o *models.Occurrence) string {
	desc := t.Description
	if desc == "" {
		desc = recurringFallbackDescription
	}
	return fmt.Sprintf("%s - %s", desc, o.DueDate.Format("Jan/2006"))
}

func installmentDescription(t *models.InstallmentTemplate, inst *models.Installment) string {
	desc := t.Description
	if desc == "" {
		desc = installmentFallbackDescription
	}
	return fmt.Sprintf("%s - %d/%d", desc, inst.Number, t.TotalInstallments)
}

// newOccurrenceTransaction copies the template's shape; occurrences carry no
// amount of their own.
func newOccurrenceTransaction(t *models.RecurringTemplate, o *models.Occurrence, date, now time.Time) *models.Transaction {
	templateID := t.ID
	return &models.Transaction{
		ID:                  uuid.New(),
		CoupleID:            t.CoupleID,
		AccountID:           t.AccountID,
		PaidByID:            t.PaidByID,
		Amount:              t.Amount,
		Type:                t.Type,
		Category:            t.Category,
		Description:         occurrenceDescription(t, o),
		Date:                models.DateOnly(date),
		Visibility:          t.Visibility,
		IsCoupleExpense:     t.IsCoupleExpense,
		IsFreeSpending:      t.IsFreeSpending,
		RecurringTemplateID: &templateID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// newInstallmentTransaction uses the entry's own pre-split amount and records
// the (group, number, total) triple the ledger reconstructs the plan from.
func newInstallmentTransaction(t *models.InstallmentTemplate, inst *models.Installment, date, now time.Time) *models.Transaction {
	groupID := t.ID
	number := inst.Number
	total := t.TotalInstallments
	return &models.Transaction{
		ID:                 uuid.New(),
		CoupleID:           t.CoupleID,
		AccountID:          t.AccountID,
		PaidByID:           t.PaidByID,
		Amount:             inst.Amount,
		Type:               t.Type,
		Category:           t.Category,
		Description:        installmentDescription(t, inst),
		Date:               models.DateOnly(date),
		Visibility:         t.Visibility,
		IsCoupleExpense:    t.IsCoupleExpense,
		IsFreeSpending:     t.IsFreeSpending,
		InstallmentGroupID: &groupID,
		InstallmentNumber:  &number,
		TotalInstallments:  &total,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
