package dto

import (
	"time"

	"github.com/tamicaires/fin2couple-api/internal/models"

	"github.com/shopspring/decimal"
)

type CreateInstallmentTemplateRequest struct {
	Description       string          `json:"description"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	TotalInstallments int             `json:"total_installments"`
	FirstDueDate      string          `json:"first_due_date"`
	Type              string          `json:"type"`
	Category          string          `json:"category"`
	AccountID         string          `json:"account_id"`
	Visibility        string          `json:"visibility,omitempty"`
	IsCoupleExpense   bool            `json:"is_couple_expense"`
	IsFreeSpending    bool            `json:"is_free_spending"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type InstallmentTemplateResponse struct {
	ID                string `json:"id"`
	Description       string `json:"description"`
	TotalAmount       string `json:"total_amount"`
	TotalInstallments int    `json:"total_installments"`
	FirstDueDate      string `json:"first_due_date"`
	Type              string `json:"type"`
	Category          string `json:"category"`
	AccountID         string `json:"account_id"`
	PaidByID          string `json:"paid_by_id"`
	Visibility        string `json:"visibility"`
	IsCoupleExpense   bool   `json:"is_couple_expense"`
	IsFreeSpending    bool   `json:"is_free_spending"`
	IsActive          bool   `json:"is_active"`
}

func NewInstallmentTemplateResponse(t *models.InstallmentTemplate) InstallmentTemplateResponse {
	return InstallmentTemplateResponse{
		ID:                t.ID.String(),
		Description:       t.Description,
		TotalAmount:       t.TotalAmount.StringFixed(2),
		TotalInstallments: t.TotalInstallments,
		FirstDueDate:      t.FirstDueDate.Format(time.DateOnly),
		Type:              string(t.Type),
		Category:          string(t.Category),
		AccountID:         t.AccountID.String(),
		PaidByID:          t.PaidByID.String(),
		Visibility:        string(t.Visibility),
		IsCoupleExpense:   t.IsCoupleExpense,
		IsFreeSpending:    t.IsFreeSpending,
		IsActive:          t.IsActive,
	}
}

type InstallmentResponse struct {
	ID            string  `json:"id"`
	TemplateID    string  `json:"template_id"`
	Number        int     `json:"number"`
	Amount        string  `json:"amount"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	TransactionID *string `json:"transaction_id,omitempty"`
	IsDue         bool    `json:"is_due"`
	IsOverdue     bool    `json:"is_overdue"`
}

func NewInstallmentResponse(inst *models.Installment, now time.Time) InstallmentResponse {
	resp := InstallmentResponse{
		ID:         inst.ID.String(),
		TemplateID: inst.TemplateID.String(),
		Number:     inst.Number,
		Amount:     inst.Amount.StringFixed(2),
		DueDate:    inst.DueDate.Format(time.DateOnly),
		Status:     string(inst.Status),
		IsDue:      inst.IsDue(now),
		IsOverdue:  inst.IsOverdue(now),
	}
	if inst.TransactionID != nil {
		id := inst.TransactionID.String()
		resp.TransactionID = &id
	}
	return resp
}

func NewInstallmentResponses(installments []*models.Installment, now time.Time) []InstallmentResponse {
	out := make([]InstallmentResponse, 0, len(installments))
	for _, inst := range installments {
		out = append(out, NewInstallmentResponse(inst, now))
	}
	return out
}

// InstallmentTemplateCreatedResponse bundles the new template with its full
// pre-split installment set.
type InstallmentTemplateCreatedResponse struct {
	Template     InstallmentTemplateResponse `json:"template"`
	Installments []InstallmentResponse       `json:"installments"`
}

// ScheduleResponse is the combined upcoming/overdue view across both entry
// kinds.
type ScheduleResponse struct {
	Occurrences  []OccurrenceResponse  `json:"occurrences"`
	Installments []InstallmentResponse `json:"installments"`
}
