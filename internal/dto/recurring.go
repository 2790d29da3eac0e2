package dto

import (
	"time"

	"github.com/tamicaires/fin2couple-api/internal/models"

	"github.com/shopspring/decimal"
)

type CreateRecurringTemplateRequest struct {
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	AccountID       string          `json:"account_id"`
	Visibility      string          `json:"visibility,omitempty"`
	IsCoupleExpense bool            `json:"is_couple_expense"`
	IsFreeSpending  bool            `json:"is_free_spending"`
	Frequency       string          `json:"frequency"`
	Interval        int             `json:"interval"`
	StartDate       string          `json:"start_date"`
	EndDate         *string         `json:"end_date,omitempty"`
}

type GenerateOccurrencesRequest struct {
	MonthsAhead int `json:"months_ahead"`
}

// PayEntryRequest settles an occurrence or installment. TransactionDate
// defaults to the entry's due date when omitted.
type PayEntryRequest struct {
	TransactionDate *string `json:"transaction_date,omitempty"`
}

type RecurringTemplateResponse struct {
	ID              string  `json:"id"`
	Description     string  `json:"description"`
	Amount          string  `json:"amount"`
	Type            string  `json:"type"`
	Category        string  `json:"category"`
	AccountID       string  `json:"account_id"`
	PaidByID        string  `json:"paid_by_id"`
	Visibility      string  `json:"visibility"`
	IsCoupleExpense bool    `json:"is_couple_expense"`
	IsFreeSpending  bool    `json:"is_free_spending"`
	Frequency       string  `json:"frequency"`
	Interval        int     `json:"interval"`
	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date,omitempty"`
	NextOccurrence  string  `json:"next_occurrence"`
	IsActive        bool    `json:"is_active"`
}

func NewRecurringTemplateResponse(t *models.RecurringTemplate) RecurringTemplateResponse {
	resp := RecurringTemplateResponse{
		ID:              t.ID.String(),
		Description:     t.Description,
		Amount:          t.Amount.StringFixed(2),
		Type:            string(t.Type),
		Category:        string(t.Category),
		AccountID:       t.AccountID.String(),
		PaidByID:        t.PaidByID.String(),
		Visibility:      string(t.Visibility),
		IsCoupleExpense: t.IsCoupleExpense,
		IsFreeSpending:  t.IsFreeSpending,
		Frequency:       string(t.Rule.Frequency),
		Interval:        t.Rule.Interval,
		StartDate:       t.Rule.StartDate.Format(time.DateOnly),
		NextOccurrence:  t.NextOccurrence.Format(time.DateOnly),
		IsActive:        t.IsActive,
	}
	if t.Rule.EndDate != nil {
		end := t.Rule.EndDate.Format(time.DateOnly)
		resp.EndDate = &end
	}
	return resp
}

type OccurrenceResponse struct {
	ID            string  `json:"id"`
	TemplateID    string  `json:"template_id"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	TransactionID *string `json:"transaction_id,omitempty"`
	IsDue         bool    `json:"is_due"`
	IsOverdue     bool    `json:"is_overdue"`
}

func NewOccurrenceResponse(o *models.Occurrence, now time.Time) OccurrenceResponse {
	resp := OccurrenceResponse{
		ID:         o.ID.String(),
		TemplateID: o.TemplateID.String(),
		DueDate:    o.DueDate.Format(time.DateOnly),
		Status:     string(o.Status),
		IsDue:      o.IsDue(now),
		IsOverdue:  o.IsOverdue(now),
	}
	if o.TransactionID != nil {
		id := o.TransactionID.String()
		resp.TransactionID = &id
	}
	return resp
}

func NewOccurrenceResponses(occurrences []*models.Occurrence, now time.Time) []OccurrenceResponse {
	out := make([]OccurrenceResponse, 0, len(occurrences))
	for _, o := range occurrences {
		out = append(out, NewOccurrenceResponse(o, now))
	}
	return out
}

// RecurringTemplateCreatedResponse bundles the new template with its first
// generated window.
type RecurringTemplateCreatedResponse struct {
	Template    RecurringTemplateResponse `json:"template"`
	Occurrences []OccurrenceResponse      `json:"occurrences"`
}

// PaymentResponse pairs a settled entry with the transaction it produced.
type PaymentResponse struct {
	Transaction TransactionResponse  `json:"transaction"`
	Occurrence  *OccurrenceResponse  `json:"occurrence,omitempty"`
	Installment *InstallmentResponse `json:"installment,omitempty"`
}
