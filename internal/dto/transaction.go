package dto

import (
	"time"

	"github.com/tamicaires/fin2couple-api/internal/models"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	AccountID       string          `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Date            string          `json:"date"`
	Visibility      string          `json:"visibility,omitempty"`
	IsCoupleExpense bool            `json:"is_couple_expense"`
	IsFreeSpending  bool            `json:"is_free_spending"`
}

type TransactionResponse struct {
	ID                  string  `json:"id"`
	AccountID           string  `json:"account_id"`
	PaidByID            string  `json:"paid_by_id"`
	Amount              string  `json:"amount"`
	Type                string  `json:"type"`
	Category            string  `json:"category"`
	Description         string  `json:"description"`
	Date                string  `json:"date"`
	Visibility          string  `json:"visibility"`
	IsCoupleExpense     bool    `json:"is_couple_expense"`
	IsFreeSpending      bool    `json:"is_free_spending"`
	RecurringTemplateID *string `json:"recurring_template_id,omitempty"`
	InstallmentGroupID  *string `json:"installment_group_id,omitempty"`
	InstallmentNumber   *int    `json:"installment_number,omitempty"`
	TotalInstallments   *int    `json:"total_installments,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                tx.ID.String(),
		AccountID:         tx.AccountID.String(),
		PaidByID:          tx.PaidByID.String(),
		Amount:            tx.Amount.StringFixed(2),
		Type:              string(tx.Type),
		Category:          string(tx.Category),
		Description:       tx.Description,
		Date:              tx.Date.Format(time.DateOnly),
		Visibility:        string(tx.Visibility),
		IsCoupleExpense:   tx.IsCoupleExpense,
		IsFreeSpending:    tx.IsFreeSpending,
		InstallmentNumber: tx.InstallmentNumber,
		TotalInstallments: tx.TotalInstallments,
		CreatedAt:         tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.RecurringTemplateID != nil {
		id := tx.RecurringTemplateID.String()
		resp.RecurringTemplateID = &id
	}
	if tx.InstallmentGroupID != nil {
		id := tx.InstallmentGroupID.String()
		resp.InstallmentGroupID = &id
	}
	return resp
}
