package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

type Visibility string

const (
	VisibilityShared  Visibility = "shared"
	VisibilityPrivate Visibility = "private"
)

type TransactionCategory string

const (
	CategoryHousing       TransactionCategory = "housing"
	CategoryFood          TransactionCategory = "food"
	CategoryTransport     TransactionCategory = "transport"
	CategoryUtilities     TransactionCategory = "utilities"
	CategoryShopping      TransactionCategory = "shopping"
	CategoryEntertainment TransactionCategory = "entertainment"
	CategoryHealthcare    TransactionCategory = "healthcare"
	CategoryEducation     TransactionCategory = "education"
	CategoryOther         TransactionCategory = "other"
)

// Transaction is one ledger entry. When it settles a schedule entry it carries
// a back-reference: RecurringTemplateID for occurrences, or the installment
// triple (group id, number, total) for installments. The two references are
// mutually exclusive.
type Transaction struct {
	ID                  uuid.UUID           `db:"id"`
	CoupleID            uuid.UUID           `db:"couple_id"`
	AccountID           uuid.UUID           `db:"account_id"`
	PaidByID            uuid.UUID           `db:"paid_by_id"`
	Amount              decimal.Decimal     `db:"amount"`
	Type                TransactionType     `db:"type"`
	Category            TransactionCategory `db:"category"`
	Description         string              `db:"description"`
	Date                time.Time           `db:"date"`
	Visibility          Visibility          `db:"visibility"`
	IsCoupleExpense     bool                `db:"is_couple_expense"`
	IsFreeSpending      bool                `db:"is_free_spending"`
	RecurringTemplateID *uuid.UUID          `db:"recurring_template_id"`
	InstallmentGroupID  *uuid.UUID          `db:"installment_group_id"`
	InstallmentNumber   *int                `db:"installment_number"`
	TotalInstallments   *int                `db:"total_installments"`
	CreatedAt           time.Time           `db:"created_at"`
	UpdatedAt           time.Time           `db:"updated_at"`
}
