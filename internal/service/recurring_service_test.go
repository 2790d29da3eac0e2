package service

import (
	"context"
	"testing"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/dto"
	"github.com/tamicaires/fin2couple-api/internal/models"
	"github.com/tamicaires/fin2couple-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type recurringFixture struct {
	svc          *RecurringService
	templates    *memRecurringTemplates
	occurrences  *memOccurrences
	transactions *memTransactions
	accounts     *memAccounts
	coupleID     uuid.UUID
	userID       uuid.UUID
	account      *models.Account
}

func newRecurringFixture(t *testing.T, now time.Time) *recurringFixture {
	t.Helper()
	f := &recurringFixture{
		templates:    newMemRecurringTemplates(),
		occurrences:  newMemOccurrences(),
		transactions: newMemTransactions(),
		accounts:     newMemAccounts(),
		coupleID:     uuid.New(),
		userID:       uuid.New(),
	}
	f.account = &models.Account{ID: uuid.New(), CoupleID: f.coupleID, Name: "Joint checking"}
	require.NoError(t, f.accounts.Create(context.Background(), f.account))

	f.svc = NewRecurringService(f.templates, f.occurrences, f.transactions, f.accounts, 3, zap.NewNop())
	f.svc.now = func() time.Time { return now }
	return f
}

func (f *recurringFixture) createTemplate(t *testing.T, req *dto.CreateRecurringTemplateRequest) (*models.RecurringTemplate, []*models.Occurrence) {
	t.Helper()
	if req.AccountID == "" {
		req.AccountID = f.account.ID.String()
	}
	tpl, occurrences, err := f.svc.CreateTemplate(context.Background(), f.coupleID, f.userID, req)
	require.NoError(t, err)
	return tpl, occurrences
}

func rentRequest() *dto.CreateRecurringTemplateRequest {
	return &dto.CreateRecurringTemplateRequest{
		Description:     "Rent",
		Amount:          dec("1500.00"),
		Type:            "expense",
		Category:        "housing",
		IsCoupleExpense: true,
		Frequency:       "MONTHLY",
		Interval:        1,
		StartDate:       "2024-01-15",
	}
}

func TestCreateTemplate_GeneratesInitialWindow(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 1))

	tpl, occurrences := f.createTemplate(t, rentRequest())

	// Horizon is today + 3 months = 2024-04-01.
	require.Len(t, occurrences, 3)
	assert.Equal(t, date(2024, 1, 15), occurrences[0].DueDate)
	assert.Equal(t, date(2024, 2, 15), occurrences[1].DueDate)
	assert.Equal(t, date(2024, 3, 15), occurrences[2].DueDate)

	stored, err := f.templates.GetByID(context.Background(), tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 4, 15), stored.NextOccurrence)
	assert.True(t, stored.IsActive)
}

func TestCreateTemplate_VisibilityDefaultsFromAccount(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 1))

	tpl, _ := f.createTemplate(t, rentRequest())
	assert.Equal(t, models.VisibilityShared, tpl.Visibility, "joint account defaults to shared")

	owner := uuid.New()
	personal := &models.Account{ID: uuid.New(), CoupleID: f.coupleID, Name: "My card", OwnerID: &owner}
	require.NoError(t, f.accounts.Create(context.Background(), personal))

	req := rentRequest()
	req.AccountID = personal.ID.String()
	tpl2, _ := f.createTemplate(t, req)
	assert.Equal(t, models.VisibilityPrivate, tpl2.Visibility, "personal account defaults to private")
}

func TestGenerateOccurrences_Idempotent(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 1))
	tpl, first := f.createTemplate(t, rentRequest())
	require.NotEmpty(t, first)

	again, err := f.svc.GenerateOccurrences(context.Background(), f.coupleID, tpl.ID, 3)
	require.NoError(t, err)
	assert.Empty(t, again, "same horizon, nothing new to emit")
}

func TestGenerateOccurrences_ExtendsHorizon(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 1))
	tpl, first := f.createTemplate(t, rentRequest())
	require.Len(t, first, 3)

	more, err := f.svc.GenerateOccurrences(context.Background(), f.coupleID, tpl.ID, 6)
	require.NoError(t, err)
	require.Len(t, more, 3)
	assert.Equal(t, date(2024, 4, 15), more[0].DueDate)
	assert.Equal(t, date(2024, 6, 15), more[2].DueDate)
}

func TestGenerateOccurrences_InactiveTemplate(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 1))
	tpl, _ := f.createTemplate(t, rentRequest())
	require.NoError(t, f.svc.SetActive(context.Background(), f.coupleID, tpl.ID, false))

	_, err := f.svc.GenerateOccurrences(context.Background(), f.coupleID, tpl.ID, 3)
	assert.ErrorIs(t, err, models.ErrTemplateInactive)
}

func TestGenerateOccurrences_WrongCouple(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 1))
	tpl, _ := f.createTemplate(t, rentRequest())

	_, err := f.svc.GenerateOccurrences(context.Background(), uuid.New(), tpl.ID, 3)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestPayOccurrence_Settles(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 20))
	tpl, occurrences := f.createTemplate(t, rentRequest())
	first := occurrences[0] // due 2024-01-15

	paid, tx, err := f.svc.PayOccurrence(context.Background(), f.coupleID, first.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPaid, paid.Status)
	require.NotNil(t, paid.TransactionID)
	assert.Equal(t, tx.ID, *paid.TransactionID)

	// Transaction shape comes from the template, date from the due date.
	assert.True(t, tx.Amount.Equal(dec("1500.00")))
	assert.Equal(t, date(2024, 1, 15), tx.Date)
	assert.Equal(t, "Rent - Jan/2024", tx.Description)
	require.NotNil(t, tx.RecurringTemplateID)
	assert.Equal(t, tpl.ID, *tx.RecurringTemplateID)
	assert.Nil(t, tx.InstallmentGroupID)

	stored, err := f.occurrences.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, stored.Status)
}

func TestPayOccurrence_ExplicitTransactionDate(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 20))
	_, occurrences := f.createTemplate(t, rentRequest())

	paidOn := date(2024, 1, 18)
	_, tx, err := f.svc.PayOccurrence(context.Background(), f.coupleID, occurrences[0].ID, &paidOn)
	require.NoError(t, err)
	assert.Equal(t, paidOn, tx.Date)
}

func TestPayOccurrence_TwiceFails(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 20))
	_, occurrences := f.createTemplate(t, rentRequest())

	_, _, err := f.svc.PayOccurrence(context.Background(), f.coupleID, occurrences[0].ID, nil)
	require.NoError(t, err)

	_, _, err = f.svc.PayOccurrence(context.Background(), f.coupleID, occurrences[0].ID, nil)
	assert.ErrorIs(t, err, models.ErrAlreadyPaid)

	// Exactly one transaction exists.
	txs, err := f.transactions.ListByCouple(context.Background(), f.coupleID, repository.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestPayOccurrence_OverdueBlocked(t *testing.T) {
	// Created when due, paid 31 days later.
	f := newRecurringFixture(t, date(2024, 1, 1))
	_, occurrences := f.createTemplate(t, rentRequest())

	f.svc.now = func() time.Time { return date(2024, 2, 16) } // due 1/15 + 32 days
	_, _, err := f.svc.PayOccurrence(context.Background(), f.coupleID, occurrences[0].ID, nil)
	assert.ErrorIs(t, err, models.ErrOverdue)

	// Skipping the stale occurrence still works.
	skipped, err := f.svc.SkipOccurrence(context.Background(), f.coupleID, occurrences[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSkipped, skipped.Status)
}

func TestPayOccurrence_LosesConditionalUpdate(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 20))
	_, occurrences := f.createTemplate(t, rentRequest())

	f.occurrences.stealNextUpdate = true
	_, _, err := f.svc.PayOccurrence(context.Background(), f.coupleID, occurrences[0].ID, nil)
	assert.ErrorIs(t, err, models.ErrAlreadyPaid, "losing racer reports the winner's state")
}

func TestSkipOccurrence_ThenPayFails(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 20))
	_, occurrences := f.createTemplate(t, rentRequest())

	_, err := f.svc.SkipOccurrence(context.Background(), f.coupleID, occurrences[0].ID)
	require.NoError(t, err)

	_, _, err = f.svc.PayOccurrence(context.Background(), f.coupleID, occurrences[0].ID, nil)
	assert.ErrorIs(t, err, models.ErrAlreadySkipped)
}

func TestPayOccurrence_UnknownEntry(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 20))
	f.createTemplate(t, rentRequest())

	_, _, err := f.svc.PayOccurrence(context.Background(), f.coupleID, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestCreateTemplate_FallbackDescription(t *testing.T) {
	f := newRecurringFixture(t, date(2024, 1, 20))
	req := rentRequest()
	req.Description = ""
	_, occurrences := f.createTemplate(t, req)

	_, tx, err := f.svc.PayOccurrence(context.Background(), f.coupleID, occurrences[0].ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Recurring payment - Jan/2024", tx.Description)
}
