package service

import (
	"context"
	"testing"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/dto"
	"github.com/tamicaires/fin2couple-api/internal/models"
	"github.com/tamicaires/fin2couple-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type installmentFixture struct {
	svc          *InstallmentService
	templates    *memInstallmentTemplates
	installments *memInstallments
	transactions *memTransactions
	accounts     *memAccounts
	coupleID     uuid.UUID
	userID       uuid.UUID
	account      *models.Account
}

func newInstallmentFixture(t *testing.T, now time.Time) *installmentFixture {
	t.Helper()
	installments := newMemInstallments()
	f := &installmentFixture{
		templates:    newMemInstallmentTemplates(installments),
		installments: installments,
		transactions: newMemTransactions(),
		accounts:     newMemAccounts(),
		coupleID:     uuid.New(),
		userID:       uuid.New(),
	}
	f.account = &models.Account{ID: uuid.New(), CoupleID: f.coupleID, Name: "Joint card"}
	require.NoError(t, f.accounts.Create(context.Background(), f.account))

	f.svc = NewInstallmentService(f.templates, f.installments, f.transactions, f.accounts, zap.NewNop())
	f.svc.now = func() time.Time { return now }
	return f
}

func (f *installmentFixture) createTemplate(t *testing.T, req *dto.CreateInstallmentTemplateRequest) (*models.InstallmentTemplate, []*models.Installment) {
	t.Helper()
	if req.AccountID == "" {
		req.AccountID = f.account.ID.String()
	}
	tpl, installments, err := f.svc.CreateTemplate(context.Background(), f.coupleID, f.userID, req)
	require.NoError(t, err)
	return tpl, installments
}

func sofaRequest() *dto.CreateInstallmentTemplateRequest {
	return &dto.CreateInstallmentTemplateRequest{
		Description:       "New sofa",
		TotalAmount:       dec("1200.00"),
		TotalInstallments: 12,
		FirstDueDate:      "2024-02-01",
		Type:              "expense",
		Category:          "home",
		IsCoupleExpense:   true,
	}
}

func TestCreateInstallmentTemplate_EvenSplit(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 1, 10))

	tpl, installments := f.createTemplate(t, sofaRequest())
	require.Len(t, installments, 12)

	for i, inst := range installments {
		assert.Equal(t, i+1, inst.Number)
		assert.True(t, inst.Amount.Equal(dec("100.00")), "installment %d amount %s", inst.Number, inst.Amount)
		assert.Equal(t, models.StatusPending, inst.Status)
		assert.Equal(t, tpl.ID, inst.TemplateID)
	}

	// Due dates walk forward one calendar month at a time.
	assert.Equal(t, date(2024, 2, 1), installments[0].DueDate)
	assert.Equal(t, date(2024, 3, 1), installments[1].DueDate)
	assert.Equal(t, date(2025, 1, 1), installments[11].DueDate)
}

func TestCreateInstallmentTemplate_RemainderOnLast(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 1, 10))

	req := sofaRequest()
	req.TotalAmount = dec("100.00")
	req.TotalInstallments = 3
	_, installments := f.createTemplate(t, req)
	require.Len(t, installments, 3)

	assert.True(t, installments[0].Amount.Equal(dec("33.33")))
	assert.True(t, installments[1].Amount.Equal(dec("33.33")))
	assert.True(t, installments[2].Amount.Equal(dec("33.34")), "last installment absorbs the rounding remainder")
}

func TestCreateInstallmentTemplate_InvalidCount(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 1, 10))

	for _, count := range []int{0, 1, 121} {
		req := sofaRequest()
		req.TotalInstallments = count
		req.AccountID = f.account.ID.String()
		_, _, err := f.svc.CreateTemplate(context.Background(), f.coupleID, f.userID, req)
		assert.ErrorIs(t, err, models.ErrInvalidInstallmentCount, "count %d", count)
	}
}

func TestCreateInstallmentTemplate_WrongCoupleAccount(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 1, 10))

	other := &models.Account{ID: uuid.New(), CoupleID: uuid.New(), Name: "Not ours"}
	require.NoError(t, f.accounts.Create(context.Background(), other))

	req := sofaRequest()
	req.AccountID = other.ID.String()
	_, _, err := f.svc.CreateTemplate(context.Background(), f.coupleID, f.userID, req)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestPayInstallment_DefaultsToDueDate(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 2, 5))
	tpl, installments := f.createTemplate(t, sofaRequest())
	first := installments[0] // due 2024-02-01, 100.00

	paid, tx, err := f.svc.PayInstallment(context.Background(), f.coupleID, first.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPaid, paid.Status)
	require.NotNil(t, paid.TransactionID)
	assert.Equal(t, tx.ID, *paid.TransactionID)

	// The transaction carries the installment's own amount, not the total.
	assert.True(t, tx.Amount.Equal(dec("100.00")))
	assert.Equal(t, date(2024, 2, 1), tx.Date)
	assert.Equal(t, "New sofa - 1/12", tx.Description)

	require.NotNil(t, tx.InstallmentGroupID)
	assert.Equal(t, tpl.ID, *tx.InstallmentGroupID)
	require.NotNil(t, tx.InstallmentNumber)
	assert.Equal(t, 1, *tx.InstallmentNumber)
	require.NotNil(t, tx.TotalInstallments)
	assert.Equal(t, 12, *tx.TotalInstallments)
	assert.Nil(t, tx.RecurringTemplateID)
}

func TestPayInstallment_ExplicitTransactionDate(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 2, 5))
	_, installments := f.createTemplate(t, sofaRequest())

	paidOn := date(2024, 2, 3)
	_, tx, err := f.svc.PayInstallment(context.Background(), f.coupleID, installments[0].ID, &paidOn)
	require.NoError(t, err)
	assert.Equal(t, paidOn, tx.Date)
}

func TestPayInstallment_TwiceFails(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 2, 5))
	_, installments := f.createTemplate(t, sofaRequest())

	_, _, err := f.svc.PayInstallment(context.Background(), f.coupleID, installments[0].ID, nil)
	require.NoError(t, err)

	_, _, err = f.svc.PayInstallment(context.Background(), f.coupleID, installments[0].ID, nil)
	assert.ErrorIs(t, err, models.ErrAlreadyPaid)

	txs, err := f.transactions.ListByCouple(context.Background(), f.coupleID, repository.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestPayInstallment_OverdueBlocked(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 1, 10))
	_, installments := f.createTemplate(t, sofaRequest())

	// First due 2024-02-01; the 30-day window ends on 2024-03-02.
	f.svc.now = func() time.Time { return date(2024, 3, 3) }
	_, _, err := f.svc.PayInstallment(context.Background(), f.coupleID, installments[0].ID, nil)
	assert.ErrorIs(t, err, models.ErrOverdue)

	skipped, err := f.svc.SkipInstallment(context.Background(), f.coupleID, installments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSkipped, skipped.Status)

	// The second installment is inside its window and still payable.
	_, _, err = f.svc.PayInstallment(context.Background(), f.coupleID, installments[1].ID, nil)
	assert.NoError(t, err)
}

func TestPayInstallment_LosesConditionalUpdate(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 2, 5))
	_, installments := f.createTemplate(t, sofaRequest())

	f.installments.stealNextUpdate = true
	_, _, err := f.svc.PayInstallment(context.Background(), f.coupleID, installments[0].ID, nil)
	assert.ErrorIs(t, err, models.ErrAlreadyPaid)
}

func TestSkipInstallment_ThenPayFails(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 2, 5))
	_, installments := f.createTemplate(t, sofaRequest())

	_, err := f.svc.SkipInstallment(context.Background(), f.coupleID, installments[0].ID)
	require.NoError(t, err)

	_, _, err = f.svc.PayInstallment(context.Background(), f.coupleID, installments[0].ID, nil)
	assert.ErrorIs(t, err, models.ErrAlreadySkipped)
}

func TestDeleteInstallmentTemplate_Cascades(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 2, 5))
	tpl, installments := f.createTemplate(t, sofaRequest())

	// Settle one first; the ledger transaction must survive the delete.
	_, tx, err := f.svc.PayInstallment(context.Background(), f.coupleID, installments[0].ID, nil)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteTemplate(context.Background(), f.coupleID, tpl.ID))

	_, err = f.templates.GetByID(context.Background(), tpl.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	remaining, err := f.installments.ListByTemplate(context.Background(), tpl.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := f.transactions.GetByID(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.True(t, kept.Amount.Equal(dec("100.00")))
}

func TestDeleteInstallmentTemplate_WrongCouple(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 2, 5))
	tpl, _ := f.createTemplate(t, sofaRequest())

	err := f.svc.DeleteTemplate(context.Background(), uuid.New(), tpl.ID)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestPayInstallment_FallbackDescription(t *testing.T) {
	f := newInstallmentFixture(t, date(2024, 2, 5))
	req := sofaRequest()
	req.Description = ""
	_, installments := f.createTemplate(t, req)

	_, tx, err := f.svc.PayInstallment(context.Background(), f.coupleID, installments[0].ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Installment purchase - 1/12", tx.Description)
}
