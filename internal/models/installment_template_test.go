package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installmentTemplate(t *testing.T, total string, count int) *InstallmentTemplate {
	t.Helper()
	tpl, err := NewInstallmentTemplate(InstallmentTemplateParams{
		Description:       "New couch",
		TotalAmount:       dec(total),
		TotalInstallments: count,
		FirstDueDate:      date(2024, 2, 1),
		Type:              TypeExpense,
		Category:          CategoryShopping,
		Visibility:        VisibilityShared,
	}, date(2024, 1, 20))
	require.NoError(t, err)
	return tpl
}

func TestNewInstallmentTemplate_CountBounds(t *testing.T) {
	for _, count := range []int{0, 1, 121} {
		_, err := NewInstallmentTemplate(InstallmentTemplateParams{
			TotalAmount:       dec("100.00"),
			TotalInstallments: count,
			FirstDueDate:      date(2024, 2, 1),
		}, date(2024, 1, 20))
		assert.ErrorIs(t, err, ErrInvalidInstallmentCount, "count %d", count)
	}

	for _, count := range []int{2, 120} {
		_, err := NewInstallmentTemplate(InstallmentTemplateParams{
			TotalAmount:       dec("100.00"),
			TotalInstallments: count,
			FirstDueDate:      date(2024, 2, 1),
		}, date(2024, 1, 20))
		assert.NoError(t, err, "count %d", count)
	}
}

func TestBuildInstallments_TwelveTimesHundred(t *testing.T) {
	tpl := installmentTemplate(t, "1200.00", 12)

	installments, err := tpl.BuildInstallments(date(2024, 1, 20))
	require.NoError(t, err)
	require.Len(t, installments, 12)

	for i, inst := range installments {
		assert.Equal(t, i+1, inst.Number)
		assert.True(t, inst.Amount.Equal(dec("100.00")), "installment %d amount %s", i+1, inst.Amount)
		assert.Equal(t, AddMonths(date(2024, 2, 1), i), inst.DueDate)
		assert.Equal(t, StatusPending, inst.Status)
		assert.Equal(t, tpl.ID, inst.TemplateID)
	}
	assert.Equal(t, date(2024, 2, 1), installments[0].DueDate)
	assert.Equal(t, date(2025, 1, 1), installments[11].DueDate)
}

func TestBuildInstallments_RemainderInLast(t *testing.T) {
	tpl := installmentTemplate(t, "100.00", 3)

	installments, err := tpl.BuildInstallments(date(2024, 1, 20))
	require.NoError(t, err)
	require.Len(t, installments, 3)
	assert.True(t, installments[0].Amount.Equal(dec("33.33")))
	assert.True(t, installments[1].Amount.Equal(dec("33.33")))
	assert.True(t, installments[2].Amount.Equal(dec("33.34")))

	sum := decimal.Zero
	for _, inst := range installments {
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, sum.Equal(dec("100.00")))
}

func TestBuildInstallments_MonthEndDueDates(t *testing.T) {
	tpl, err := NewInstallmentTemplate(InstallmentTemplateParams{
		Description:       "TV",
		TotalAmount:       dec("3000.00"),
		TotalInstallments: 4,
		FirstDueDate:      date(2024, 1, 31),
		Type:              TypeExpense,
		Category:          CategoryShopping,
	}, date(2024, 1, 10))
	require.NoError(t, err)

	installments, err := tpl.BuildInstallments(date(2024, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 31), installments[0].DueDate)
	assert.Equal(t, date(2024, 2, 29), installments[1].DueDate)
	assert.Equal(t, date(2024, 3, 31), installments[2].DueDate)
	assert.Equal(t, date(2024, 4, 30), installments[3].DueDate)
}
