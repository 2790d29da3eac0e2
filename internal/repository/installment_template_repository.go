package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var installmentTemplateColumns = []string{
	"id", "couple_id", "description", "total_amount", "total_installments",
	"first_due_date", "type", "category", "account_id", "paid_by_id",
	"visibility", "is_couple_expense", "is_free_spending", "is_active",
	"created_at", "updated_at",
}

type InstallmentTemplateRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInstallmentTemplateRepository(db *pgxpool.Pool, logger *zap.Logger) *InstallmentTemplateRepository {
	return &InstallmentTemplateRepository{db: db, logger: logger}
}

func (r *InstallmentTemplateRepository) Create(ctx context.Context, t *models.InstallmentTemplate) error {
	query := squirrel.Insert("installment_templates").
		Columns(installmentTemplateColumns...).
		Values(
			t.ID, t.CoupleID, t.Description, t.TotalAmount, t.TotalInstallments,
			t.FirstDueDate, t.Type, t.Category, t.AccountID, t.PaidByID,
			t.Visibility, t.IsCoupleExpense, t.IsFreeSpending, t.IsActive,
			t.CreatedAt, t.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *InstallmentTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InstallmentTemplate, error) {
	query := squirrel.Select(installmentTemplateColumns...).
		From("installment_templates").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanInstallmentTemplate(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("installment template %s: %w", id, models.ErrNotFound)
	}
	return t, err
}

func (r *InstallmentTemplateRepository) ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]*models.InstallmentTemplate, error) {
	return r.list(ctx, squirrel.Eq{"couple_id": coupleID})
}

func (r *InstallmentTemplateRepository) ListActiveByCouple(ctx context.Context, coupleID uuid.UUID) ([]*models.InstallmentTemplate, error) {
	return r.list(ctx, squirrel.Eq{"couple_id": coupleID, "is_active": true})
}

func (r *InstallmentTemplateRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.InstallmentTemplate, error) {
	query := squirrel.Select(installmentTemplateColumns...).
		From("installment_templates").
		Where(where).
		OrderBy("created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*models.InstallmentTemplate
	for rows.Next() {
		t, err := scanInstallmentTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *InstallmentTemplateRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := squirrel.Update("installment_templates").
		Set("is_active", active).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("installment template %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// Delete removes the template; the schema cascades to its installments.
func (r *InstallmentTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("installment_templates").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("installment template %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func scanInstallmentTemplate(row pgx.Row) (*models.InstallmentTemplate, error) {
	var t models.InstallmentTemplate
	err := row.Scan(
		&t.ID, &t.CoupleID, &t.Description, &t.TotalAmount, &t.TotalInstallments,
		&t.FirstDueDate, &t.Type, &t.Category, &t.AccountID, &t.PaidByID,
		&t.Visibility, &t.IsCoupleExpense, &t.IsFreeSpending, &t.IsActive,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
