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

var recurringTemplateColumns = []string{
	"id", "couple_id", "description", "amount", "type", "category",
	"account_id", "paid_by_id", "visibility", "is_couple_expense",
	"is_free_spending", "frequency", "interval_count", "start_date",
	"end_date", "next_occurrence", "is_active", "created_at", "updated_at",
}

type RecurringTemplateRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRecurringTemplateRepository(db *pgxpool.Pool, logger *zap.Logger) *RecurringTemplateRepository {
	return &RecurringTemplateRepository{db: db, logger: logger}
}

func (r *RecurringTemplateRepository) Create(ctx context.Context, t *models.RecurringTemplate) error {
	query := squirrel.Insert("recurring_templates").
		Columns(recurringTemplateColumns...).
		Values(
			t.ID, t.CoupleID, t.Description, t.Amount, t.Type, t.Category,
			t.AccountID, t.PaidByID, t.Visibility, t.IsCoupleExpense,
			t.IsFreeSpending, t.Rule.Frequency, t.Rule.Interval,
			t.Rule.StartDate, t.Rule.EndDate, t.NextOccurrence, t.IsActive,
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

func (r *RecurringTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RecurringTemplate, error) {
	query := squirrel.Select(recurringTemplateColumns...).
		From("recurring_templates").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanRecurringTemplate(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("recurring template %s: %w", id, models.ErrNotFound)
	}
	return t, err
}

func (r *RecurringTemplateRepository) ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]*models.RecurringTemplate, error) {
	return r.list(ctx, squirrel.Eq{"couple_id": coupleID})
}

func (r *RecurringTemplateRepository) ListActiveByCouple(ctx context.Context, coupleID uuid.UUID) ([]*models.RecurringTemplate, error) {
	return r.list(ctx, squirrel.Eq{"couple_id": coupleID, "is_active": true})
}

func (r *RecurringTemplateRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := squirrel.Update("recurring_templates").
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
		return fmt.Errorf("recurring template %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// UpdateNextOccurrence advances the generation cursor after a batch of
// occurrences is persisted.
func (r *RecurringTemplateRepository) UpdateNextOccurrence(ctx context.Context, id uuid.UUID, next time.Time) error {
	query := squirrel.Update("recurring_templates").
		Set("next_occurrence", next).
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
		return fmt.Errorf("recurring template %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *RecurringTemplateRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.RecurringTemplate, error) {
	query := squirrel.Select(recurringTemplateColumns...).
		From("recurring_templates").
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

	var templates []*models.RecurringTemplate
	for rows.Next() {
		t, err := scanRecurringTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func scanRecurringTemplate(row pgx.Row) (*models.RecurringTemplate, error) {
	var t models.RecurringTemplate
	err := row.Scan(
		&t.ID, &t.CoupleID, &t.Description, &t.Amount, &t.Type, &t.Category,
		&t.AccountID, &t.PaidByID, &t.Visibility, &t.IsCoupleExpense,
		&t.IsFreeSpending, &t.Rule.Frequency, &t.Rule.Interval,
		&t.Rule.StartDate, &t.Rule.EndDate, &t.NextOccurrence, &t.IsActive,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
