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

var installmentColumns = []string{
	"id", "template_id", "number", "amount", "due_date", "status",
	"transaction_id", "created_at", "updated_at",
}

type InstallmentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInstallmentRepository(db *pgxpool.Pool, logger *zap.Logger) *InstallmentRepository {
	return &InstallmentRepository{db: db, logger: logger}
}

func (r *InstallmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Installment, error) {
	query := squirrel.Select(installmentColumns...).
		From("installments").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	inst, err := scanInstallment(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("installment %s: %w", id, models.ErrNotFound)
	}
	return inst, err
}

func (r *InstallmentRepository) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*models.Installment, error) {
	return r.listWhere(ctx, "number", squirrel.Eq{"template_id": templateID})
}

func (r *InstallmentRepository) ListPendingByTemplate(ctx context.Context, templateID uuid.UUID) ([]*models.Installment, error) {
	return r.listWhere(ctx, "number", squirrel.Eq{"template_id": templateID, "status": models.StatusPending})
}

func (r *InstallmentRepository) ListByStatus(ctx context.Context, status models.EntryStatus) ([]*models.Installment, error) {
	return r.listWhere(ctx, "due_date", squirrel.Eq{"status": status})
}

func (r *InstallmentRepository) ListDueInRange(ctx context.Context, start, end time.Time) ([]*models.Installment, error) {
	return r.listWhere(ctx, "due_date",
		squirrel.Eq{"status": models.StatusPending},
		squirrel.GtOrEq{"due_date": start},
		squirrel.LtOrEq{"due_date": end},
	)
}

func (r *InstallmentRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*models.Installment, error) {
	cutoff := models.DateOnly(asOf).AddDate(0, 0, -models.OverdueGraceDays)
	return r.listWhere(ctx, "due_date",
		squirrel.Eq{"status": models.StatusPending},
		squirrel.Lt{"due_date": cutoff},
	)
}

func (r *InstallmentRepository) Create(ctx context.Context, inst *models.Installment) error {
	return r.CreateBatch(ctx, []*models.Installment{inst})
}

func (r *InstallmentRepository) CreateBatch(ctx context.Context, installments []*models.Installment) error {
	if len(installments) == 0 {
		return nil
	}

	builder := squirrel.Insert("installments").
		Columns(installmentColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, inst := range installments {
		builder = builder.Values(
			inst.ID, inst.TemplateID, inst.Number, inst.Amount, inst.DueDate,
			inst.Status, inst.TransactionID, inst.CreatedAt, inst.UpdatedAt,
		)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// UpdateStatus is conditional on the installment still being PENDING; see
// OccurrenceRepository.UpdateStatus.
func (r *InstallmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.EntryStatus, transactionID *uuid.UUID) error {
	query := squirrel.Update("installments").
		Set("status", status).
		Set("transaction_id", transactionID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "status": models.StatusPending}).
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
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return fmt.Errorf("installment %s: %w", id, models.ErrStatusConflict)
	}
	return nil
}

func (r *InstallmentRepository) listWhere(ctx context.Context, orderBy string, conds ...squirrel.Sqlizer) ([]*models.Installment, error) {
	query := squirrel.Select(installmentColumns...).
		From("installments").
		OrderBy(orderBy).
		PlaceholderFormat(squirrel.Dollar)
	for _, cond := range conds {
		query = query.Where(cond)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var installments []*models.Installment
	for rows.Next() {
		inst, err := scanInstallment(rows)
		if err != nil {
			return nil, err
		}
		installments = append(installments, inst)
	}
	return installments, rows.Err()
}

func scanInstallment(row pgx.Row) (*models.Installment, error) {
	var inst models.Installment
	err := row.Scan(
		&inst.ID, &inst.TemplateID, &inst.Number, &inst.Amount, &inst.DueDate,
		&inst.Status, &inst.TransactionID, &inst.CreatedAt, &inst.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}
