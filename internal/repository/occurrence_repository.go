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

var occurrenceColumns = []string{
	"id", "template_id", "due_date", "status", "transaction_id",
	"created_at", "updated_at",
}

type OccurrenceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewOccurrenceRepository(db *pgxpool.Pool, logger *zap.Logger) *OccurrenceRepository {
	return &OccurrenceRepository{db: db, logger: logger}
}

func (r *OccurrenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Occurrence, error) {
	query := squirrel.Select(occurrenceColumns...).
		From("occurrences").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	o, err := scanOccurrence(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("occurrence %s: %w", id, models.ErrNotFound)
	}
	return o, err
}

func (r *OccurrenceRepository) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*models.Occurrence, error) {
	return r.list(ctx, squirrel.Eq{"template_id": templateID})
}

func (r *OccurrenceRepository) ListPendingByTemplate(ctx context.Context, templateID uuid.UUID) ([]*models.Occurrence, error) {
	return r.list(ctx, squirrel.Eq{"template_id": templateID, "status": models.StatusPending})
}

func (r *OccurrenceRepository) ListByStatus(ctx context.Context, status models.EntryStatus) ([]*models.Occurrence, error) {
	return r.list(ctx, squirrel.Eq{"status": status})
}

// ListDueInRange returns pending occurrences due between start and end
// inclusive, for upcoming-payment views.
func (r *OccurrenceRepository) ListDueInRange(ctx context.Context, start, end time.Time) ([]*models.Occurrence, error) {
	return r.listWhere(ctx,
		squirrel.Eq{"status": models.StatusPending},
		squirrel.GtOrEq{"due_date": start},
		squirrel.LtOrEq{"due_date": end},
	)
}

// ListOverdue returns pending occurrences past the payment window as of the
// given day.
func (r *OccurrenceRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*models.Occurrence, error) {
	cutoff := models.DateOnly(asOf).AddDate(0, 0, -models.OverdueGraceDays)
	return r.listWhere(ctx,
		squirrel.Eq{"status": models.StatusPending},
		squirrel.Lt{"due_date": cutoff},
	)
}

func (r *OccurrenceRepository) Create(ctx context.Context, o *models.Occurrence) error {
	return r.CreateBatch(ctx, []*models.Occurrence{o})
}

func (r *OccurrenceRepository) CreateBatch(ctx context.Context, occurrences []*models.Occurrence) error {
	if len(occurrences) == 0 {
		return nil
	}

	builder := squirrel.Insert("occurrences").
		Columns(occurrenceColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, o := range occurrences {
		builder = builder.Values(
			o.ID, o.TemplateID, o.DueDate, o.Status, o.TransactionID,
			o.CreatedAt, o.UpdatedAt,
		)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// UpdateStatus transitions the occurrence out of PENDING. The WHERE clause
// makes the update conditional: when two settlers race, exactly one row wins
// and the loser gets ErrStatusConflict to re-read and report.
func (r *OccurrenceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.EntryStatus, transactionID *uuid.UUID) error {
	query := squirrel.Update("occurrences").
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
		return fmt.Errorf("occurrence %s: %w", id, models.ErrStatusConflict)
	}
	return nil
}

func (r *OccurrenceRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.Occurrence, error) {
	return r.listWhere(ctx, where)
}

func (r *OccurrenceRepository) listWhere(ctx context.Context, conds ...squirrel.Sqlizer) ([]*models.Occurrence, error) {
	query := squirrel.Select(occurrenceColumns...).
		From("occurrences").
		OrderBy("due_date").
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

	var occurrences []*models.Occurrence
	for rows.Next() {
		o, err := scanOccurrence(rows)
		if err != nil {
			return nil, err
		}
		occurrences = append(occurrences, o)
	}
	return occurrences, rows.Err()
}

func scanOccurrence(row pgx.Row) (*models.Occurrence, error) {
	var o models.Occurrence
	err := row.Scan(
		&o.ID, &o.TemplateID, &o.DueDate, &o.Status, &o.TransactionID,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
