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

var transactionColumns = []string{
	"id", "couple_id", "account_id", "paid_by_id", "amount", "type", "category",
	"description", "date", "visibility", "is_couple_expense", "is_free_spending",
	"recurring_template_id", "installment_group_id", "installment_number",
	"total_installments", "created_at", "updated_at",
}

// TransactionFilter narrows ListByCouple. Zero values mean "no filter".
type TransactionFilter struct {
	From time.Time
	To   time.Time
	Type models.TransactionType
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{db: db, logger: logger}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns(transactionColumns...).
		Values(
			tx.ID, tx.CoupleID, tx.AccountID, tx.PaidByID, tx.Amount, tx.Type,
			tx.Category, tx.Description, tx.Date, tx.Visibility,
			tx.IsCoupleExpense, tx.IsFreeSpending, tx.RecurringTemplateID,
			tx.InstallmentGroupID, tx.InstallmentNumber, tx.TotalInstallments,
			tx.CreatedAt, tx.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	tx, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, models.ErrNotFound)
	}
	return tx, err
}

func (r *TransactionRepository) ListByCouple(ctx context.Context, coupleID uuid.UUID, filter TransactionFilter) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"couple_id": coupleID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if !filter.From.IsZero() {
		query = query.Where(squirrel.GtOrEq{"date": filter.From})
	}
	if !filter.To.IsZero() {
		query = query.Where(squirrel.LtOrEq{"date": filter.To})
	}
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
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

	var transactions []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Delete(ctx context.Context, id, coupleID uuid.UUID) error {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id, "couple_id": coupleID}).
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
		return fmt.Errorf("transaction %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(
		&tx.ID, &tx.CoupleID, &tx.AccountID, &tx.PaidByID, &tx.Amount, &tx.Type,
		&tx.Category, &tx.Description, &tx.Date, &tx.Visibility,
		&tx.IsCoupleExpense, &tx.IsFreeSpending, &tx.RecurringTemplateID,
		&tx.InstallmentGroupID, &tx.InstallmentNumber, &tx.TotalInstallments,
		&tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
