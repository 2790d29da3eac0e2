package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tamicaires/fin2couple-api/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AccountRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAccountRepository(db *pgxpool.Pool, logger *zap.Logger) *AccountRepository {
	return &AccountRepository{db: db, logger: logger}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := squirrel.Insert("accounts").
		Columns("id", "couple_id", "name", "owner_id", "created_at", "updated_at").
		Values(account.ID, account.CoupleID, account.Name, account.OwnerID, account.CreatedAt, account.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := squirrel.Select("id", "couple_id", "name", "owner_id", "created_at", "updated_at").
		From("accounts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var account models.Account
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&account.ID, &account.CoupleID, &account.Name, &account.OwnerID,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]*models.Account, error) {
	query := squirrel.Select("id", "couple_id", "name", "owner_id", "created_at", "updated_at").
		From("accounts").
		Where(squirrel.Eq{"couple_id": coupleID}).
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

	var accounts []*models.Account
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID, &account.CoupleID, &account.Name, &account.OwnerID,
			&account.CreatedAt, &account.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, &account)
	}
	return accounts, rows.Err()
}
