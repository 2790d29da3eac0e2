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

type CoupleRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCoupleRepository(db *pgxpool.Pool, logger *zap.Logger) *CoupleRepository {
	return &CoupleRepository{db: db, logger: logger}
}

func (r *CoupleRepository) Create(ctx context.Context, couple *models.Couple) error {
	query := squirrel.Insert("couples").
		Columns("id", "invite_code", "created_at", "updated_at").
		Values(couple.ID, couple.InviteCode, couple.CreatedAt, couple.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CoupleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Couple, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *CoupleRepository) GetByInviteCode(ctx context.Context, code string) (*models.Couple, error) {
	return r.getOne(ctx, squirrel.Eq{"invite_code": code})
}

func (r *CoupleRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Couple, error) {
	query := squirrel.Select("id", "invite_code", "created_at", "updated_at").
		From("couples").
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var couple models.Couple
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&couple.ID, &couple.InviteCode, &couple.CreatedAt, &couple.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("couple: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &couple, nil
}
