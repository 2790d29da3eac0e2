package service

import (
	"context"
	"errors"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/dto"
	"github.com/tamicaires/fin2couple-api/internal/models"
	"github.com/tamicaires/fin2couple-api/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionService struct {
	transactions TransactionStore
	accounts     AccountStore
	logger       *zap.Logger
}

func NewTransactionService(transactions TransactionStore, accounts AccountStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		accounts:     accounts,
		logger:       logger,
	}
}

// Create records a one-off ledger transaction. Visibility defaults from the
// account's ownership when the caller leaves it empty.
func (s *TransactionService) Create(ctx context.Context, coupleID, paidByID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	account, err := getCoupleAccount(ctx, s.accounts, coupleID, accountID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	visibility := models.Visibility(req.Visibility)
	if visibility == "" {
		visibility = account.DefaultVisibility()
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:              uuid.New(),
		CoupleID:        coupleID,
		AccountID:       account.ID,
		PaidByID:        paidByID,
		Amount:          req.Amount,
		Type:            models.TransactionType(req.Type),
		Category:        models.TransactionCategory(req.Category),
		Description:     req.Description,
		Date:            models.DateOnly(date),
		Visibility:      visibility,
		IsCoupleExpense: req.IsCoupleExpense,
		IsFreeSpending:  req.IsFreeSpending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context, coupleID uuid.UUID, filter repository.TransactionFilter) ([]*models.Transaction, error) {
	return s.transactions.ListByCouple(ctx, coupleID, filter)
}

func (s *TransactionService) Delete(ctx context.Context, coupleID, id uuid.UUID) error {
	err := s.transactions.Delete(ctx, id, coupleID)
	if errors.Is(err, models.ErrNotFound) {
		return ErrTransactionNotFound
	}
	return err
}
