package service

import (
	"context"
	"errors"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/dto"
	"github.com/tamicaires/fin2couple-api/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountService struct {
	accounts AccountStore
	logger   *zap.Logger
}

func NewAccountService(accounts AccountStore, logger *zap.Logger) *AccountService {
	return &AccountService{accounts: accounts, logger: logger}
}

func (s *AccountService) Create(ctx context.Context, coupleID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error) {
	var ownerID *uuid.UUID
	if req.OwnerID != nil {
		id, err := uuid.Parse(*req.OwnerID)
		if err != nil {
			return nil, errors.New("invalid owner id")
		}
		ownerID = &id
	}

	now := time.Now()
	account := &models.Account{
		ID:        uuid.New(),
		CoupleID:  coupleID,
		Name:      req.Name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) List(ctx context.Context, coupleID uuid.UUID) ([]*models.Account, error) {
	return s.accounts.ListByCouple(ctx, coupleID)
}

// getCoupleAccount resolves an account and verifies it belongs to the couple;
// cross-tenant ids read as not found.
func getCoupleAccount(ctx context.Context, accounts AccountStore, coupleID, accountID uuid.UUID) (*models.Account, error) {
	account, err := accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if account.CoupleID != coupleID {
		return nil, ErrAccountNotFound
	}
	return account, nil
}
