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

type InstallmentService struct {
	templates    InstallmentTemplateStore
	installments InstallmentStore
	transactions TransactionStore
	accounts     AccountStore
	logger       *zap.Logger
	now          func() time.Time
}

func NewInstallmentService(
	templates InstallmentTemplateStore,
	installments InstallmentStore,
	transactions TransactionStore,
	accounts AccountStore,
	logger *zap.Logger,
) *InstallmentService {
	return &InstallmentService{
		templates:    templates,
		installments: installments,
		transactions: transactions,
		accounts:     accounts,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateTemplate persists the template and its full installment set in one
// operation. The total and count are immutable afterwards; there is no
// regeneration for installments.
func (s *InstallmentService) CreateTemplate(ctx context.Context, coupleID, paidByID uuid.UUID, req *dto.CreateInstallmentTemplateRequest) (*models.InstallmentTemplate, []*models.Installment, error) {
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, nil, ErrAccountNotFound
	}
	account, err := getCoupleAccount(ctx, s.accounts, coupleID, accountID)
	if err != nil {
		return nil, nil, err
	}

	firstDueDate, err := time.Parse(time.DateOnly, req.FirstDueDate)
	if err != nil {
		return nil, nil, ErrInvalidDate
	}

	visibility := models.Visibility(req.Visibility)
	if visibility == "" {
		visibility = account.DefaultVisibility()
	}

	now := s.now()
	template, err := models.NewInstallmentTemplate(models.InstallmentTemplateParams{
		CoupleID:          coupleID,
		Description:       req.Description,
		TotalAmount:       req.TotalAmount,
		TotalInstallments: req.TotalInstallments,
		FirstDueDate:      firstDueDate,
		Type:              models.TransactionType(req.Type),
		Category:          models.TransactionCategory(req.Category),
		AccountID:         account.ID,
		PaidByID:          paidByID,
		Visibility:        visibility,
		IsCoupleExpense:   req.IsCoupleExpense,
		IsFreeSpending:    req.IsFreeSpending,
	}, now)
	if err != nil {
		return nil, nil, err
	}

	installments, err := template.BuildInstallments(now)
	if err != nil {
		return nil, nil, err
	}

	if err := s.templates.Create(ctx, template); err != nil {
		return nil, nil, err
	}
	if err := s.installments.CreateBatch(ctx, installments); err != nil {
		return nil, nil, err
	}

	s.logger.Info("Installment template created",
		zap.String("template_id", template.ID.String()),
		zap.Int("installments", len(installments)),
	)
	return template, installments, nil
}

func (s *InstallmentService) ListTemplates(ctx context.Context, coupleID uuid.UUID) ([]*models.InstallmentTemplate, error) {
	return s.templates.ListByCouple(ctx, coupleID)
}

func (s *InstallmentService) ListInstallments(ctx context.Context, coupleID, templateID uuid.UUID) ([]*models.Installment, error) {
	if _, err := s.getCoupleTemplate(ctx, coupleID, templateID); err != nil {
		return nil, err
	}
	return s.installments.ListByTemplate(ctx, templateID)
}

func (s *InstallmentService) SetActive(ctx context.Context, coupleID, templateID uuid.UUID, active bool) error {
	if _, err := s.getCoupleTemplate(ctx, coupleID, templateID); err != nil {
		return err
	}
	return s.templates.SetActive(ctx, templateID, active)
}

// DeleteTemplate removes the template and, through the store's cascade, all
// of its installments. Settled ledger transactions survive with their
// back-reference detached.
func (s *InstallmentService) DeleteTemplate(ctx context.Context, coupleID, templateID uuid.UUID) error {
	if _, err := s.getCoupleTemplate(ctx, coupleID, templateID); err != nil {
		return err
	}
	return s.templates.Delete(ctx, templateID)
}

// PayInstallment settles a pending installment with its own pre-split
// amount; see RecurringService.PayOccurrence for the settlement contract.
func (s *InstallmentService) PayInstallment(ctx context.Context, coupleID, installmentID uuid.UUID, transactionDate *time.Time) (*models.Installment, *models.Transaction, error) {
	installment, err := s.getInstallment(ctx, installmentID)
	if err != nil {
		return nil, nil, err
	}
	template, err := s.getCoupleTemplate(ctx, coupleID, installment.TemplateID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	if err := installment.CanBePaid(now); err != nil {
		return nil, nil, err
	}

	date := installment.DueDate
	if transactionDate != nil {
		date = *transactionDate
	}
	tx := newInstallmentTransaction(template, installment, date, now)

	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, nil, err
	}

	if err := installment.Pay(tx.ID, now); err != nil {
		return nil, nil, err
	}
	if err := s.installments.UpdateStatus(ctx, installment.ID, models.StatusPaid, &tx.ID); err != nil {
		s.logger.Error("Installment update failed after transaction create",
			zap.String("installment_id", installment.ID.String()),
			zap.String("transaction_id", tx.ID.String()),
			zap.Error(err),
		)
		return nil, nil, s.mapConflict(ctx, err, installmentID)
	}

	return installment, tx, nil
}

func (s *InstallmentService) SkipInstallment(ctx context.Context, coupleID, installmentID uuid.UUID) (*models.Installment, error) {
	installment, err := s.getInstallment(ctx, installmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.getCoupleTemplate(ctx, coupleID, installment.TemplateID); err != nil {
		return nil, err
	}

	if err := installment.Skip(s.now()); err != nil {
		return nil, err
	}
	if err := s.installments.UpdateStatus(ctx, installment.ID, models.StatusSkipped, nil); err != nil {
		return nil, s.mapConflict(ctx, err, installmentID)
	}
	return installment, nil
}

func (s *InstallmentService) getCoupleTemplate(ctx context.Context, coupleID, templateID uuid.UUID) (*models.InstallmentTemplate, error) {
	template, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	if template.CoupleID != coupleID {
		return nil, ErrTemplateNotFound
	}
	return template, nil
}

func (s *InstallmentService) getInstallment(ctx context.Context, id uuid.UUID) (*models.Installment, error) {
	installment, err := s.installments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return installment, nil
}

func (s *InstallmentService) mapConflict(ctx context.Context, err error, installmentID uuid.UUID) error {
	if !errors.Is(err, models.ErrStatusConflict) {
		return err
	}
	current, getErr := s.installments.GetByID(ctx, installmentID)
	if getErr != nil {
		return err
	}
	switch current.Status {
	case models.StatusPaid:
		return models.ErrAlreadyPaid
	case models.StatusSkipped:
		return models.ErrAlreadySkipped
	}
	return err
}
