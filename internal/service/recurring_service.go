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

type RecurringService struct {
	templates    RecurringTemplateStore
	occurrences  OccurrenceStore
	transactions TransactionStore
	accounts     AccountStore
	monthsAhead  int
	logger       *zap.Logger
	now          func() time.Time
}

func NewRecurringService(
	templates RecurringTemplateStore,
	occurrences OccurrenceStore,
	transactions TransactionStore,
	accounts AccountStore,
	monthsAhead int,
	logger *zap.Logger,
) *RecurringService {
	return &RecurringService{
		templates:    templates,
		occurrences:  occurrences,
		transactions: transactions,
		accounts:     accounts,
		monthsAhead:  monthsAhead,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateTemplate validates the template, defaults its visibility from the
// account's ownership, persists it and generates the first window of
// occurrences.
func (s *RecurringService) CreateTemplate(ctx context.Context, coupleID, paidByID uuid.UUID, req *dto.CreateRecurringTemplateRequest) (*models.RecurringTemplate, []*models.Occurrence, error) {
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, nil, ErrAccountNotFound
	}
	account, err := getCoupleAccount(ctx, s.accounts, coupleID, accountID)
	if err != nil {
		return nil, nil, err
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return nil, nil, ErrInvalidDate
	}
	var endDate *time.Time
	if req.EndDate != nil {
		end, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
		endDate = &end
	}

	visibility := models.Visibility(req.Visibility)
	if visibility == "" {
		visibility = account.DefaultVisibility()
	}

	now := s.now()
	template, err := models.NewRecurringTemplate(models.RecurringTemplateParams{
		CoupleID:        coupleID,
		Description:     req.Description,
		Amount:          req.Amount,
		Type:            models.TransactionType(req.Type),
		Category:        models.TransactionCategory(req.Category),
		AccountID:       account.ID,
		PaidByID:        paidByID,
		Visibility:      visibility,
		IsCoupleExpense: req.IsCoupleExpense,
		IsFreeSpending:  req.IsFreeSpending,
		Frequency:       models.Frequency(req.Frequency),
		Interval:        req.Interval,
		StartDate:       startDate,
		EndDate:         endDate,
	}, now)
	if err != nil {
		return nil, nil, err
	}

	if err := s.templates.Create(ctx, template); err != nil {
		return nil, nil, err
	}

	created, err := s.generate(ctx, template, s.monthsAhead)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Recurring template created",
		zap.String("template_id", template.ID.String()),
		zap.Int("occurrences", len(created)),
	)
	return template, created, nil
}

func (s *RecurringService) ListTemplates(ctx context.Context, coupleID uuid.UUID) ([]*models.RecurringTemplate, error) {
	return s.templates.ListByCouple(ctx, coupleID)
}

func (s *RecurringService) ListOccurrences(ctx context.Context, coupleID, templateID uuid.UUID) ([]*models.Occurrence, error) {
	if _, err := s.getCoupleTemplate(ctx, coupleID, templateID); err != nil {
		return nil, err
	}
	return s.occurrences.ListByTemplate(ctx, templateID)
}

func (s *RecurringService) SetActive(ctx context.Context, coupleID, templateID uuid.UUID, active bool) error {
	if _, err := s.getCoupleTemplate(ctx, coupleID, templateID); err != nil {
		return err
	}
	return s.templates.SetActive(ctx, templateID, active)
}

// GenerateOccurrences extends the template's schedule up to monthsAhead
// months from today (template default when zero). Safe to call repeatedly:
// already-scheduled dates are skipped and an empty batch is not an error.
func (s *RecurringService) GenerateOccurrences(ctx context.Context, coupleID, templateID uuid.UUID, monthsAhead int) ([]*models.Occurrence, error) {
	template, err := s.getCoupleTemplate(ctx, coupleID, templateID)
	if err != nil {
		return nil, err
	}
	if monthsAhead <= 0 {
		monthsAhead = s.monthsAhead
	}
	return s.generate(ctx, template, monthsAhead)
}

func (s *RecurringService) generate(ctx context.Context, template *models.RecurringTemplate, monthsAhead int) ([]*models.Occurrence, error) {
	existing, err := s.occurrences.ListByTemplate(ctx, template.ID)
	if err != nil {
		return nil, err
	}

	created, cursor, err := template.BuildOccurrences(existing, monthsAhead, s.now())
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, nil
	}

	if err := s.occurrences.CreateBatch(ctx, created); err != nil {
		return nil, err
	}
	if err := s.templates.UpdateNextOccurrence(ctx, template.ID, cursor); err != nil {
		return nil, err
	}
	template.NextOccurrence = cursor

	s.logger.Info("Occurrences generated",
		zap.String("template_id", template.ID.String()),
		zap.Int("count", len(created)),
		zap.Time("next_occurrence", cursor),
	)
	return created, nil
}

// PayOccurrence settles a pending occurrence: it creates the ledger
// transaction shaped from the template, then transitions the occurrence to
// PAID with a conditional store update so concurrent payers cannot both win.
// The transaction date defaults to the occurrence's due date.
func (s *RecurringService) PayOccurrence(ctx context.Context, coupleID, occurrenceID uuid.UUID, transactionDate *time.Time) (*models.Occurrence, *models.Transaction, error) {
	occurrence, err := s.getOccurrence(ctx, occurrenceID)
	if err != nil {
		return nil, nil, err
	}
	template, err := s.getCoupleTemplate(ctx, coupleID, occurrence.TemplateID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	if err := occurrence.CanBePaid(now); err != nil {
		return nil, nil, err
	}

	date := occurrence.DueDate
	if transactionDate != nil {
		date = *transactionDate
	}
	tx := newOccurrenceTransaction(template, occurrence, date, now)

	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, nil, err
	}

	if err := occurrence.Pay(tx.ID, now); err != nil {
		return nil, nil, err
	}
	if err := s.occurrences.UpdateStatus(ctx, occurrence.ID, models.StatusPaid, &tx.ID); err != nil {
		// The transaction row already exists; until a reconciliation pass
		// picks it up, it is an orphan not referenced by any entry.
		s.logger.Error("Occurrence update failed after transaction create",
			zap.String("occurrence_id", occurrence.ID.String()),
			zap.String("transaction_id", tx.ID.String()),
			zap.Error(err),
		)
		return nil, nil, s.mapConflict(ctx, err, occurrenceID)
	}

	return occurrence, tx, nil
}

// SkipOccurrence marks a pending occurrence as skipped. Allowed even when the
// occurrence is overdue.
func (s *RecurringService) SkipOccurrence(ctx context.Context, coupleID, occurrenceID uuid.UUID) (*models.Occurrence, error) {
	occurrence, err := s.getOccurrence(ctx, occurrenceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.getCoupleTemplate(ctx, coupleID, occurrence.TemplateID); err != nil {
		return nil, err
	}

	if err := occurrence.Skip(s.now()); err != nil {
		return nil, err
	}
	if err := s.occurrences.UpdateStatus(ctx, occurrence.ID, models.StatusSkipped, nil); err != nil {
		return nil, s.mapConflict(ctx, err, occurrenceID)
	}
	return occurrence, nil
}

func (s *RecurringService) getCoupleTemplate(ctx context.Context, coupleID, templateID uuid.UUID) (*models.RecurringTemplate, error) {
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

func (s *RecurringService) getOccurrence(ctx context.Context, id uuid.UUID) (*models.Occurrence, error) {
	occurrence, err := s.occurrences.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return occurrence, nil
}

// mapConflict re-reads the entry after a lost conditional update and reports
// the state the winner left it in.
func (s *RecurringService) mapConflict(ctx context.Context, err error, occurrenceID uuid.UUID) error {
	if !errors.Is(err, models.ErrStatusConflict) {
		return err
	}
	current, getErr := s.occurrences.GetByID(ctx, occurrenceID)
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
