package service

import (
	"context"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Schedule is the combined upcoming/overdue view across both entry kinds.
type Schedule struct {
	Occurrences  []*models.Occurrence
	Installments []*models.Installment
}

// ScheduleService answers "what is due soon" and "what slipped past the
// payment window" across recurring and installment templates. Read-only;
// settlement stays with the owning services.
type ScheduleService struct {
	recurringTemplates   RecurringTemplateStore
	occurrences          OccurrenceStore
	installmentTemplates InstallmentTemplateStore
	installments         InstallmentStore
	logger               *zap.Logger
	now                  func() time.Time
}

func NewScheduleService(
	recurringTemplates RecurringTemplateStore,
	occurrences OccurrenceStore,
	installmentTemplates InstallmentTemplateStore,
	installments InstallmentStore,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		recurringTemplates:   recurringTemplates,
		occurrences:          occurrences,
		installmentTemplates: installmentTemplates,
		installments:         installments,
		logger:               logger,
		now:                  time.Now,
	}
}

// Upcoming returns the couple's pending entries due within the next days.
func (s *ScheduleService) Upcoming(ctx context.Context, coupleID uuid.UUID, days int) (*Schedule, error) {
	now := s.now()
	start := models.DateOnly(now)
	end := start.AddDate(0, 0, days)

	occurrences, err := s.occurrences.ListDueInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	installments, err := s.installments.ListDueInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return s.scopeToCouple(ctx, coupleID, occurrences, installments)
}

// Overdue returns the couple's pending entries past the payment window.
func (s *ScheduleService) Overdue(ctx context.Context, coupleID uuid.UUID) (*Schedule, error) {
	now := s.now()

	occurrences, err := s.occurrences.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}
	installments, err := s.installments.ListOverdue(ctx, now)
	if err != nil {
		return nil, err
	}
	return s.scopeToCouple(ctx, coupleID, occurrences, installments)
}

// scopeToCouple drops entries whose template belongs to another couple. The
// entry stores are template-keyed, so tenancy is resolved through the
// template lists.
func (s *ScheduleService) scopeToCouple(ctx context.Context, coupleID uuid.UUID, occurrences []*models.Occurrence, installments []*models.Installment) (*Schedule, error) {
	recurring, err := s.recurringTemplates.ListByCouple(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	recurringIDs := make(map[uuid.UUID]struct{}, len(recurring))
	for _, t := range recurring {
		recurringIDs[t.ID] = struct{}{}
	}

	installmentTpls, err := s.installmentTemplates.ListByCouple(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	installmentIDs := make(map[uuid.UUID]struct{}, len(installmentTpls))
	for _, t := range installmentTpls {
		installmentIDs[t.ID] = struct{}{}
	}

	schedule := &Schedule{}
	for _, o := range occurrences {
		if _, ok := recurringIDs[o.TemplateID]; ok {
			schedule.Occurrences = append(schedule.Occurrences, o)
		}
	}
	for _, inst := range installments {
		if _, ok := installmentIDs[inst.TemplateID]; ok {
			schedule.Installments = append(schedule.Installments, inst)
		}
	}
	return schedule, nil
}
