package service

import (
	"context"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/models"
	"github.com/tamicaires/fin2couple-api/internal/repository"

	"github.com/google/uuid"
)

// Store interfaces consumed by the services. The pgx repositories satisfy
// them; tests substitute in-memory fakes.

type CoupleStore interface {
	Create(ctx context.Context, couple *models.Couple) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Couple, error)
	GetByInviteCode(ctx context.Context, code string) (*models.Couple, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateCouple(ctx context.Context, id, coupleID uuid.UUID) error
}

type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]*models.Account, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByCouple(ctx context.Context, coupleID uuid.UUID, filter repository.TransactionFilter) ([]*models.Transaction, error)
	Delete(ctx context.Context, id, coupleID uuid.UUID) error
}

type RecurringTemplateStore interface {
	Create(ctx context.Context, t *models.RecurringTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RecurringTemplate, error)
	ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]*models.RecurringTemplate, error)
	ListActiveByCouple(ctx context.Context, coupleID uuid.UUID) ([]*models.RecurringTemplate, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	UpdateNextOccurrence(ctx context.Context, id uuid.UUID, next time.Time) error
}

type OccurrenceStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Occurrence, error)
	ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*models.Occurrence, error)
	ListPendingByTemplate(ctx context.Context, templateID uuid.UUID) ([]*models.Occurrence, error)
	ListDueInRange(ctx context.Context, start, end time.Time) ([]*models.Occurrence, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]*models.Occurrence, error)
	CreateBatch(ctx context.Context, occurrences []*models.Occurrence) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.EntryStatus, transactionID *uuid.UUID) error
}

type InstallmentTemplateStore interface {
	Create(ctx context.Context, t *models.InstallmentTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InstallmentTemplate, error)
	ListByCouple(ctx context.Context, coupleID uuid.UUID) ([]*models.InstallmentTemplate, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type InstallmentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Installment, error)
	ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]*models.Installment, error)
	ListPendingByTemplate(ctx context.Context, templateID uuid.UUID) ([]*models.Installment, error)
	ListDueInRange(ctx context.Context, start, end time.Time) ([]*models.Installment, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]*models.Installment, error)
	CreateBatch(ctx context.Context, installments []*models.Installment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.EntryStatus, transactionID *uuid.UUID) error
}
