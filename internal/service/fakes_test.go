package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tamicaires/fin2couple-api/internal/models"
	"github.com/tamicaires/fin2couple-api/internal/repository"

	"github.com/google/uuid"
)

// In-memory stores. Reads return copies so a service mutation is only
// visible after it is written back, matching how rows behave.

type memAccounts struct {
	byID map[uuid.UUID]*models.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byID: make(map[uuid.UUID]*models.Account)}
}

func (m *memAccounts) Create(_ context.Context, a *models.Account) error {
	m.byID[a.ID] = a
	return nil
}

func (m *memAccounts) GetByID(_ context.Context, id uuid.UUID) (*models.Account, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("account: %w", models.ErrNotFound)
	}
	copied := *a
	return &copied, nil
}

func (m *memAccounts) ListByCouple(_ context.Context, coupleID uuid.UUID) ([]*models.Account, error) {
	var out []*models.Account
	for _, a := range m.byID {
		if a.CoupleID == coupleID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

type memTransactions struct {
	byID  map[uuid.UUID]*models.Transaction
	order []uuid.UUID
}

func newMemTransactions() *memTransactions {
	return &memTransactions{byID: make(map[uuid.UUID]*models.Transaction)}
}

func (m *memTransactions) Create(_ context.Context, tx *models.Transaction) error {
	copied := *tx
	m.byID[tx.ID] = &copied
	m.order = append(m.order, tx.ID)
	return nil
}

func (m *memTransactions) GetByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("transaction: %w", models.ErrNotFound)
	}
	copied := *tx
	return &copied, nil
}

func (m *memTransactions) ListByCouple(_ context.Context, coupleID uuid.UUID, _ repository.TransactionFilter) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, id := range m.order {
		if tx := m.byID[id]; tx.CoupleID == coupleID {
			copied := *tx
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memTransactions) Delete(_ context.Context, id, coupleID uuid.UUID) error {
	tx, ok := m.byID[id]
	if !ok || tx.CoupleID != coupleID {
		return fmt.Errorf("transaction: %w", models.ErrNotFound)
	}
	delete(m.byID, id)
	return nil
}

type memRecurringTemplates struct {
	byID map[uuid.UUID]*models.RecurringTemplate
}

func newMemRecurringTemplates() *memRecurringTemplates {
	return &memRecurringTemplates{byID: make(map[uuid.UUID]*models.RecurringTemplate)}
}

func (m *memRecurringTemplates) Create(_ context.Context, t *models.RecurringTemplate) error {
	copied := *t
	m.byID[t.ID] = &copied
	return nil
}

func (m *memRecurringTemplates) GetByID(_ context.Context, id uuid.UUID) (*models.RecurringTemplate, error) {
	t, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("recurring template: %w", models.ErrNotFound)
	}
	copied := *t
	return &copied, nil
}

func (m *memRecurringTemplates) ListByCouple(_ context.Context, coupleID uuid.UUID) ([]*models.RecurringTemplate, error) {
	var out []*models.RecurringTemplate
	for _, t := range m.byID {
		if t.CoupleID == coupleID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memRecurringTemplates) ListActiveByCouple(ctx context.Context, coupleID uuid.UUID) ([]*models.RecurringTemplate, error) {
	all, _ := m.ListByCouple(ctx, coupleID)
	var out []*models.RecurringTemplate
	for _, t := range all {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRecurringTemplates) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	t, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("recurring template: %w", models.ErrNotFound)
	}
	t.IsActive = active
	return nil
}

func (m *memRecurringTemplates) UpdateNextOccurrence(_ context.Context, id uuid.UUID, next time.Time) error {
	t, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("recurring template: %w", models.ErrNotFound)
	}
	t.NextOccurrence = next
	return nil
}

type memOccurrences struct {
	byID map[uuid.UUID]*models.Occurrence
	// stealNextUpdate simulates losing the conditional update race: the next
	// UpdateStatus call finds the entry already settled by someone else.
	stealNextUpdate bool
}

func newMemOccurrences() *memOccurrences {
	return &memOccurrences{byID: make(map[uuid.UUID]*models.Occurrence)}
}

func (m *memOccurrences) GetByID(_ context.Context, id uuid.UUID) (*models.Occurrence, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("occurrence: %w", models.ErrNotFound)
	}
	copied := *o
	return &copied, nil
}

func (m *memOccurrences) ListByTemplate(_ context.Context, templateID uuid.UUID) ([]*models.Occurrence, error) {
	var out []*models.Occurrence
	for _, o := range m.byID {
		if o.TemplateID == templateID {
			copied := *o
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memOccurrences) ListPendingByTemplate(ctx context.Context, templateID uuid.UUID) ([]*models.Occurrence, error) {
	all, _ := m.ListByTemplate(ctx, templateID)
	var out []*models.Occurrence
	for _, o := range all {
		if o.Status == models.StatusPending {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOccurrences) ListDueInRange(_ context.Context, start, end time.Time) ([]*models.Occurrence, error) {
	var out []*models.Occurrence
	for _, o := range m.byID {
		if o.Status == models.StatusPending && !o.DueDate.Before(start) && !o.DueDate.After(end) {
			copied := *o
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memOccurrences) ListOverdue(_ context.Context, asOf time.Time) ([]*models.Occurrence, error) {
	var out []*models.Occurrence
	for _, o := range m.byID {
		if o.Status == models.StatusPending && o.IsOverdue(asOf) {
			copied := *o
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memOccurrences) CreateBatch(_ context.Context, occurrences []*models.Occurrence) error {
	for _, o := range occurrences {
		for _, existing := range m.byID {
			if existing.TemplateID == o.TemplateID && existing.DueDate.Equal(o.DueDate) {
				return fmt.Errorf("duplicate occurrence for %s on %s", o.TemplateID, o.DueDate)
			}
		}
		copied := *o
		m.byID[o.ID] = &copied
	}
	return nil
}

func (m *memOccurrences) UpdateStatus(_ context.Context, id uuid.UUID, status models.EntryStatus, transactionID *uuid.UUID) error {
	o, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("occurrence: %w", models.ErrNotFound)
	}
	if m.stealNextUpdate {
		m.stealNextUpdate = false
		other := uuid.New()
		o.Status = models.StatusPaid
		o.TransactionID = &other
		return fmt.Errorf("occurrence %s: %w", id, models.ErrStatusConflict)
	}
	if o.Status != models.StatusPending {
		return fmt.Errorf("occurrence %s: %w", id, models.ErrStatusConflict)
	}
	o.Status = status
	o.TransactionID = transactionID
	return nil
}

type memInstallmentTemplates struct {
	byID         map[uuid.UUID]*models.InstallmentTemplate
	installments *memInstallments
}

func newMemInstallmentTemplates(installments *memInstallments) *memInstallmentTemplates {
	return &memInstallmentTemplates{
		byID:         make(map[uuid.UUID]*models.InstallmentTemplate),
		installments: installments,
	}
}

func (m *memInstallmentTemplates) Create(_ context.Context, t *models.InstallmentTemplate) error {
	copied := *t
	m.byID[t.ID] = &copied
	return nil
}

func (m *memInstallmentTemplates) GetByID(_ context.Context, id uuid.UUID) (*models.InstallmentTemplate, error) {
	t, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("installment template: %w", models.ErrNotFound)
	}
	copied := *t
	return &copied, nil
}

func (m *memInstallmentTemplates) ListByCouple(_ context.Context, coupleID uuid.UUID) ([]*models.InstallmentTemplate, error) {
	var out []*models.InstallmentTemplate
	for _, t := range m.byID {
		if t.CoupleID == coupleID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memInstallmentTemplates) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	t, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("installment template: %w", models.ErrNotFound)
	}
	t.IsActive = active
	return nil
}

func (m *memInstallmentTemplates) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("installment template: %w", models.ErrNotFound)
	}
	delete(m.byID, id)
	// Mirrors ON DELETE CASCADE.
	for instID, inst := range m.installments.byID {
		if inst.TemplateID == id {
			delete(m.installments.byID, instID)
		}
	}
	return nil
}

type memInstallments struct {
	byID            map[uuid.UUID]*models.Installment
	stealNextUpdate bool
}

func newMemInstallments() *memInstallments {
	return &memInstallments{byID: make(map[uuid.UUID]*models.Installment)}
}

func (m *memInstallments) GetByID(_ context.Context, id uuid.UUID) (*models.Installment, error) {
	inst, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("installment: %w", models.ErrNotFound)
	}
	copied := *inst
	return &copied, nil
}

func (m *memInstallments) ListByTemplate(_ context.Context, templateID uuid.UUID) ([]*models.Installment, error) {
	var out []*models.Installment
	for _, inst := range m.byID {
		if inst.TemplateID == templateID {
			copied := *inst
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memInstallments) ListPendingByTemplate(ctx context.Context, templateID uuid.UUID) ([]*models.Installment, error) {
	all, _ := m.ListByTemplate(ctx, templateID)
	var out []*models.Installment
	for _, inst := range all {
		if inst.Status == models.StatusPending {
			out = append(out, inst)
		}
	}
	return out, nil
}

func (m *memInstallments) ListDueInRange(_ context.Context, start, end time.Time) ([]*models.Installment, error) {
	var out []*models.Installment
	for _, inst := range m.byID {
		if inst.Status == models.StatusPending && !inst.DueDate.Before(start) && !inst.DueDate.After(end) {
			copied := *inst
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memInstallments) ListOverdue(_ context.Context, asOf time.Time) ([]*models.Installment, error) {
	var out []*models.Installment
	for _, inst := range m.byID {
		if inst.Status == models.StatusPending && inst.IsOverdue(asOf) {
			copied := *inst
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memInstallments) CreateBatch(_ context.Context, installments []*models.Installment) error {
	for _, inst := range installments {
		for _, existing := range m.byID {
			if existing.TemplateID == inst.TemplateID && existing.Number == inst.Number {
				return fmt.Errorf("duplicate installment %d for %s", inst.Number, inst.TemplateID)
			}
		}
		copied := *inst
		m.byID[inst.ID] = &copied
	}
	return nil
}

func (m *memInstallments) UpdateStatus(_ context.Context, id uuid.UUID, status models.EntryStatus, transactionID *uuid.UUID) error {
	inst, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("installment: %w", models.ErrNotFound)
	}
	if m.stealNextUpdate {
		m.stealNextUpdate = false
		other := uuid.New()
		inst.Status = models.StatusPaid
		inst.TransactionID = &other
		return fmt.Errorf("installment %s: %w", id, models.ErrStatusConflict)
	}
	if inst.Status != models.StatusPending {
		return fmt.Errorf("installment %s: %w", id, models.ErrStatusConflict)
	}
	inst.Status = status
	inst.TransactionID = transactionID
	return nil
}
