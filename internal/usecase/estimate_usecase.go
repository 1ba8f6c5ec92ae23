package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/havncube/billing-service/internal/domain/entities"
	"github.com/havncube/billing-service/internal/domain/pricing"
	"github.com/havncube/billing-service/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrNoLineItems       = errors.New("estimate has no line items")
	ErrRendererFailed    = errors.New("pdf generation failed")
)

// IEstimateUseCase exposes the estimate operations behind the HTTP façade.
//
// Every write runs the same pipeline: mint missing identifiers, resolve
// quantities from measured dimensions, reprice, persist.

type IEstimateUseCase interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Update(ctx context.Context, id string, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	GeneratePDF(ctx context.Context, id string) (filename string, pdf []byte, err error)
	Ping(ctx context.Context) error
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	renderer interfaces.IEstimateRenderer
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, renderer interfaces.IEstimateRenderer) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, renderer: renderer}
}

func (u *EstimateUseCase) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	if len(e.LineItems) == 0 {
		return entities.Estimate{}, ErrNoLineItems
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now

	if strings.TrimSpace(e.EstimateNumber) == "" {
		number, err := u.repo.NextEstimateNumber(ctx)
		if err != nil {
			return entities.Estimate{}, err
		}
		e.EstimateNumber = number
	}

	assignLineItemIDs(e.LineItems)
	pricing.Reprice(&e)

	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.List(ctx)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// Update fully replaces the stored estimate. The identifier and created_at
// are taken from the existing record, never from the payload.
func (u *EstimateUseCase) Update(ctx context.Context, id string, e entities.Estimate) (entities.Estimate, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(e.LineItems) == 0 {
		return entities.Estimate{}, ErrNoLineItems
	}

	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()

	assignLineItemIDs(e.LineItems)
	pricing.Reprice(&e)

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		// Deleted between the read and the conditional write.
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimateNotFound
	}
	return nil
}

// GeneratePDF renders the persisted estimate into a printable document. The
// artifact is generated on demand and never stored; an unknown id fails
// before any rendering work happens.
func (u *EstimateUseCase) GeneratePDF(ctx context.Context, id string) (string, []byte, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	pdf, err := u.renderer.Render(e)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrRendererFailed, err)
	}

	name := e.EstimateNumber
	if name == "" {
		name = e.ID
	}
	return fmt.Sprintf("Estimate_%s.pdf", name), pdf, nil
}

func (u *EstimateUseCase) Ping(ctx context.Context) error {
	return u.repo.Ping(ctx)
}

func assignLineItemIDs(items []entities.LineItem) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}
}
