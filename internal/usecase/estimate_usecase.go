package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrEstimateLocked        = errors.New("estimate is locked")
	ErrLineItemNotFound      = errors.New("line item not found")
	ErrInvalidLineItemQty    = errors.New("line item qty must be greater than zero")
	ErrInvalidLineItemPrice  = errors.New("line item unit price must not be negative")
	ErrPriceBookItemNotFound = errors.New("price book item not found")
)

// LineItemPatch carries the editable line fields; nil means "leave as is".
type LineItemPatch struct {
	Qty       *decimal.Decimal
	UnitPrice *decimal.Decimal
}

// IEstimateUseCase exposes the estimate line-item engine.
//
// Totals are recomputed on every mutation and the full updated estimate is
// returned; clients never compute money authoritatively. Mutations are
// rejected while the parent job is locked (completed/canceled/archived).
type IEstimateUseCase interface {
	GetOrCreateForJob(ctx context.Context, jobID string) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	AddItemFromPriceBook(ctx context.Context, estimateID, priceBookItemID string, qty decimal.Decimal) (entities.Estimate, error)
	UpdateItem(ctx context.Context, estimateID, itemID string, patch LineItemPatch) (entities.Estimate, error)
	RemoveItem(ctx context.Context, estimateID, itemID string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	jobRepo   interfaces.IJobRepository
	priceBook interfaces.IPriceBookRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	jobRepo interfaces.IJobRepository,
	priceBook interfaces.IPriceBookRepository,
) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, jobRepo: jobRepo, priceBook: priceBook}
}

// GetOrCreateForJob returns the job's estimate, creating and linking an empty
// draft on first access.
func (u *EstimateUseCase) GetOrCreateForJob(ctx context.Context, jobID string) (entities.Estimate, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Estimate{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if job.ID == "" {
		return entities.Estimate{}, ErrJobNotFound
	}

	if job.EstimateID != "" {
		e, err := u.repo.GetByID(ctx, job.EstimateID)
		if err != nil {
			return entities.Estimate{}, err
		}
		if e.ID != "" {
			return e, nil
		}
	}

	// The link can lag behind the estimate (interrupted first access).
	if existing, err := u.repo.GetByJobID(ctx, jobID); err != nil {
		return entities.Estimate{}, err
	} else if existing.ID != "" {
		return u.linkToJob(ctx, job, existing)
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:         uuid.NewString(),
		JobID:      job.ID,
		CustomerID: job.CustomerID,
		Title:      job.Title,
		Status:     entities.EstimateStatusDraft,
		TaxRate:    decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	e.Recalculate()

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.linkToJob(ctx, job, created)
}

func (u *EstimateUseCase) linkToJob(ctx context.Context, job entities.Job, e entities.Estimate) (entities.Estimate, error) {
	if job.EstimateID == e.ID {
		return e, nil
	}
	job.EstimateID = e.ID
	job.UpdatedAt = time.Now().UTC()
	if _, err := u.jobRepo.Save(ctx, job); err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			return entities.Estimate{}, ErrJobNotFound
		}
		return entities.Estimate{}, err
	}
	return e, nil
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

// AddItemFromPriceBook snapshots a catalog item onto the estimate. Qty zero
// defaults to one.
func (u *EstimateUseCase) AddItemFromPriceBook(ctx context.Context, estimateID, priceBookItemID string, qty decimal.Decimal) (entities.Estimate, error) {
	if qty.IsZero() {
		qty = decimal.NewFromInt(1)
	}
	if qty.IsNegative() {
		return entities.Estimate{}, ErrInvalidLineItemQty
	}

	e, err := u.mutableEstimate(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	item, err := u.priceBook.GetByID(ctx, strings.TrimSpace(priceBookItemID))
	if err != nil {
		return entities.Estimate{}, err
	}
	if item.ID == "" {
		return entities.Estimate{}, ErrPriceBookItemNotFound
	}

	e.Items = append(e.Items, entities.NewLineItemFromPriceBook(uuid.NewString(), item, qty))
	return u.saveRecalculated(ctx, e)
}

func (u *EstimateUseCase) UpdateItem(ctx context.Context, estimateID, itemID string, patch LineItemPatch) (entities.Estimate, error) {
	if patch.Qty != nil && !patch.Qty.IsPositive() {
		return entities.Estimate{}, ErrInvalidLineItemQty
	}
	if patch.UnitPrice != nil && patch.UnitPrice.IsNegative() {
		return entities.Estimate{}, ErrInvalidLineItemPrice
	}

	e, err := u.mutableEstimate(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	li, ok := e.ItemByID(itemID)
	if !ok {
		return entities.Estimate{}, ErrLineItemNotFound
	}
	if patch.Qty != nil {
		li.Qty = *patch.Qty
	}
	if patch.UnitPrice != nil {
		li.UnitPrice = *patch.UnitPrice
	}
	return u.saveRecalculated(ctx, e)
}

func (u *EstimateUseCase) RemoveItem(ctx context.Context, estimateID, itemID string) (entities.Estimate, error) {
	e, err := u.mutableEstimate(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !e.RemoveItem(itemID) {
		return entities.Estimate{}, ErrLineItemNotFound
	}
	return u.saveRecalculated(ctx, e)
}

// mutableEstimate loads the estimate and rejects the call when the parent
// job is locked.
func (u *EstimateUseCase) mutableEstimate(ctx context.Context, estimateID string) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	job, err := u.jobRepo.GetByID(ctx, e.JobID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if job.ID == "" {
		return entities.Estimate{}, ErrJobNotFound
	}
	if job.IsLocked() {
		return entities.Estimate{}, ErrEstimateLocked
	}
	return e, nil
}

func (u *EstimateUseCase) saveRecalculated(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.Recalculate()
	e.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, e)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return saved, err
}
