package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/infrastructure/logging"
	"sfg_core/internal/usecase/interfaces"
)

var (
	ErrLeadNotFound         = errors.New("lead not found")
	ErrInvalidLeadID        = errors.New("invalid lead id")
	ErrInvalidLeadStatus    = errors.New("invalid lead status")
	ErrLeadAlreadyConverted = errors.New("lead already converted")
)

// CreateLeadInput is the create payload after DTO resolution.
type CreateLeadInput struct {
	Name          string
	Email         string
	Phone         string
	Zip           string
	Address       entities.Address
	Message       string
	Source        string
	ContactMethod string
}

// UpdateLeadInput patches a lead; nil pointers are left untouched.
type UpdateLeadInput struct {
	Status        *string
	Name          *string
	Email         *string
	Phone         *string
	Zip           *string
	Address       *entities.Address
	Message       *string
	ContactMethod *string
}

// ConvertLeadInput carries optional edits made in the booking form at
// conversion time.
type ConvertLeadInput struct {
	ScheduledDay  string
	TimeBlock     string
	Address       *entities.Address
	ContactMethod *string
}

// LeadFilter narrows List.
type LeadFilter struct {
	Status string
	Query  string
}

// ConversionResult is the customer/job pair produced from a lead.
type ConversionResult struct {
	Lead     entities.Lead     `json:"intake"`
	Customer entities.Customer `json:"customer"`
	Job      entities.Job      `json:"job"`
}

// ILeadUseCase exposes intake CRUD and the lead-to-customer-to-job
// conversion workflow.
type ILeadUseCase interface {
	Create(ctx context.Context, in CreateLeadInput) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context, f LeadFilter) ([]entities.Lead, error)
	Update(ctx context.Context, id string, in UpdateLeadInput) (entities.Lead, error)
	Convert(ctx context.Context, id string, in ConvertLeadInput) (ConversionResult, error)
}

type LeadUseCase struct {
	repo      interfaces.ILeadRepository
	customers interfaces.ICustomerRepository
	jobs      interfaces.IJobRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(
	repo interfaces.ILeadRepository,
	customers interfaces.ICustomerRepository,
	jobs interfaces.IJobRepository,
) *LeadUseCase {
	return &LeadUseCase{repo: repo, customers: customers, jobs: jobs}
}

func (u *LeadUseCase) Create(ctx context.Context, in CreateLeadInput) (entities.Lead, error) {
	now := time.Now().UTC()
	l := entities.Lead{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Zip:           strings.TrimSpace(in.Zip),
		Address:       in.Address,
		Message:       in.Message,
		Status:        entities.LeadStatusNew,
		Source:        in.Source,
		ContactMethod: in.ContactMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, l)
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) List(ctx context.Context, f LeadFilter) ([]entities.Lead, error) {
	leads, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var status entities.LeadStatus
	if f.Status != "" {
		parsed, ok := entities.ParseLeadStatus(f.Status)
		if !ok {
			return nil, ErrInvalidLeadStatus
		}
		status = parsed
	}

	out := make([]entities.Lead, 0, len(leads))
	for _, l := range leads {
		if status != "" && l.Status != status {
			continue
		}
		if !l.MatchesSearch(f.Query) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *LeadUseCase) Update(ctx context.Context, id string, in UpdateLeadInput) (entities.Lead, error) {
	l, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	if in.Status != nil {
		status, ok := entities.ParseLeadStatus(*in.Status)
		if !ok {
			return entities.Lead{}, ErrInvalidLeadStatus
		}
		l.Status = status
	}
	if in.Name != nil {
		l.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		l.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		l.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Zip != nil {
		l.Zip = strings.TrimSpace(*in.Zip)
	}
	if in.Address != nil {
		l.Address = *in.Address
	}
	if in.Message != nil {
		l.Message = *in.Message
	}
	if in.ContactMethod != nil {
		l.ContactMethod = *in.ContactMethod
	}

	l.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, l)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return entities.Lead{}, ErrLeadNotFound
	}
	return saved, err
}

// Convert runs the booking workflow: split the lead's name into a customer,
// derive a job title from the message, create the job in estimate status and
// stamp the lead as converted. A lead converts at most once; the final stamp
// is condition-guarded so concurrent conversions cannot both succeed.
func (u *LeadUseCase) Convert(ctx context.Context, id string, in ConvertLeadInput) (ConversionResult, error) {
	l, err := u.GetByID(ctx, id)
	if err != nil {
		return ConversionResult{}, err
	}
	if l.IsConverted() {
		return ConversionResult{}, ErrLeadAlreadyConverted
	}

	// Booking-form edits land on the lead before the split/copy.
	if in.Address != nil {
		l.Address = *in.Address
	}
	if in.ContactMethod != nil {
		l.ContactMethod = *in.ContactMethod
	}

	firstName, lastName := l.SplitName()
	now := time.Now().UTC()
	customer, err := u.customers.Create(ctx, entities.Customer{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     l.Email,
		Phone:     l.Phone,
		Address:   leadAddress(l),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return ConversionResult{}, err
	}

	scheduled, err := entities.CombineSchedule(in.ScheduledDay, in.TimeBlock)
	if err != nil {
		u.compensateCustomer(ctx, customer.ID)
		return ConversionResult{}, err
	}

	job, err := u.jobs.Create(ctx, entities.Job{
		ID:            uuid.NewString(),
		CustomerID:    customer.ID,
		Title:         l.JobTitle(),
		Status:        entities.JobStatusEstimate,
		Notes:         l.Message,
		ScheduledDate: scheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		u.compensateCustomer(ctx, customer.ID)
		return ConversionResult{}, err
	}

	if in.Address != nil || in.ContactMethod != nil {
		if _, err := u.repo.Save(ctx, l); err != nil {
			logging.L().WithError(err).WithField("lead_id", l.ID).
				Warn("failed to persist booking edits before conversion stamp")
		}
	}

	stamped, err := u.repo.MarkConverted(ctx, l.ID, customer.ID)
	if err != nil {
		return ConversionResult{}, err
	}
	if stamped.ID == "" {
		// Lost the race: another conversion stamped first. The pair created
		// here is now orphaned; report and fail loudly.
		logging.L().WithField("lead_id", l.ID).WithField("customer_id", customer.ID).
			Warn("lead converted concurrently; orphaned customer/job pair created")
		return ConversionResult{}, ErrLeadAlreadyConverted
	}

	return ConversionResult{Lead: stamped, Customer: customer, Job: job}, nil
}

// compensateCustomer is the best-effort cleanup for a conversion that failed
// after the customer write.
func (u *LeadUseCase) compensateCustomer(ctx context.Context, customerID string) {
	if err := u.customers.Delete(ctx, customerID); err != nil {
		logging.L().WithError(err).WithField("customer_id", customerID).
			Warn("failed to roll back customer after conversion failure")
	}
}

func leadAddress(l entities.Lead) entities.Address {
	addr := l.Address
	if addr.PostalCode == "" {
		addr.PostalCode = l.Zip
	}
	return addr
}
