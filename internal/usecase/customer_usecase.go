package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidCustomerName = errors.New("customer first name is required")
)

// CreateCustomerInput is the create payload after DTO resolution.
type CreateCustomerInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   entities.Address
}

// UpdateCustomerInput patches contact fields; identity (the id) never
// changes. Nil pointers are left untouched.
type UpdateCustomerInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Address   *entities.Address
}

// ICustomerUseCase exposes customer CRUD.
type ICustomerUseCase interface {
	Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, search string) ([]entities.Customer, error)
	Update(ctx context.Context, id string, in UpdateCustomerInput) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error) {
	first := strings.TrimSpace(in.FirstName)
	if first == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	now := time.Now().UTC()
	c := entities.Customer{
		ID:        uuid.NewString(),
		FirstName: first,
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Email:     strings.TrimSpace(in.Email),
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context, search string) ([]entities.Customer, error) {
	customers, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Customer, 0, len(customers))
	for _, c := range customers {
		if c.MatchesSearch(search) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, in UpdateCustomerInput) (entities.Customer, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	if in.FirstName != nil {
		first := strings.TrimSpace(*in.FirstName)
		if first == "" {
			return entities.Customer{}, ErrInvalidCustomerName
		}
		c.FirstName = first
	}
	if in.LastName != nil {
		c.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	if in.Address != nil {
		c.Address = *in.Address
	}

	c.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, c)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return saved, err
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
