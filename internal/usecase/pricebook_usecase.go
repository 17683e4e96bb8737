package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase/interfaces"
)

var (
	ErrInvalidPriceBookID    = errors.New("invalid price book item id")
	ErrInvalidPriceBookType  = errors.New("invalid price book item type")
	ErrInvalidPriceBookUnit  = errors.New("invalid price book unit")
	ErrInvalidPriceBookName  = errors.New("price book item name is required")
	ErrInvalidPriceBookPrice = errors.New("price must not be negative")
)

// UpsertPriceBookItemInput covers create and full update of a catalog entry.
type UpsertPriceBookItemInput struct {
	Type        string
	Name        string
	Category    string
	Description string
	Unit        string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Taxable     bool
	SKU         string
	IsActive    *bool
}

// CatalogView is one tree level resolved for a category path: the child
// category names plus the items filed at that level.
type CatalogView struct {
	Path       []string                 `json:"path"`
	Categories []string                 `json:"categories"`
	Items      []entities.PriceBookItem `json:"items"`
}

// IPriceBookUseCase exposes the price-book catalog.
type IPriceBookUseCase interface {
	Create(ctx context.Context, in UpsertPriceBookItemInput) (entities.PriceBookItem, error)
	GetByID(ctx context.Context, id string) (entities.PriceBookItem, error)
	List(ctx context.Context, f entities.PriceBookFilter) ([]entities.PriceBookItem, error)
	Update(ctx context.Context, id string, in UpsertPriceBookItemInput) (entities.PriceBookItem, error)
	Browse(ctx context.Context, f entities.PriceBookFilter, path []string) (CatalogView, error)
	ImportCSV(ctx context.Context, itemType string, data []byte) (ImportReport, error)
}

type PriceBookUseCase struct {
	repo interfaces.IPriceBookRepository
}

var _ IPriceBookUseCase = (*PriceBookUseCase)(nil)

func NewPriceBookUseCase(repo interfaces.IPriceBookRepository) *PriceBookUseCase {
	return &PriceBookUseCase{repo: repo}
}

func (u *PriceBookUseCase) Create(ctx context.Context, in UpsertPriceBookItemInput) (entities.PriceBookItem, error) {
	item, err := resolveItemInput(in)
	if err != nil {
		return entities.PriceBookItem{}, err
	}

	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now
	return u.repo.Create(ctx, item)
}

func (u *PriceBookUseCase) GetByID(ctx context.Context, id string) (entities.PriceBookItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PriceBookItem{}, ErrInvalidPriceBookID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PriceBookItem{}, err
	}
	if item.ID == "" {
		return entities.PriceBookItem{}, ErrPriceBookItemNotFound
	}
	return item, nil
}

func (u *PriceBookUseCase) List(ctx context.Context, f entities.PriceBookFilter) ([]entities.PriceBookItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.PriceBookItem, 0, len(items))
	for _, it := range items {
		if f.Matches(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Update replaces the editable fields. Archiving is an update with
// IsActive=false; archived items stay readable for historical estimates.
func (u *PriceBookUseCase) Update(ctx context.Context, id string, in UpsertPriceBookItemInput) (entities.PriceBookItem, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PriceBookItem{}, err
	}

	item, err := resolveItemInput(in)
	if err != nil {
		return entities.PriceBookItem{}, err
	}

	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, item)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return entities.PriceBookItem{}, ErrPriceBookItemNotFound
	}
	return saved, err
}

// Browse resolves one level of the category tree for the filtered snapshot.
// An unknown path degrades to an empty view.
func (u *PriceBookUseCase) Browse(ctx context.Context, f entities.PriceBookFilter, path []string) (CatalogView, error) {
	items, err := u.List(ctx, f)
	if err != nil {
		return CatalogView{}, err
	}

	node := entities.BuildCatalogTree(items).Navigate(path)
	view := CatalogView{
		Path:       path,
		Categories: node.ChildNames(),
		Items:      node.Items,
	}
	if view.Path == nil {
		view.Path = []string{}
	}
	if view.Items == nil {
		view.Items = []entities.PriceBookItem{}
	}
	return view, nil
}

func resolveItemInput(in UpsertPriceBookItemInput) (entities.PriceBookItem, error) {
	typ, ok := entities.ParsePriceBookItemType(in.Type)
	if !ok {
		return entities.PriceBookItem{}, ErrInvalidPriceBookType
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.PriceBookItem{}, ErrInvalidPriceBookName
	}
	unit, ok := entities.ParsePriceBookUnit(in.Unit)
	if !ok {
		return entities.PriceBookItem{}, ErrInvalidPriceBookUnit
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() {
		return entities.PriceBookItem{}, ErrInvalidPriceBookPrice
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "General"
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	return entities.PriceBookItem{
		Type:        typ,
		Name:        name,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		Unit:        unit,
		Price:       in.Price,
		Cost:        in.Cost,
		Taxable:     in.Taxable,
		SKU:         strings.TrimSpace(in.SKU),
		IsActive:    active,
	}, nil
}
