package response

import (
	"time"

	"github.com/shopspring/decimal"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase"
)

type PriceBookItemResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Taxable     bool            `json:"taxable"`
	SKU         string          `json:"sku"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func FromPriceBookItem(it entities.PriceBookItem) PriceBookItemResponse {
	return PriceBookItemResponse{
		ID:          it.ID,
		Type:        string(it.Type),
		Name:        it.Name,
		Category:    it.Category,
		Description: it.Description,
		Unit:        string(it.Unit),
		Price:       it.Price,
		Cost:        it.Cost,
		Taxable:     it.Taxable,
		SKU:         it.SKU,
		IsActive:    it.IsActive,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

type PriceBookListResponse struct {
	Items []PriceBookItemResponse `json:"items"`
}

func FromPriceBookItems(items []entities.PriceBookItem) PriceBookListResponse {
	out := PriceBookListResponse{Items: make([]PriceBookItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, FromPriceBookItem(it))
	}
	return out
}

// CatalogResponse is one resolved level of the category tree.
type CatalogResponse struct {
	Path       []string                `json:"path"`
	Categories []string                `json:"categories"`
	Items      []PriceBookItemResponse `json:"items"`
}

func FromCatalogView(v usecase.CatalogView) CatalogResponse {
	out := CatalogResponse{
		Path:       v.Path,
		Categories: v.Categories,
		Items:      make([]PriceBookItemResponse, 0, len(v.Items)),
	}
	if out.Path == nil {
		out.Path = []string{}
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	for _, it := range v.Items {
		out.Items = append(out.Items, FromPriceBookItem(it))
	}
	return out
}

// ImportReportResponse summarizes a CSV import run.
type ImportReportResponse struct {
	Created int                      `json:"created"`
	Updated int                      `json:"updated"`
	Skipped int                      `json:"skipped"`
	Errors  []usecase.ImportRowError `json:"errors"`
}

func FromImportReport(r usecase.ImportReport) ImportReportResponse {
	errs := r.Errors
	if errs == nil {
		errs = []usecase.ImportRowError{}
	}
	return ImportReportResponse{
		Created: r.Created,
		Updated: r.Updated,
		Skipped: r.Skipped,
		Errors:  errs,
	}
}
