package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PriceBookItemType distinguishes sellable services from materials.
type PriceBookItemType string

const (
	PriceBookItemTypeService  PriceBookItemType = "service"
	PriceBookItemTypeMaterial PriceBookItemType = "material"
)

// PriceBookUnit is the billing unit for a price-book item.
type PriceBookUnit string

const (
	PriceBookUnitEach PriceBookUnit = "each"
	PriceBookUnitHour PriceBookUnit = "hour"
	PriceBookUnitSqFt PriceBookUnit = "sqft"
)

// PriceBookItem is a sellable catalog entry persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Category is a ">"-delimited path ("Handyman > Installation"); the tree is
// built from it at read time, see catalog.go. Archived items (IsActive=false)
// drop out of active-only listings but stay persisted so historical estimate
// lines keep their provenance.
type PriceBookItem struct {
	ID          string            `json:"id"`
	Type        PriceBookItemType `json:"type"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Unit        PriceBookUnit     `json:"unit"`
	Price       decimal.Decimal   `json:"price"`
	Cost        decimal.Decimal   `json:"cost"`
	Taxable     bool              `json:"taxable"`
	SKU         string            `json:"sku"`
	IsActive    bool              `json:"isActive"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ParsePriceBookItemType validates a type string.
func ParsePriceBookItemType(s string) (PriceBookItemType, bool) {
	switch PriceBookItemType(strings.TrimSpace(strings.ToLower(s))) {
	case PriceBookItemTypeService:
		return PriceBookItemTypeService, true
	case PriceBookItemTypeMaterial:
		return PriceBookItemTypeMaterial, true
	}
	return "", false
}

// ParsePriceBookUnit validates a unit string. The dashboard historically sent
// the short forms "ea" and "hr"; those are normalized here.
func ParsePriceBookUnit(s string) (PriceBookUnit, bool) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "each", "ea":
		return PriceBookUnitEach, true
	case "hour", "hr":
		return PriceBookUnitHour, true
	case "sqft":
		return PriceBookUnitSqFt, true
	}
	return "", false
}

// MatchesSearch reports whether the item matches a case-insensitive
// substring search over name and description.
func (i PriceBookItem) MatchesSearch(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(i.Name), q) ||
		strings.Contains(strings.ToLower(i.Description), q)
}

// PriceBookFilter narrows a price-book listing.
type PriceBookFilter struct {
	Type       PriceBookItemType
	ActiveOnly bool
	Search     string
	Category   string
}

// Matches applies every set filter field.
func (f PriceBookFilter) Matches(i PriceBookItem) bool {
	if f.Type != "" && i.Type != f.Type {
		return false
	}
	if f.ActiveOnly && !i.IsActive {
		return false
	}
	if f.Category != "" && i.Category != f.Category {
		return false
	}
	return i.MatchesSearch(f.Search)
}
