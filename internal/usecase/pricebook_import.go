package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"sfg_core/internal/domain/entities"
)

// ImportRowError reports one rejected CSV row. Row numbering includes the
// header, matching what the user sees in a spreadsheet.
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportReport summarizes a price-book CSV import.
type ImportReport struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors"`
}

// Recognized CSV columns. Header matching is case-insensitive; unknown
// columns are ignored so exports from other tools round-trip.
var importColumns = []string{"name", "category", "description", "unit", "price", "cost", "taxable", "sku"}

// ImportCSV upserts catalog entries from an uploaded CSV. Rows are keyed by
// (name, category) — the sku alone is not unique across suppliers. Rows
// identical to the stored item are counted as skipped.
func (u *PriceBookUseCase) ImportCSV(ctx context.Context, itemType string, data []byte) (ImportReport, error) {
	typ, ok := entities.ParsePriceBookItemType(itemType)
	if !ok {
		return ImportReport{}, ErrInvalidPriceBookType
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	// A ragged row should land in the per-row error report, not fail the file.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return ImportReport{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) < 2 {
		return ImportReport{}, fmt.Errorf("file must contain a header row and at least one data row")
	}

	colIdx := mapImportHeaders(rows[0])
	if _, ok := colIdx["name"]; !ok {
		return ImportReport{}, fmt.Errorf("missing required column: name")
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return ImportReport{}, err
	}
	byKey := map[string]entities.PriceBookItem{}
	for _, it := range existing {
		byKey[importKey(it.Name, it.Category)] = it
	}

	report := ImportReport{Errors: []ImportRowError{}}
	for i, row := range rows[1:] {
		rowNum := i + 2

		in, err := importRowInput(typ, row, colIdx)
		if err != nil {
			report.Errors = append(report.Errors, ImportRowError{Row: rowNum, Error: err.Error()})
			continue
		}

		resolved, err := resolveItemInput(in)
		if err != nil {
			report.Errors = append(report.Errors, ImportRowError{Row: rowNum, Error: err.Error()})
			continue
		}

		key := importKey(resolved.Name, resolved.Category)
		if prev, ok := byKey[key]; ok {
			if importEqual(prev, resolved) {
				report.Skipped++
				continue
			}
			resolved.ID = prev.ID
			resolved.IsActive = prev.IsActive
			resolved.CreatedAt = prev.CreatedAt
			resolved.UpdatedAt = time.Now().UTC()
			saved, err := u.repo.Save(ctx, resolved)
			if err != nil {
				report.Errors = append(report.Errors, ImportRowError{Row: rowNum, Error: err.Error()})
				continue
			}
			byKey[key] = saved
			report.Updated++
			continue
		}

		now := time.Now().UTC()
		resolved.ID = uuid.NewString()
		resolved.CreatedAt = now
		resolved.UpdatedAt = now
		created, err := u.repo.Create(ctx, resolved)
		if err != nil {
			report.Errors = append(report.Errors, ImportRowError{Row: rowNum, Error: err.Error()})
			continue
		}
		byKey[key] = created
		report.Created++
	}

	return report, nil
}

func mapImportHeaders(header []string) map[string]int {
	idx := map[string]int{}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, col := range importColumns {
			if h == col {
				idx[col] = i
			}
		}
	}
	return idx
}

func importRowInput(typ entities.PriceBookItemType, row []string, colIdx map[string]int) (UpsertPriceBookItemInput, error) {
	cell := func(col string) string {
		i, ok := colIdx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	price, err := parseImportDecimal(cell("price"))
	if err != nil {
		return UpsertPriceBookItemInput{}, fmt.Errorf("invalid price %q", cell("price"))
	}
	cost, err := parseImportDecimal(cell("cost"))
	if err != nil {
		return UpsertPriceBookItemInput{}, fmt.Errorf("invalid cost %q", cell("cost"))
	}

	taxable := false
	if v := cell("taxable"); v != "" {
		taxable, err = strconv.ParseBool(v)
		if err != nil {
			return UpsertPriceBookItemInput{}, fmt.Errorf("invalid taxable %q", v)
		}
	}

	unit := cell("unit")
	if unit == "" {
		unit = string(entities.PriceBookUnitEach)
	}

	return UpsertPriceBookItemInput{
		Type:        string(typ),
		Name:        cell("name"),
		Category:    cell("category"),
		Description: cell("description"),
		Unit:        unit,
		Price:       price,
		Cost:        cost,
		Taxable:     taxable,
		SKU:         cell("sku"),
	}, nil
}

func parseImportDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.TrimPrefix(s, "$")
	return decimal.NewFromString(s)
}

func importKey(name, category string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(category))
}

func importEqual(a, b entities.PriceBookItem) bool {
	return a.Description == b.Description &&
		a.Unit == b.Unit &&
		a.Price.Equal(b.Price) &&
		a.Cost.Equal(b.Cost) &&
		a.Taxable == b.Taxable &&
		a.SKU == b.SKU
}
