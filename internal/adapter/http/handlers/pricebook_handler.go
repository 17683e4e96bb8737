package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	request "sfg_core/internal/adapter/http/dto/request"
	response "sfg_core/internal/adapter/http/dto/response"
	"sfg_core/internal/domain/entities"
	"sfg_core/internal/infrastructure/logging"
	"sfg_core/internal/usecase"
	"sfg_core/pkg"
)

var errInvalidPriceBookPayload = pkg.NewDomainErrorSimple("INVALID_PRICE_BOOK_INPUT", "Invalid price book payload", http.StatusBadRequest)

// PriceBookHandler handles HTTP requests for the service/material catalog.
type PriceBookHandler struct {
	usecase usecase.IPriceBookUseCase
}

func NewPriceBookHandler(uc usecase.IPriceBookUseCase) *PriceBookHandler {
	return &PriceBookHandler{usecase: uc}
}

// CreateItem adds a catalog entry.
func (h *PriceBookHandler) CreateItem(c *gin.Context) {
	var payload request.PriceBookItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPriceBookPayload.HTTPStatus, errInvalidPriceBookPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapPriceBookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromPriceBookItem(item)))
}

// GetItem fetches one catalog entry by id.
func (h *PriceBookHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPriceBookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromPriceBookItem(item)))
}

// ListItems returns catalog entries filtered by type, activity, category and
// free-text search.
func (h *PriceBookHandler) ListItems(c *gin.Context) {
	filter, err := priceBookFilterFromQuery(c)
	if err != nil {
		appErr := mapPriceBookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	filter.Category = c.Query("category")

	items, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapPriceBookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromPriceBookItems(items)))
}

// UpdateItem replaces a catalog entry's editable fields.
func (h *PriceBookHandler) UpdateItem(c *gin.Context) {
	var payload request.PriceBookItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPriceBookPayload.HTTPStatus, errInvalidPriceBookPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapPriceBookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromPriceBookItem(item)))
}

// BrowseCatalog resolves one level of the category tree. The path arrives as
// a single "A > B" string in the path query param.
func (h *PriceBookHandler) BrowseCatalog(c *gin.Context) {
	filter, err := priceBookFilterFromQuery(c)
	if err != nil {
		appErr := mapPriceBookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	path := entities.SplitCategoryPath(c.Query("path"))

	view, err := h.usecase.Browse(c.Request.Context(), filter, path)
	if err != nil {
		appErr := mapPriceBookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromCatalogView(view)))
}

// ImportCSV ingests a CSV upload into the catalog. The upload is a multipart
// form with a "file" part; "type" selects service or material rows.
func (h *PriceBookHandler) ImportCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_IMPORT_FILE", "Missing or unreadable CSV file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_IMPORT_FILE", "Missing or unreadable CSV file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.ImportCSV(c.Request.Context(), c.PostForm("type"), data)
	if err != nil {
		appErr := mapPriceBookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	logging.L().WithFields(logrus.Fields{
		"created": report.Created,
		"updated": report.Updated,
		"skipped": report.Skipped,
		"errors":  len(report.Errors),
	}).Info("price book import finished")

	c.JSON(http.StatusOK, response.OK(response.FromImportReport(report)))
}

// priceBookFilterFromQuery parses the shared list/browse query params. The
// type value is normalized through the same parser create/update use, so
// "?type=Service" filters services instead of silently matching nothing.
func priceBookFilterFromQuery(c *gin.Context) (entities.PriceBookFilter, error) {
	f := entities.PriceBookFilter{
		ActiveOnly: c.Query("active") == "true",
		Search:     c.Query("search"),
	}
	if raw := c.Query("type"); raw != "" {
		typ, ok := entities.ParsePriceBookItemType(raw)
		if !ok {
			return entities.PriceBookFilter{}, usecase.ErrInvalidPriceBookType
		}
		f.Type = typ
	}
	return f, nil
}

func mapPriceBookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPriceBookID),
		errors.Is(err, usecase.ErrInvalidPriceBookType),
		errors.Is(err, usecase.ErrInvalidPriceBookUnit),
		errors.Is(err, usecase.ErrInvalidPriceBookName),
		errors.Is(err, usecase.ErrInvalidPriceBookPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPriceBookItemNotFound):
		return pkg.NewDomainErrorSimple("PRICE_BOOK_ITEM_NOT_FOUND", "Price book item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
