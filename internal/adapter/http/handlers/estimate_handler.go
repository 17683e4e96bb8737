package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "sfg_core/internal/adapter/http/dto/request"
	response "sfg_core/internal/adapter/http/dto/response"
	"sfg_core/internal/usecase"
	"sfg_core/pkg"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for job estimates and their line
// items.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// GetOrCreateEstimate resolves the estimate for a job, creating an empty
// draft on first access. Repeat calls return the same estimate.
func (h *EstimateHandler) GetOrCreateEstimate(c *gin.Context) {
	var payload request.EstimateGetOrCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.GetOrCreateForJob(c.Request.Context(), payload.JobID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromEstimate(estimate)))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromEstimate(estimate)))
}

// AddItemFromPriceBook appends a line snapshotted from the price book.
func (h *EstimateHandler) AddItemFromPriceBook(c *gin.Context) {
	var payload request.EstimateAddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.AddItemFromPriceBook(c.Request.Context(), c.Param("id"), payload.PriceBookItemID, payload.Qty)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromEstimate(estimate)))
}

// UpdateItem patches a line's qty and/or unit price and recomputes totals.
func (h *EstimateHandler) UpdateItem(c *gin.Context) {
	var payload request.EstimateUpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("itemId"), payload.ToPatch())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromEstimate(estimate)))
}

// RemoveItem deletes a line and recomputes totals.
func (h *EstimateHandler) RemoveItem(c *gin.Context) {
	estimate, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromEstimate(estimate)))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidLineItemQty),
		errors.Is(err, usecase.ErrInvalidLineItemPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Estimate line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPriceBookItemNotFound):
		return pkg.NewDomainErrorSimple("PRICE_BOOK_ITEM_NOT_FOUND", "Price book item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateLocked):
		return pkg.NewDomainErrorSimple("ESTIMATE_LOCKED", "Estimate belongs to a closed job", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
