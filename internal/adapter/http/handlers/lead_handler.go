package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	request "sfg_core/internal/adapter/http/dto/request"
	response "sfg_core/internal/adapter/http/dto/response"
	"sfg_core/internal/infrastructure/logging"
	"sfg_core/internal/usecase"
	"sfg_core/pkg"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid intake payload", http.StatusBadRequest)

// LeadHandler handles HTTP requests for intake leads, including the
// conversion workflow that books a lead into a customer/job pair.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromLead(lead)))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromLead(lead)))
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	filter := usecase.LeadFilter{
		Status: c.Query("status"),
		Query:  c.Query("search"),
	}

	leads, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromLeads(leads)))
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var payload request.LeadUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromLead(lead)))
}

// ConvertLead books a lead: it creates the customer and job, marks the lead
// converted and returns all three records. An empty body is accepted; the
// booking form's edits are optional.
func (h *LeadHandler) ConvertLead(c *gin.Context) {
	var payload request.LeadConvertRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	result, err := h.usecase.Convert(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	logging.L().WithFields(logrus.Fields{
		"intake_id":   id,
		"customer_id": result.Customer.ID,
		"job_id":      result.Job.ID,
	}).Info("intake converted")

	c.JSON(http.StatusCreated, response.OK(response.FromConversion(result)))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("INTAKE_NOT_FOUND", "Intake lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadAlreadyConverted):
		return pkg.NewDomainErrorSimple("INTAKE_ALREADY_CONVERTED", "Intake lead was already converted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
