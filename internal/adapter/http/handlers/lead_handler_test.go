package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"sfg_core/internal/adapter/http/handlers/mocks"
	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase"
)

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/api/v1/intake", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/intake", bytes.NewBufferString(`{"email":"a@b.c"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateLeadInput{})).
			Return(entities.Lead{ID: "lead-1", Name: "Jane Doe", Status: entities.LeadStatusNew}, nil)

		r := gin.New()
		r.POST("/api/v1/intake", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/intake", bytes.NewBufferString(`{"name":"Jane Doe","zip":"30301"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestLeadHandler_ListLeads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	h := NewLeadHandler(uc)

	uc.EXPECT().List(gomock.Any(), usecase.LeadFilter{Status: "New", Query: "jane"}).
		Return([]entities.Lead{{ID: "lead-1", Name: "Jane Doe"}}, nil)

	r := gin.New()
	r.GET("/api/v1/intake", h.ListLeads)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/intake?status=New&search=jane", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data struct {
			Intakes []struct {
				ID string `json:"id"`
			} `json:"intakes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Data.Intakes) != 1 || body.Data.Intakes[0].ID != "lead-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestLeadHandler_ConvertLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Convert(gomock.Any(), "lead-1", gomock.Any()).Return(usecase.ConversionResult{
			Lead:     entities.Lead{ID: "lead-1", Status: entities.LeadStatusConverted},
			Customer: entities.Customer{ID: "cust-1"},
			Job:      entities.Job{ID: "job-1", Status: entities.JobStatusEstimate},
		}, nil)

		r := gin.New()
		r.POST("/api/v1/intake/:id/convert", h.ConvertLead)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/intake/lead-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body struct {
			Data struct {
				Intake   struct{ ID string }         `json:"intake"`
				Customer struct{ ID string }         `json:"customer"`
				Job      struct{ ID, Status string } `json:"job"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Data.Customer.ID != "cust-1" || body.Data.Job.ID != "job-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("double conversion maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Convert(gomock.Any(), "lead-1", gomock.Any()).
			Return(usecase.ConversionResult{}, usecase.ErrLeadAlreadyConverted)

		r := gin.New()
		r.POST("/api/v1/intake/:id/convert", h.ConvertLead)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/intake/lead-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown lead maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		uc.EXPECT().Convert(gomock.Any(), "nope", gomock.Any()).
			Return(usecase.ConversionResult{}, usecase.ErrLeadNotFound)

		r := gin.New()
		r.POST("/api/v1/intake/:id/convert", h.ConvertLead)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/intake/nope/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
