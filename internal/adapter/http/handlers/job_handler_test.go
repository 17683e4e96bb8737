package handlers

import (
	"bytes"
	"context"
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

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing customer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/api/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewBufferString(`{"title":"Faucet repair"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown customer maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Job{}, usecase.ErrCustomerNotFound)

		r := gin.New()
		r.POST("/api/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewBufferString(`{"customerId":"cust-9","title":"Faucet repair"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created with schedule pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateJobInput{
			CustomerID:   "cust-1",
			Title:        "Faucet repair",
			ScheduledDay: "2026-09-14",
			TimeBlock:    "8:00 AM - 10:00 AM",
		}).Return(entities.Job{ID: "job-1", Status: entities.JobStatusCreated}, nil)

		r := gin.New()
		r.POST("/api/v1/jobs", h.CreateJob)

		payload := `{"customerId":"cust-1","title":"Faucet repair","scheduledDay":"2026-09-14","timeBlock":"8:00 AM - 10:00 AM"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestJobHandler_UpdateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).
			Return(entities.Job{}, entities.ErrInvalidTransition)

		r := gin.New()
		r.PUT("/api/v1/jobs/:id", h.UpdateJob)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/jobs/job-1", bytes.NewBufferString(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("explicit empty day clears schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "job-1", gomock.AssignableToTypeOf(usecase.UpdateJobInput{})).DoAndReturn(
			func(_ context.Context, _ string, in usecase.UpdateJobInput) (entities.Job, error) {
				if !in.SetSchedule || in.ScheduledDay != "" {
					t.Fatalf("expected schedule clear, got %+v", in)
				}
				return entities.Job{ID: "job-1"}, nil
			},
		)

		r := gin.New()
		r.PUT("/api/v1/jobs/:id", h.UpdateJob)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/jobs/job-1", bytes.NewBufferString(`{"scheduledDay":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_GetBoard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc)

	uc.EXPECT().Board(gomock.Any()).Return([]usecase.JobBoardColumn{
		{Status: entities.JobStatusCreated, Jobs: []entities.Job{}},
		{Status: entities.JobStatusEstimate, Jobs: []entities.Job{{ID: "job-1", Status: entities.JobStatusEstimate}}},
	}, nil)

	r := gin.New()
	r.GET("/api/v1/jobs/board", h.GetBoard)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/board", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data struct {
			Columns []struct {
				Status string `json:"status"`
				Jobs   []struct {
					ID           string   `json:"id"`
					NextStatuses []string `json:"nextStatuses"`
				} `json:"jobs"`
			} `json:"columns"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Data.Columns) != 2 || body.Data.Columns[1].Jobs[0].ID != "job-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if len(body.Data.Columns[1].Jobs[0].NextStatuses) == 0 {
		t.Fatalf("expected next statuses on board jobs")
	}
}
