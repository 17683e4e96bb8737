package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"sfg_core/internal/adapter/http/handlers/mocks"
	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase"
)

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing first name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/api/v1/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewBufferString(`{"lastName":"Doe"}`))
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
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateCustomerInput{})).
			Return(entities.Customer{ID: "cust-1", FirstName: "Jane"}, nil)

		r := gin.New()
		r.POST("/api/v1/customers", h.CreateCustomer)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewBufferString(`{"firstName":"Jane","address":{"zip":"30301"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_GetCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "cust-9").Return(entities.Customer{}, usecase.ErrCustomerNotFound)

	r := gin.New()
	r.GET("/api/v1/customers/:id", h.GetCustomer)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/cust-9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCustomerHandler_DeleteCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	uc.EXPECT().Delete(gomock.Any(), "cust-1").Return(nil)

	r := gin.New()
	r.DELETE("/api/v1/customers/:id", h.DeleteCustomer)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/customers/cust-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
