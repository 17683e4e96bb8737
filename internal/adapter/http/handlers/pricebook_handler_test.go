package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"sfg_core/internal/adapter/http/handlers/mocks"
	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase"
)

func TestPriceBookHandler_CreateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid unit maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceBookUseCase(ctrl)
		h := NewPriceBookHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.PriceBookItem{}, usecase.ErrInvalidPriceBookUnit)

		r := gin.New()
		r.POST("/api/v1/price-book", h.CreateItem)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/price-book", bytes.NewBufferString(`{"type":"service","name":"x","unit":"gallon"}`))
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
		uc := mocks.NewMockIPriceBookUseCase(ctrl)
		h := NewPriceBookHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.PriceBookItem{ID: "pb-1", Name: "Faucet install"}, nil)

		r := gin.New()
		r.POST("/api/v1/price-book", h.CreateItem)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/price-book", bytes.NewBufferString(`{"type":"service","name":"Faucet install","unit":"each","price":"150"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPriceBookHandler_ListItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("type filter is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceBookUseCase(ctrl)
		h := NewPriceBookHandler(uc)

		uc.EXPECT().List(gomock.Any(), entities.PriceBookFilter{Type: entities.PriceBookItemTypeService, ActiveOnly: true, Search: "faucet"}).
			Return([]entities.PriceBookItem{{ID: "pb-1"}}, nil)

		r := gin.New()
		r.GET("/api/v1/price-book", h.ListItems)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/price-book?type=Service&active=true&search=faucet", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Data struct {
				Items []struct {
					ID string `json:"id"`
				} `json:"items"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Data.Items) != 1 || body.Data.Items[0].ID != "pb-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown type maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceBookUseCase(ctrl)
		h := NewPriceBookHandler(uc)

		r := gin.New()
		r.GET("/api/v1/price-book", h.ListItems)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/price-book?type=labor", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPriceBookHandler_BrowseCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPriceBookUseCase(ctrl)
	h := NewPriceBookHandler(uc)

	uc.EXPECT().Browse(gomock.Any(), gomock.Any(), []string{"Plumbing", "Drains"}).
		Return(usecase.CatalogView{
			Path:       []string{"Plumbing", "Drains"},
			Categories: []string{},
			Items:      []entities.PriceBookItem{{ID: "pb-1"}},
		}, nil)

	r := gin.New()
	r.GET("/api/v1/price-book/catalog", h.BrowseCatalog)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/price-book/catalog?path=Plumbing+%3E+Drains", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPriceBookHandler_ImportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceBookUseCase(ctrl)
		h := NewPriceBookHandler(uc)

		r := gin.New()
		r.POST("/api/v1/price-book/import", h.ImportCSV)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/price-book/import", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("uploads and reports", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceBookUseCase(ctrl)
		h := NewPriceBookHandler(uc)

		csvData := "name,price\nFaucet install,150\n"
		uc.EXPECT().ImportCSV(gomock.Any(), "service", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, data []byte) (usecase.ImportReport, error) {
				if string(data) != csvData {
					t.Fatalf("unexpected upload: %q", string(data))
				}
				return usecase.ImportReport{Created: 1, Errors: []usecase.ImportRowError{}}, nil
			},
		)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if err := mw.WriteField("type", "service"); err != nil {
			t.Fatalf("write field: %v", err)
		}
		fw, err := mw.CreateFormFile("file", "pricebook.csv")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(csvData)); err != nil {
			t.Fatalf("write file: %v", err)
		}
		mw.Close()

		r := gin.New()
		r.POST("/api/v1/price-book/import", h.ImportCSV)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/price-book/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Data struct {
				Created int `json:"created"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Data.Created != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
