package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase/interfaces"
	mock_interfaces "sfg_core/internal/usecase/interfaces/mocks"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEstimateUseCase_GetOrCreateForJob(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, err := uc.GetOrCreateForJob(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateUseCase(nil, jobRepo, nil)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.GetOrCreateForJob(context.Background(), "job-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("returns linked estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, nil)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", EstimateID: "est-1"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", JobID: "job-1"}, nil)

		e, err := uc.GetOrCreateForJob(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID != "est-1" {
			t.Fatalf("expected est-1, got %s", e.ID)
		}
	})

	t.Run("creates draft and links on first access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, nil)

		job := entities.Job{ID: "job-1", CustomerID: "cust-1", Title: "Water heater swap"}
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Estimate{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.JobID != "job-1" || e.CustomerID != "cust-1" {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Status != entities.EstimateStatusDraft || len(e.Items) != 0 {
					t.Fatalf("expected empty draft, got %+v", e)
				}
				if !e.Totals.Total.IsZero() {
					t.Fatalf("expected zero totals, got %+v", e.Totals)
				}
				return e, nil
			},
		)
		jobRepo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.EstimateID == "" {
					t.Fatalf("expected job link to be set")
				}
				return j, nil
			},
		)

		e, err := uc.GetOrCreateForJob(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Title != "Water heater swap" {
			t.Fatalf("expected title copied from job, got %q", e.Title)
		}
	})

	t.Run("relinks existing estimate found by job id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, nil)

		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		repo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(entities.Estimate{ID: "est-9", JobID: "job-1"}, nil)
		jobRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.EstimateID != "est-9" {
					t.Fatalf("expected relink to est-9, got %q", j.EstimateID)
				}
				return j, nil
			},
		)

		e, err := uc.GetOrCreateForJob(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID != "est-9" {
			t.Fatalf("expected est-9, got %s", e.ID)
		}
	})
}

func TestEstimateUseCase_AddItemFromPriceBook(t *testing.T) {
	baseEstimate := entities.Estimate{ID: "est-1", JobID: "job-1", TaxRate: dec("0.08")}
	baseJob := entities.Job{ID: "job-1", Status: entities.JobStatusEstimate}

	t.Run("negative qty", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		_, err := uc.AddItemFromPriceBook(context.Background(), "est-1", "pb-1", dec("-1"))
		if !errors.Is(err, ErrInvalidLineItemQty) {
			t.Fatalf("expected ErrInvalidLineItemQty, got %v", err)
		}
	})

	t.Run("locked job rejects mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(baseEstimate, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusCompleted}, nil)

		_, err := uc.AddItemFromPriceBook(context.Background(), "est-1", "pb-1", dec("1"))
		if !errors.Is(err, ErrEstimateLocked) {
			t.Fatalf("expected ErrEstimateLocked, got %v", err)
		}
	})

	t.Run("unknown price book item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		priceBook := mock_interfaces.NewMockIPriceBookRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, priceBook)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(baseEstimate, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(baseJob, nil)
		priceBook.EXPECT().GetByID(gomock.Any(), "pb-missing").Return(entities.PriceBookItem{}, nil)

		_, err := uc.AddItemFromPriceBook(context.Background(), "est-1", "pb-missing", dec("1"))
		if !errors.Is(err, ErrPriceBookItemNotFound) {
			t.Fatalf("expected ErrPriceBookItemNotFound, got %v", err)
		}
	})

	t.Run("snapshots item and recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		priceBook := mock_interfaces.NewMockIPriceBookRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, priceBook)

		item := entities.PriceBookItem{
			ID:      "pb-1",
			Type:    entities.PriceBookItemTypeService,
			Name:    "Faucet install",
			Unit:    entities.PriceBookUnitEach,
			Price:   dec("150"),
			Taxable: true,
		}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(baseEstimate, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(baseJob, nil)
		priceBook.EXPECT().GetByID(gomock.Any(), "pb-1").Return(item, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if len(e.Items) != 1 {
					t.Fatalf("expected one line, got %d", len(e.Items))
				}
				li := e.Items[0]
				if li.PriceBookItemID != "pb-1" || li.Name != "Faucet install" || !li.Qty.Equal(dec("2")) {
					t.Fatalf("unexpected line: %+v", li)
				}
				// 2 x 150 = 300 subtotal, 8% tax on taxable lines.
				if !e.Totals.Subtotal.Equal(dec("300")) || !e.Totals.Tax.Equal(dec("24")) || !e.Totals.Total.Equal(dec("324")) {
					t.Fatalf("unexpected totals: %+v", e.Totals)
				}
				return e, nil
			},
		)

		if _, err := uc.AddItemFromPriceBook(context.Background(), "est-1", "pb-1", dec("2")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("qty zero defaults to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		priceBook := mock_interfaces.NewMockIPriceBookRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, priceBook)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(baseEstimate, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(baseJob, nil)
		priceBook.EXPECT().GetByID(gomock.Any(), "pb-1").Return(entities.PriceBookItem{ID: "pb-1", Name: "x", Price: dec("10")}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if !e.Items[0].Qty.Equal(dec("1")) {
					t.Fatalf("expected qty 1, got %s", e.Items[0].Qty)
				}
				return e, nil
			},
		)

		if _, err := uc.AddItemFromPriceBook(context.Background(), "est-1", "pb-1", decimal.Zero); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_UpdateItem(t *testing.T) {
	estimate := entities.Estimate{
		ID:    "est-1",
		JobID: "job-1",
		Items: []entities.LineItem{
			{ID: "li-1", Name: "Faucet install", Qty: dec("1"), UnitPrice: dec("150"), Taxable: true},
		},
		TaxRate: dec("0.1"),
	}
	job := entities.Job{ID: "job-1", Status: entities.JobStatusEstimate}

	t.Run("zero qty rejected", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		qty := decimal.Zero
		_, err := uc.UpdateItem(context.Background(), "est-1", "li-1", LineItemPatch{Qty: &qty})
		if !errors.Is(err, ErrInvalidLineItemQty) {
			t.Fatalf("expected ErrInvalidLineItemQty, got %v", err)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil)
		price := dec("-5")
		_, err := uc.UpdateItem(context.Background(), "est-1", "li-1", LineItemPatch{UnitPrice: &price})
		if !errors.Is(err, ErrInvalidLineItemPrice) {
			t.Fatalf("expected ErrInvalidLineItemPrice, got %v", err)
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(estimate, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.UpdateItem(context.Background(), "est-1", "li-missing", LineItemPatch{})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("patch recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(estimate, nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if !e.Items[0].Qty.Equal(dec("3")) {
					t.Fatalf("expected qty 3, got %s", e.Items[0].Qty)
				}
				if !e.Totals.Subtotal.Equal(dec("450")) || !e.Totals.Total.Equal(dec("495")) {
					t.Fatalf("unexpected totals: %+v", e.Totals)
				}
				return e, nil
			},
		)

		qty := dec("3")
		if _, err := uc.UpdateItem(context.Background(), "est-1", "li-1", LineItemPatch{Qty: &qty}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_RemoveItem(t *testing.T) {
	// Each sub-test gets its own fixture: Estimate.RemoveItem edits the
	// Items slice in place, so a shared backing array would leak state
	// between sub-tests.
	newEstimate := func() entities.Estimate {
		return entities.Estimate{
			ID:    "est-1",
			JobID: "job-1",
			Items: []entities.LineItem{
				{ID: "li-1", Qty: dec("1"), UnitPrice: dec("100")},
				{ID: "li-2", Qty: dec("1"), UnitPrice: dec("50")},
			},
		}
	}
	job := entities.Job{ID: "job-1", Status: entities.JobStatusEstimate}

	t.Run("unknown line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(newEstimate(), nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.RemoveItem(context.Background(), "est-1", "nope")
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("removes and recomputes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(newEstimate(), nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if len(e.Items) != 1 || e.Items[0].ID != "li-2" {
					t.Fatalf("expected only li-2, got %+v", e.Items)
				}
				if !e.Totals.Subtotal.Equal(dec("50")) {
					t.Fatalf("unexpected subtotal: %s", e.Totals.Subtotal)
				}
				return e, nil
			},
		)

		if _, err := uc.RemoveItem(context.Background(), "est-1", "li-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("concurrently deleted estimate surfaces not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewEstimateUseCase(repo, jobRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(newEstimate(), nil)
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(entities.Estimate{}, interfaces.ErrRecordNotFound)

		_, err := uc.RemoveItem(context.Background(), "est-1", "li-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}
