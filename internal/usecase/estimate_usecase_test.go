package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/havncube/billing-service/internal/domain/entities"
	mock_interfaces "github.com/havncube/billing-service/internal/usecase/interfaces/mocks"
)

func sqftItem() entities.LineItem {
	return entities.LineItem{
		Particulars: "Flooring Work - Living Room",
		Unit:        entities.UnitSQFT,
		LengthFeet:  12, LengthInches: 6,
		WidthFeet: 10,
		Rate:      150,
	}
}

func nosItem() entities.LineItem {
	return entities.LineItem{
		ID:          "item-1",
		Particulars: "Electrical Switches",
		Unit:        entities.UnitNOS,
		Quantity:    15,
		Rate:        250,
		Amount:      3750,
	}
}

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("no line items", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Estimate{ClientName: "Test"})
		if !errors.Is(err, ErrNoLineItems) {
			t.Fatalf("expected ErrNoLineItems, got %v", err)
		}
	})

	t.Run("assigns id, timestamps, number and reprices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().NextEstimateNumber(gomock.Any()).Return("HCE-0007", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" {
					t.Fatal("expected assigned id")
				}
				if e.CreatedAt.IsZero() || !e.UpdatedAt.Equal(e.CreatedAt) {
					t.Fatalf("expected equal fresh timestamps, got %v / %v", e.CreatedAt, e.UpdatedAt)
				}
				if e.EstimateNumber != "HCE-0007" {
					t.Fatalf("expected assigned number, got %q", e.EstimateNumber)
				}
				if e.LineItems[0].ID == "" {
					t.Fatal("expected minted line item id")
				}
				if e.LineItems[1].ID != "item-1" {
					t.Fatalf("caller-supplied line item id must persist, got %q", e.LineItems[1].ID)
				}
				if e.LineItems[0].Quantity != 125 || e.LineItems[0].Amount != 18750 {
					t.Fatalf("sqft item not derived: %+v", e.LineItems[0])
				}
				if e.Subtotal != 22500 || e.TotalAmount != 26550 {
					t.Fatalf("totals not recomputed: subtotal=%v total=%v", e.Subtotal, e.TotalAmount)
				}
				return e, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Estimate{
			ClientName: "Test Client",
			TaxRate:    18,
			LineItems:  []entities.LineItem{sqftItem(), nosItem()},
			// Caller-supplied totals must be discarded.
			Subtotal: 1, TaxAmount: 2, TotalAmount: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("keeps caller estimate number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.EstimateNumber != "HCE-CUSTOM" {
					t.Fatalf("expected caller number kept, got %q", e.EstimateNumber)
				}
				return e, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Estimate{
			ClientName:     "Test Client",
			EstimateNumber: "HCE-CUSTOM",
			LineItems:      []entities.LineItem{nosItem()},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("number sequence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().NextEstimateNumber(gomock.Any()).Return("", errors.New("db"))

		_, err := uc.Create(context.Background(), entities.Estimate{
			ClientName: "Test Client",
			LineItems:  []entities.LineItem{nosItem()},
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)

		e, err := uc.GetByID(context.Background(), " est-1 ")
		if err != nil || e.ID != "est-1" {
			t.Fatalf("got %+v, %v", e, err)
		}
	})
}

func TestEstimateUseCase_Update(t *testing.T) {
	existing := entities.Estimate{
		ID:             "est-1",
		EstimateNumber: "HCE-0001",
		CreatedAt:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, nil)

		_, err := uc.Update(context.Background(), "missing", entities.Estimate{
			LineItems: []entities.LineItem{nosItem()},
		})
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("preserves id and created_at, refreshes updated_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID != "est-1" {
					t.Fatalf("id replaced: %q", e.ID)
				}
				if !e.CreatedAt.Equal(existing.CreatedAt) {
					t.Fatalf("created_at replaced: %v", e.CreatedAt)
				}
				if !e.UpdatedAt.After(existing.UpdatedAt) {
					t.Fatalf("updated_at not refreshed: %v", e.UpdatedAt)
				}
				if e.LineItems[0].Quantity != 125 {
					t.Fatalf("repricing skipped on update: %+v", e.LineItems[0])
				}
				return e, nil
			},
		)

		_, err := uc.Update(context.Background(), "est-1", entities.Estimate{
			ID:         "spoofed-id",
			ClientName: "Updated Client",
			TaxRate:    18,
			CreatedAt:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			LineItems:  []entities.LineItem{sqftItem()},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, nil)

		_, err := uc.Update(context.Background(), "est-1", entities.Estimate{
			LineItems: []entities.LineItem{nosItem()},
		})
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "est-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "est-1"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "est-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_GeneratePDF(t *testing.T) {
	t.Run("unknown id fails before rendering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIEstimateRenderer(ctrl)
		uc := NewEstimateUseCase(repo, renderer)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, nil)
		// No renderer expectation: Render must not be called.

		_, _, err := uc.GeneratePDF(context.Background(), "missing")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("renderer failure wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIEstimateRenderer(ctrl)
		uc := NewEstimateUseCase(repo, renderer)

		e := entities.Estimate{ID: "est-1", EstimateNumber: "HCE-0001"}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		renderer.EXPECT().Render(e).Return(nil, errors.New("font missing"))

		_, _, err := uc.GeneratePDF(context.Background(), "est-1")
		if !errors.Is(err, ErrRendererFailed) {
			t.Fatalf("expected ErrRendererFailed, got %v", err)
		}
	})

	t.Run("filename uses estimate number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		renderer := mock_interfaces.NewMockIEstimateRenderer(ctrl)
		uc := NewEstimateUseCase(repo, renderer)

		e := entities.Estimate{ID: "est-1", EstimateNumber: "HCE-0042"}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		renderer.EXPECT().Render(e).Return([]byte("%PDF-1.3"), nil)

		filename, doc, err := uc.GeneratePDF(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filename != "Estimate_HCE-0042.pdf" {
			t.Fatalf("filename = %q", filename)
		}
		if len(doc) == 0 {
			t.Fatal("expected document bytes")
		}
	})
}
