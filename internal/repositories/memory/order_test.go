package memory

import (
	"context"
	"errors"
	"testing"

	"orders-api/internal/models"
	"orders-api/internal/repositories"
)

func TestOrderRepository_RoundTrip(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	order := models.NewOrder("example", 5)
	if err := repo.Save(ctx, order); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}

	if *retrieved != *order {
		t.Errorf("GetByID() = %+v, want %+v", retrieved, order)
	}

	if err := repo.Delete(ctx, order.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if _, err := repo.GetByID(ctx, order.ID); !errors.Is(err, repositories.ErrOrderNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderRepository_CountsCalls(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	order := models.NewOrder("example", 1)
	repo.Save(ctx, order)
	repo.GetByID(ctx, order.ID)
	repo.Delete(ctx, order.ID)

	if repo.SaveCalls != 1 || repo.GetCalls != 1 || repo.DeleteCalls != 1 {
		t.Errorf("call counters = %d/%d/%d, want 1/1/1", repo.SaveCalls, repo.GetCalls, repo.DeleteCalls)
	}
}
