package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"orders-api/internal/models"
	"orders-api/internal/repositories"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	tempDir, err := os.MkdirTemp("", "sqlite_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tempDir, "test.db")
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE orders (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			count INTEGER NOT NULL,
			status TEXT NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("Failed to create orders table: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tempDir)
	}

	return db, cleanup
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func TestOrderRepository_SaveAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, newTestLogger())
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
}

func TestOrderRepository_SaveOverwrites(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, newTestLogger())
	ctx := context.Background()

	order := models.NewOrder("example", 5)
	if err := repo.Save(ctx, order); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	order.Count = 7
	if err := repo.Save(ctx, order); err != nil {
		t.Fatalf("Save() overwrite failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}

	if retrieved.Count != 7 {
		t.Errorf("GetByID() Count = %d, want 7", retrieved.Count)
	}
}

func TestOrderRepository_GetNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, newTestLogger())

	_, err := repo.GetByID(context.Background(), "123e4567-e89b-12d3-a456-426614174000")
	if !errors.Is(err, repositories.ErrOrderNotFound) {
		t.Errorf("GetByID() error = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderRepository_Delete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(db, newTestLogger())
	ctx := context.Background()

	order := models.NewOrder("example", 5)
	if err := repo.Save(ctx, order); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if err := repo.Delete(ctx, order.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	_, err := repo.GetByID(ctx, order.ID)
	if !errors.Is(err, repositories.ErrOrderNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrOrderNotFound", err)
	}
}
