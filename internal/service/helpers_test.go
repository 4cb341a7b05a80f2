package service

import (
	"testing"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/repositories"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

// newTestCatalogRepo builds a catalog with one available and one
// unavailable item.
func newTestCatalogRepo(t *testing.T) *repositories.MemoryCatalogRepository {
	t.Helper()
	repo := repositories.NewMemoryCatalogRepository()

	snacks := &models.Category{Name: "Snacks", Icon: "🍿"}
	if err := repo.CreateCategory(snacks); err != nil {
		t.Fatalf("create category: %v", err)
	}

	items := []*models.MenuItem{
		{CategoryID: snacks.ID, Name: "Samosa", Description: "Crispy pastry", Price: 15, IsAvailable: true},
		{CategoryID: snacks.ID, Name: "Vada Pav", Description: "Potato fritter", Price: 20, IsAvailable: false},
	}
	for _, item := range items {
		if err := repo.CreateItem(item); err != nil {
			t.Fatalf("create item: %v", err)
		}
	}
	return repo
}
