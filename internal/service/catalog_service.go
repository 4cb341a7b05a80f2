package service

import (
	"fmt"
	"strings"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/repositories"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// CatalogServiceInterface exposes the menu read/search contract plus the
// single admin mutation.
type CatalogServiceInterface interface {
	ListCategories() ([]*models.Category, error)
	ListAvailableItems() ([]*models.MenuItem, error)
	ListAvailableItemsByCategory(categoryID int) ([]*models.MenuItem, error)
	SearchItems(query string) ([]*models.MenuItem, error)
	SetItemAvailability(actor models.Role, itemID int, available bool) (*models.MenuItem, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepositoryInterface
	logger      *logger.Logger
}

func NewCatalogService(catalogRepo repositories.CatalogRepositoryInterface, logger *logger.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger.WithComponent("catalog_service"),
	}
}

// ListCategories returns all categories with their items attached.
func (s *CatalogService) ListCategories() ([]*models.Category, error) {
	s.logger.Debug("Fetching categories")

	categories, err := s.catalogRepo.ListCategories()
	if err != nil {
		s.logger.Error("Failed to fetch categories", "error", err)
		return nil, err
	}

	s.logger.Info("Fetched categories", "count", len(categories))
	return categories, nil
}

// ListAvailableItems returns every item currently orderable.
func (s *CatalogService) ListAvailableItems() ([]*models.MenuItem, error) {
	s.logger.Debug("Fetching available items")

	items, err := s.catalogRepo.ListAvailableItems()
	if err != nil {
		s.logger.Error("Failed to fetch available items", "error", err)
		return nil, err
	}

	s.logger.Info("Fetched available items", "count", len(items))
	return items, nil
}

// ListAvailableItemsByCategory filters by category. An unknown category
// is an empty result, not an error.
func (s *CatalogService) ListAvailableItemsByCategory(categoryID int) ([]*models.MenuItem, error) {
	s.logger.Debug("Fetching available items by category", "category_id", categoryID)

	items, err := s.catalogRepo.ListAvailableItemsByCategory(categoryID)
	if err != nil {
		s.logger.Error("Failed to fetch items by category", "category_id", categoryID, "error", err)
		return nil, err
	}

	s.logger.Info("Fetched items by category", "category_id", categoryID, "count", len(items))
	return items, nil
}

// SearchItems matches available items by name or description substring.
// An empty or whitespace query falls back to the full available listing.
func (s *CatalogService) SearchItems(query string) ([]*models.MenuItem, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return s.ListAvailableItems()
	}

	s.logger.Debug("Searching items", "query", trimmed)

	items, err := s.catalogRepo.SearchItems(trimmed)
	if err != nil {
		s.logger.Error("Search failed", "query", trimmed, "error", err)
		return nil, err
	}

	s.logger.Info("Search completed", "query", trimmed, "count", len(items))
	return items, nil
}

// SetItemAvailability toggles an item's availability and returns the
// updated item. Admin only.
func (s *CatalogService) SetItemAvailability(actor models.Role, itemID int, available bool) (*models.MenuItem, error) {
	if actor != models.RoleAdmin {
		s.logger.Warn("Availability change rejected: not admin", "role", actor, "item_id", itemID)
		return nil, fmt.Errorf("set availability: %w", apperrors.ErrForbidden)
	}

	if err := s.catalogRepo.SetItemAvailability(itemID, available); err != nil {
		s.logger.Error("Failed to set availability", "item_id", itemID, "error", err)
		return nil, err
	}

	item, err := s.catalogRepo.GetItemByID(itemID)
	if err != nil {
		s.logger.Error("Failed to reload item after availability change", "item_id", itemID, "error", err)
		return nil, err
	}

	s.logger.Info("Availability updated", "item_id", itemID, "available", available)
	return item, nil
}
