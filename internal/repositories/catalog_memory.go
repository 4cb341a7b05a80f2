package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

// MemoryCatalogRepository keeps the catalog in process memory. It backs
// tests and the server's --memory mode, and implements the same contract
// as the PostgreSQL repository.
type MemoryCatalogRepository struct {
	mutex      sync.RWMutex
	categories []*models.Category
	items      map[int]*models.MenuItem
	nextCatID  int
	nextItemID int
}

func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{
		items:      make(map[int]*models.MenuItem),
		nextCatID:  1,
		nextItemID: 1,
	}
}

func (r *MemoryCatalogRepository) ListCategories() ([]*models.Category, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	categories := make([]*models.Category, 0, len(r.categories))
	for _, category := range r.categories {
		copied := *category
		copied.Items = []*models.MenuItem{}
		for _, item := range r.sortedItems() {
			if item.CategoryID == category.ID {
				itemCopy := *item
				copied.Items = append(copied.Items, &itemCopy)
			}
		}
		categories = append(categories, &copied)
	}
	return categories, nil
}

func (r *MemoryCatalogRepository) ListAvailableItems() ([]*models.MenuItem, error) {
	return r.filterItems(func(item *models.MenuItem) bool {
		return item.IsAvailable
	})
}

func (r *MemoryCatalogRepository) ListAvailableItemsByCategory(categoryID int) ([]*models.MenuItem, error) {
	return r.filterItems(func(item *models.MenuItem) bool {
		return item.IsAvailable && item.CategoryID == categoryID
	})
}

func (r *MemoryCatalogRepository) SearchItems(query string) ([]*models.MenuItem, error) {
	needle := strings.ToLower(query)
	return r.filterItems(func(item *models.MenuItem) bool {
		if !item.IsAvailable {
			return false
		}
		return strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle)
	})
}

func (r *MemoryCatalogRepository) GetItemByID(id int) (*models.MenuItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, fmt.Errorf("menu item %d: %w", id, apperrors.ErrNotFound)
	}
	return r.attachCategory(item), nil
}

func (r *MemoryCatalogRepository) SetItemAvailability(id int, available bool) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	item, exists := r.items[id]
	if !exists {
		return fmt.Errorf("menu item %d: %w", id, apperrors.ErrNotFound)
	}
	item.IsAvailable = available
	return nil
}

func (r *MemoryCatalogRepository) CreateCategory(category *models.Category) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if category.ID == 0 {
		category.ID = r.nextCatID
	}
	if category.ID >= r.nextCatID {
		r.nextCatID = category.ID + 1
	}
	copied := *category
	copied.Items = nil
	r.categories = append(r.categories, &copied)
	return nil
}

func (r *MemoryCatalogRepository) CreateItem(item *models.MenuItem) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	found := false
	for _, category := range r.categories {
		if category.ID == item.CategoryID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("category %d for item %q: %w", item.CategoryID, item.Name, apperrors.ErrNotFound)
	}

	if item.ID == 0 {
		item.ID = r.nextItemID
	}
	if item.ID >= r.nextItemID {
		r.nextItemID = item.ID + 1
	}
	copied := *item
	copied.Category = nil
	r.items[copied.ID] = &copied
	return nil
}

func (r *MemoryCatalogRepository) filterItems(keep func(*models.MenuItem) bool) ([]*models.MenuItem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	items := []*models.MenuItem{}
	for _, item := range r.sortedItems() {
		if keep(item) {
			items = append(items, r.attachCategory(item))
		}
	}
	return items, nil
}

// sortedItems returns items in insertion (id) order. Callers hold the lock.
func (r *MemoryCatalogRepository) sortedItems() []*models.MenuItem {
	items := make([]*models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// attachCategory copies the item with its category record attached.
// Callers hold the lock.
func (r *MemoryCatalogRepository) attachCategory(item *models.MenuItem) *models.MenuItem {
	copied := *item
	for _, category := range r.categories {
		if category.ID == item.CategoryID {
			categoryCopy := *category
			categoryCopy.Items = nil
			copied.Category = &categoryCopy
			break
		}
	}
	return &copied
}
