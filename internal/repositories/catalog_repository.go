package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/database"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// CatalogRepositoryInterface is the read/search contract over categories
// and menu items, plus the single backend mutation (availability) and the
// creation hooks used by seeding.
type CatalogRepositoryInterface interface {
	ListCategories() ([]*models.Category, error)
	ListAvailableItems() ([]*models.MenuItem, error)
	ListAvailableItemsByCategory(categoryID int) ([]*models.MenuItem, error)
	SearchItems(query string) ([]*models.MenuItem, error)
	GetItemByID(id int) (*models.MenuItem, error)
	SetItemAvailability(id int, available bool) error
	CreateCategory(category *models.Category) error
	CreateItem(item *models.MenuItem) error
}

// CatalogRepository is the PostgreSQL-backed catalog store.
type CatalogRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewCatalogRepository(logger *logger.Logger, db *database.DB) *CatalogRepository {
	return &CatalogRepository{
		logger: logger.WithComponent("catalog_repository"),
		db:     db,
	}
}

const itemColumns = `
	i.id, i.category_id, i.name, i.description, i.price, i.image, i.is_available,
	c.id, c.name, c.icon
`

// ListCategories returns every category with its items eagerly attached,
// in insertion order.
func (r *CatalogRepository) ListCategories() ([]*models.Category, error) {
	r.logger.Debug("Retrieving all categories from database")

	rows, err := r.db.Query(`SELECT id, name, icon FROM categories ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to query categories", "error", err)
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.Category{}
	byID := map[int]*models.Category{}
	for rows.Next() {
		category := &models.Category{Items: []*models.MenuItem{}}
		var icon sql.NullString
		if err := rows.Scan(&category.ID, &category.Name, &icon); err != nil {
			r.logger.Error("Failed to scan category", "error", err)
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		category.Icon = icon.String
		categories = append(categories, category)
		byID[category.ID] = category
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating category rows", "error", err)
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	itemRows, err := r.db.Query(`
		SELECT id, category_id, name, description, price, image, is_available
		FROM menu_items ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to query menu items for categories", "error", err)
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		item := &models.MenuItem{}
		var description, image sql.NullString
		err := itemRows.Scan(&item.ID, &item.CategoryID, &item.Name, &description,
			&item.Price, &image, &item.IsAvailable)
		if err != nil {
			r.logger.Error("Failed to scan menu item", "error", err)
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		item.Description = description.String
		item.Image = image.String
		if category, ok := byID[item.CategoryID]; ok {
			category.Items = append(category.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		r.logger.Error("Error iterating menu item rows", "error", err)
		return nil, fmt.Errorf("error iterating menu item rows: %w", err)
	}

	r.logger.Info("Retrieved categories", "count", len(categories))
	return categories, nil
}

// ListAvailableItems returns every available item with its category.
func (r *CatalogRepository) ListAvailableItems() ([]*models.MenuItem, error) {
	r.logger.Debug("Retrieving available menu items from database")
	return r.queryItems(`
		SELECT `+itemColumns+`
		FROM menu_items i
		JOIN categories c ON c.id = i.category_id
		WHERE i.is_available = TRUE
		ORDER BY i.id`)
}

// ListAvailableItemsByCategory intersects the availability filter with a
// category. An unknown category yields an empty slice, not an error.
func (r *CatalogRepository) ListAvailableItemsByCategory(categoryID int) ([]*models.MenuItem, error) {
	r.logger.Debug("Retrieving available menu items by category", "category_id", categoryID)
	return r.queryItems(`
		SELECT `+itemColumns+`
		FROM menu_items i
		JOIN categories c ON c.id = i.category_id
		WHERE i.is_available = TRUE AND i.category_id = $1
		ORDER BY i.id`, categoryID)
}

// escapeLikePattern neutralizes LIKE metacharacters so the query matches
// literally, the same behavior the memory store gets from strings.Contains.
func escapeLikePattern(query string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(query)
}

// SearchItems matches available items whose name or description contains
// the query, case-insensitively. Match is binary; there is no ranking.
func (r *CatalogRepository) SearchItems(query string) ([]*models.MenuItem, error) {
	r.logger.Debug("Searching menu items", "query", query)
	return r.queryItems(`
		SELECT `+itemColumns+`
		FROM menu_items i
		JOIN categories c ON c.id = i.category_id
		WHERE i.is_available = TRUE
		  AND (i.name ILIKE '%' || $1 || '%' OR i.description ILIKE '%' || $1 || '%')
		ORDER BY i.id`, escapeLikePattern(query))
}

// GetItemByID retrieves one menu item regardless of availability.
func (r *CatalogRepository) GetItemByID(id int) (*models.MenuItem, error) {
	r.logger.Debug("Retrieving menu item from database", "item_id", id)

	row := r.db.QueryRow(`
		SELECT `+itemColumns+`
		FROM menu_items i
		JOIN categories c ON c.id = i.category_id
		WHERE i.id = $1`, id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Warn("Menu item not found", "item_id", id)
			return nil, fmt.Errorf("menu item %d: %w", id, apperrors.ErrNotFound)
		}
		r.logger.Error("Failed to retrieve menu item", "error", err, "item_id", id)
		return nil, fmt.Errorf("failed to retrieve menu item: %w", err)
	}
	return item, nil
}

// SetItemAvailability flips the availability flag, the only mutable field
// in the backend-visible catalog model.
func (r *CatalogRepository) SetItemAvailability(id int, available bool) error {
	r.logger.Debug("Updating menu item availability", "item_id", id, "available", available)

	result, err := r.db.Exec(`UPDATE menu_items SET is_available = $1 WHERE id = $2`, available, id)
	if err != nil {
		r.logger.Error("Failed to update menu item availability", "error", err, "item_id", id)
		return fmt.Errorf("failed to update availability: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to get rows affected", "error", err, "item_id", id)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		r.logger.Warn("Attempted to update availability of non-existent item", "item_id", id)
		return fmt.Errorf("menu item %d: %w", id, apperrors.ErrNotFound)
	}

	r.logger.Info("Updated menu item availability", "item_id", id, "available", available)
	return nil
}

// CreateCategory inserts a category. Used by seeding only.
func (r *CatalogRepository) CreateCategory(category *models.Category) error {
	err := r.db.QueryRow(
		`INSERT INTO categories (name, icon) VALUES ($1, $2) RETURNING id`,
		category.Name, category.Icon,
	).Scan(&category.ID)
	if err != nil {
		r.logger.Error("Failed to insert category", "error", err, "name", category.Name)
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// CreateItem inserts a menu item. Used by seeding only.
func (r *CatalogRepository) CreateItem(item *models.MenuItem) error {
	err := r.db.QueryRow(`
		INSERT INTO menu_items (category_id, name, description, price, image, is_available)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		item.CategoryID, item.Name, item.Description, item.Price, item.Image, item.IsAvailable,
	).Scan(&item.ID)
	if err != nil {
		r.logger.Error("Failed to insert menu item", "error", err, "name", item.Name)
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

func (r *CatalogRepository) queryItems(query string, args ...interface{}) ([]*models.MenuItem, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to query menu items", "error", err)
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []*models.MenuItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.logger.Error("Failed to scan menu item", "error", err)
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating menu item rows", "error", err)
		return nil, fmt.Errorf("error iterating menu item rows: %w", err)
	}

	r.logger.Info("Retrieved menu items", "count", len(items))
	return items, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*models.MenuItem, error) {
	item := &models.MenuItem{Category: &models.Category{}}
	var description, image, icon sql.NullString
	err := row.Scan(
		&item.ID, &item.CategoryID, &item.Name, &description, &item.Price, &image, &item.IsAvailable,
		&item.Category.ID, &item.Category.Name, &icon,
	)
	if err != nil {
		return nil, err
	}
	item.Description = description.String
	item.Image = image.String
	item.Category.Icon = icon.String
	return item, nil
}
