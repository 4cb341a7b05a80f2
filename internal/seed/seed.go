// Package seed loads the initial catalog and accounts. The data mirrors
// the canteen's launch menu: five categories and fifteen dishes.
package seed

import (
	"fmt"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/repositories"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

type seedItem struct {
	category    string
	name        string
	description string
	price       float64
}

var categories = []models.Category{
	{Name: "Breakfast", Icon: "🍳"},
	{Name: "Lunch", Icon: "🍽️"},
	{Name: "Snacks", Icon: "🍿"},
	{Name: "Beverages", Icon: "🥤"},
	{Name: "Desserts", Icon: "🍰"},
}

var items = []seedItem{
	{"Breakfast", "Masala Dosa", "Crispy dosa with spiced potato filling, served with sambar and chutney", 45.00},
	{"Breakfast", "Idli Sambar", "Soft steamed rice cakes with lentil soup and coconut chutney", 35.00},
	{"Breakfast", "Poha", "Flattened rice cooked with onions, potatoes, and mild spices", 25.00},
	{"Lunch", "Veg Thali", "Complete meal with rice, dal, vegetables, roti, and curd", 80.00},
	{"Lunch", "Chicken Biryani", "Aromatic rice dish with tender chicken and aromatic spices", 120.00},
	{"Lunch", "Paneer Butter Masala", "Cottage cheese in rich tomato-based gravy with butter", 95.00},
	{"Snacks", "Samosa", "Crispy pastry filled with spiced potatoes and peas", 15.00},
	{"Snacks", "Vada Pav", "Spicy potato fritter in a soft bun with chutney", 20.00},
	{"Snacks", "Pakora", "Mixed vegetable fritters in chickpea flour batter", 30.00},
	{"Beverages", "Masala Chai", "Spiced Indian tea with milk and aromatic spices", 15.00},
	{"Beverages", "Lassi", "Sweet yogurt-based drink, perfect for hot days", 25.00},
	{"Beverages", "Lemon Soda", "Refreshing lemon soda with salt and spices", 20.00},
	{"Desserts", "Gulab Jamun", "Sweet milk solids dumplings in sugar syrup", 35.00},
	{"Desserts", "Rasgulla", "Soft cottage cheese balls in light sugar syrup", 30.00},
	{"Desserts", "Jalebi", "Crispy spiral-shaped sweet soaked in sugar syrup", 40.00},
}

var users = []models.User{
	{ID: "STU001", Name: "Rahul Sharma", Role: models.RoleStudent, PIN: "1234"},
	{ID: "EMP001", Name: "Dr. Priya Patel", Role: models.RoleStaff, PIN: "5678"},
	{ID: "ADM001", Name: "Admin User", Role: models.RoleAdmin, PIN: "9999"},
}

// Catalog seeds categories and menu items through the repository
// interface, so it works against both the memory and Postgres stores.
func Catalog(repo repositories.CatalogRepositoryInterface, log *logger.Logger) error {
	byName := map[string]int{}
	for _, category := range categories {
		record := category
		if err := repo.CreateCategory(&record); err != nil {
			return fmt.Errorf("seed category %q: %w", category.Name, err)
		}
		byName[record.Name] = record.ID
	}

	for _, item := range items {
		categoryID, ok := byName[item.category]
		if !ok {
			return fmt.Errorf("seed item %q: unknown category %q", item.name, item.category)
		}
		record := models.MenuItem{
			CategoryID:  categoryID,
			Name:        item.name,
			Description: item.description,
			Price:       item.price,
			IsAvailable: true,
		}
		if err := repo.CreateItem(&record); err != nil {
			return fmt.Errorf("seed item %q: %w", item.name, err)
		}
	}

	log.Info("Catalog seeded", "categories", len(categories), "items", len(items))
	return nil
}

// Users seeds the reference accounts.
func Users(repo repositories.UserRepositoryInterface, log *logger.Logger) error {
	for _, user := range users {
		record := user
		if err := repo.Create(&record); err != nil {
			return fmt.Errorf("seed user %q: %w", user.ID, err)
		}
	}

	log.Info("Users seeded", "count", len(users))
	return nil
}
