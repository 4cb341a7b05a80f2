package models

// Category groups menu items. Categories come from seed data and are
// immutable afterwards; Icon is a decorative emoji and may be empty.
type Category struct {
	ID    int         `json:"id" db:"id"`
	Name  string      `json:"name" db:"name"`
	Icon  string      `json:"icon,omitempty" db:"icon"`
	Items []*MenuItem `json:"menu_items,omitempty"`
}

// MenuItem is a single orderable dish. IsAvailable is the only field the
// backend mutates after seeding; everything else is fixed catalog data.
type MenuItem struct {
	ID          int     `json:"id" db:"id"`
	CategoryID  int     `json:"category_id" db:"category_id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description,omitempty" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Image       string  `json:"image,omitempty" db:"image"`
	IsAvailable bool    `json:"is_available" db:"is_available"`

	// Category is attached on item reads so clients can render the group
	// without a second round trip.
	Category *Category `json:"category,omitempty"`
}
