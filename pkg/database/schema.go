package database

// Schema statements are idempotent so the server can run them on every start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		icon TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id           SERIAL PRIMARY KEY,
		category_id  INTEGER NOT NULL REFERENCES categories(id),
		name         TEXT NOT NULL,
		description  TEXT,
		price        NUMERIC(10,2) NOT NULL,
		image        TEXT,
		is_available BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id   TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		pin  TEXT NOT NULL,
		PRIMARY KEY (id, role)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id                 TEXT PRIMARY KEY,
		student_name       TEXT NOT NULL,
		total              NUMERIC(10,2) NOT NULL,
		status             TEXT NOT NULL,
		order_time         TIMESTAMPTZ NOT NULL,
		payment_screenshot TEXT,
		payment_verified   BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name     TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price    NUMERIC(10,2) NOT NULL,
		PRIMARY KEY (order_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_student_name ON orders(student_name)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items(category_id)`,
}

// EnsureSchema creates the tables if they do not exist yet.
func (db *DB) EnsureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.logger.Error("Failed to apply schema statement", "error", err)
			return err
		}
	}
	db.logger.Debug("Database schema ensured")
	return nil
}

// IsSeeded reports whether the catalog already contains data.
func (db *DB) IsSeeded() (bool, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
