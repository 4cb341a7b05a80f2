package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/database"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// OrderRepositoryInterface is the order store. Implementations return
// orders newest first.
type OrderRepositoryInterface interface {
	Add(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetAll() ([]*models.Order, error)
	GetByStudent(studentName string) ([]*models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
	SetPaymentVerified(id string) error
}

// OrderRepository is the PostgreSQL-backed order store.
type OrderRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewOrderRepository(logger *logger.Logger, db *database.DB) *OrderRepository {
	return &OrderRepository{
		logger: logger.WithComponent("order_repository"),
		db:     db,
	}
}

// Add inserts the order and its items in one transaction.
func (r *OrderRepository) Add(order *models.Order) error {
	r.logger.Debug("Adding order", "order_id", order.ID, "student", order.StudentName)

	tx, err := r.db.Begin()
	if err != nil {
		r.logger.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO orders (id, student_name, total, status, order_time, payment_screenshot, payment_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		order.ID, order.StudentName, order.Total, string(order.Status),
		order.OrderTime, order.PaymentScreenshot, order.PaymentVerified,
	)
	if err != nil {
		r.logger.Error("Failed to insert order", "error", err, "order_id", order.ID)
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for position, item := range order.Items {
		_, err := tx.Exec(`
			INSERT INTO order_items (order_id, position, name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)`,
			order.ID, position, item.Name, item.Quantity, item.Price,
		)
		if err != nil {
			r.logger.Error("Failed to insert order item", "error", err, "order_id", order.ID, "item", item.Name)
			return fmt.Errorf("failed to insert order item %q: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit transaction", "error", err, "order_id", order.ID)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info("Added order", "order_id", order.ID, "student", order.StudentName, "total", order.Total)
	return nil
}

// GetByID retrieves one order with its items.
func (r *OrderRepository) GetByID(id string) (*models.Order, error) {
	r.logger.Debug("Retrieving order", "order_id", id)

	order := &models.Order{}
	var status string
	err := r.db.QueryRow(`
		SELECT id, student_name, total, status, order_time, payment_screenshot, payment_verified
		FROM orders WHERE id = $1`, id,
	).Scan(&order.ID, &order.StudentName, &order.Total, &status,
		&order.OrderTime, &order.PaymentScreenshot, &order.PaymentVerified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Warn("Order not found", "order_id", id)
			return nil, fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
		}
		r.logger.Error("Failed to retrieve order", "error", err, "order_id", id)
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	order.Status = models.OrderStatus(status)

	if err := r.loadItems(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetAll retrieves every order, newest first.
func (r *OrderRepository) GetAll() ([]*models.Order, error) {
	return r.queryOrders(`
		SELECT id, student_name, total, status, order_time, payment_screenshot, payment_verified
		FROM orders ORDER BY order_time DESC`)
}

// GetByStudent retrieves one student's orders, newest first.
func (r *OrderRepository) GetByStudent(studentName string) ([]*models.Order, error) {
	return r.queryOrders(`
		SELECT id, student_name, total, status, order_time, payment_screenshot, payment_verified
		FROM orders WHERE student_name = $1 ORDER BY order_time DESC`, studentName)
}

// UpdateStatus overwrites the order status. Transition legality is the
// service's concern.
func (r *OrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	result, err := r.db.Exec(`UPDATE orders SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		r.logger.Error("Failed to update order status", "error", err, "order_id", id)
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return r.requireAffected(result, id)
}

// SetPaymentVerified marks the order's payment verified. The flag only
// ever moves false → true.
func (r *OrderRepository) SetPaymentVerified(id string) error {
	result, err := r.db.Exec(`UPDATE orders SET payment_verified = TRUE WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to mark payment verified", "error", err, "order_id", id)
		return fmt.Errorf("failed to mark payment verified: %w", err)
	}
	return r.requireAffected(result, id)
}

func (r *OrderRepository) requireAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to get rows affected", "error", err, "order_id", id)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		r.logger.Warn("Order not found for update", "order_id", id)
		return fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *OrderRepository) queryOrders(query string, args ...interface{}) ([]*models.Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to query orders", "error", err)
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.Order{}
	for rows.Next() {
		order := &models.Order{}
		var status string
		err := rows.Scan(&order.ID, &order.StudentName, &order.Total, &status,
			&order.OrderTime, &order.PaymentScreenshot, &order.PaymentVerified)
		if err != nil {
			r.logger.Error("Failed to scan order", "error", err)
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		order.Status = models.OrderStatus(status)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating order rows", "error", err)
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	for _, order := range orders {
		if err := r.loadItems(order); err != nil {
			return nil, err
		}
	}

	r.logger.Info("Retrieved orders", "count", len(orders))
	return orders, nil
}

func (r *OrderRepository) loadItems(order *models.Order) error {
	rows, err := r.db.Query(`
		SELECT name, quantity, price FROM order_items
		WHERE order_id = $1 ORDER BY position`, order.ID)
	if err != nil {
		r.logger.Error("Failed to query order items", "error", err, "order_id", order.ID)
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	order.Items = []models.OrderItem{}
	for rows.Next() {
		item := models.OrderItem{}
		if err := rows.Scan(&item.Name, &item.Quantity, &item.Price); err != nil {
			r.logger.Error("Failed to scan order item", "error", err, "order_id", order.ID)
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating order item rows: %w", err)
	}
	return nil
}
