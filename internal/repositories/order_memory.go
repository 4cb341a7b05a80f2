package repositories

import (
	"fmt"
	"sync"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

// MemoryOrderRepository keeps orders in process memory. New orders are
// prepended so reads come back newest first, matching the durable store.
type MemoryOrderRepository struct {
	mutex  sync.RWMutex
	orders []*models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Add(order *models.Order) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.orders {
		if existing.ID == order.ID {
			return fmt.Errorf("order %s already exists: %w", order.ID, apperrors.ErrConflict)
		}
	}
	copied := cloneOrder(order)
	r.orders = append([]*models.Order{copied}, r.orders...)
	return nil
}

func (r *MemoryOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, order := range r.orders {
		if order.ID == id {
			return cloneOrder(order), nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
}

func (r *MemoryOrderRepository) GetAll() ([]*models.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	orders := make([]*models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, cloneOrder(order))
	}
	return orders, nil
}

func (r *MemoryOrderRepository) GetByStudent(studentName string) ([]*models.Order, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	orders := []*models.Order{}
	for _, order := range r.orders {
		if order.StudentName == studentName {
			orders = append(orders, cloneOrder(order))
		}
	}
	return orders, nil
}

func (r *MemoryOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, order := range r.orders {
		if order.ID == id {
			order.Status = status
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
}

func (r *MemoryOrderRepository) SetPaymentVerified(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, order := range r.orders {
		if order.ID == id {
			order.PaymentVerified = true
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", id, apperrors.ErrNotFound)
}

func cloneOrder(order *models.Order) *models.Order {
	copied := *order
	copied.Items = make([]models.OrderItem, len(order.Items))
	copy(copied.Items, order.Items)
	return &copied
}
