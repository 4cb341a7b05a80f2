package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/repositories"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// SubmitOrderRequest is a cart turned into an order submission. The
// screenshot is recorded by name only; its content is never stored or
// inspected.
type SubmitOrderRequest struct {
	StudentName       string            `json:"student_name"`
	Items             []SubmitOrderItem `json:"items"`
	PaymentScreenshot string            `json:"payment_screenshot"`
}

type SubmitOrderItem struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// OrderServiceInterface is the order lifecycle: submission by students,
// forward-only status transitions and payment verification by admins.
type OrderServiceInterface interface {
	Submit(req SubmitOrderRequest) (*models.Order, error)
	GetOrder(id string) (*models.Order, error)
	ListOrders(studentName string) ([]*models.Order, error)
	Advance(actor models.Role, id string) (*models.Order, error)
	VerifyPayment(actor models.Role, id string) (*models.Order, error)
}

type OrderService struct {
	orderRepo   repositories.OrderRepositoryInterface
	catalogRepo repositories.CatalogRepositoryInterface
	logger      *logger.Logger
}

func NewOrderService(orderRepo repositories.OrderRepositoryInterface, catalogRepo repositories.CatalogRepositoryInterface, logger *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		logger:      logger.WithComponent("order_service"),
	}
}

// Submit creates a pending order from a non-empty cart with a payment
// screenshot attached. Prices are resolved against the catalog at
// submission time and frozen on the order.
func (s *OrderService) Submit(req SubmitOrderRequest) (*models.Order, error) {
	s.logger.Info("Submitting order", "student", req.StudentName, "items", len(req.Items))

	if req.PaymentScreenshot == "" {
		s.logger.Warn("Submission rejected: no payment screenshot", "student", req.StudentName)
		return nil, fmt.Errorf("submit order: %w", apperrors.ErrPaymentProofRequired)
	}
	if req.StudentName == "" {
		return nil, fmt.Errorf("student name is required: %w", apperrors.ErrValidation)
	}
	if len(req.Items) == 0 {
		s.logger.Warn("Submission rejected: empty cart", "student", req.StudentName)
		return nil, fmt.Errorf("order must have at least one item: %w", apperrors.ErrValidation)
	}

	order := &models.Order{
		ID:                uuid.NewString(),
		StudentName:       req.StudentName,
		Status:            models.StatusPending,
		OrderTime:         time.Now().UTC(),
		PaymentScreenshot: req.PaymentScreenshot,
		Items:             make([]models.OrderItem, 0, len(req.Items)),
	}

	for i, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("item %d: quantity must be positive: %w", i+1, apperrors.ErrValidation)
		}
		menuItem, err := s.catalogRepo.GetItemByID(line.MenuItemID)
		if err != nil {
			s.logger.Warn("Submission rejected: unknown item", "menu_item_id", line.MenuItemID)
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		if !menuItem.IsAvailable {
			s.logger.Warn("Submission rejected: item unavailable", "menu_item_id", line.MenuItemID)
			return nil, fmt.Errorf("item %q is not available: %w", menuItem.Name, apperrors.ErrValidation)
		}
		order.Items = append(order.Items, models.OrderItem{
			Name:     menuItem.Name,
			Quantity: line.Quantity,
			Price:    menuItem.Price,
		})
		order.Total += menuItem.Price * float64(line.Quantity)
	}

	if err := s.orderRepo.Add(order); err != nil {
		s.logger.Error("Failed to store order", "order_id", order.ID, "error", err)
		return nil, err
	}

	s.logger.Info("Order submitted", "order_id", order.ID, "student", order.StudentName, "total", order.Total)
	return order, nil
}

// GetOrder retrieves one order.
func (s *OrderService) GetOrder(id string) (*models.Order, error) {
	if id == "" {
		return nil, fmt.Errorf("order id is required: %w", apperrors.ErrValidation)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		s.logger.Warn("Order not found", "order_id", id, "error", err)
		return nil, err
	}
	return order, nil
}

// ListOrders returns all orders, or one student's orders when
// studentName is non-empty. Newest first.
func (s *OrderService) ListOrders(studentName string) ([]*models.Order, error) {
	if studentName != "" {
		return s.orderRepo.GetByStudent(studentName)
	}
	return s.orderRepo.GetAll()
}

// Advance moves the order one step along pending → preparing → ready.
// Advancing a ready order is rejected, deterministically.
func (s *OrderService) Advance(actor models.Role, id string) (*models.Order, error) {
	if actor != models.RoleAdmin {
		s.logger.Warn("Advance rejected: not admin", "role", actor, "order_id", id)
		return nil, fmt.Errorf("advance order: %w", apperrors.ErrForbidden)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	next, ok := order.Status.Next()
	if !ok {
		s.logger.Warn("Advance rejected: no further transitions", "order_id", id, "status", order.Status)
		return nil, fmt.Errorf("order %s is already %s: %w", id, order.Status, apperrors.ErrConflict)
	}

	if err := s.orderRepo.UpdateStatus(id, next); err != nil {
		s.logger.Error("Failed to advance order", "order_id", id, "error", err)
		return nil, err
	}
	order.Status = next

	s.logger.Info("Order advanced", "order_id", id, "status", next)
	return order, nil
}

// VerifyPayment marks the order's payment verified. It does not gate
// status transitions; an order can reach ready while unverified.
func (s *OrderService) VerifyPayment(actor models.Role, id string) (*models.Order, error) {
	if actor != models.RoleAdmin {
		s.logger.Warn("Payment verification rejected: not admin", "role", actor, "order_id", id)
		return nil, fmt.Errorf("verify payment: %w", apperrors.ErrForbidden)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !order.PaymentVerified {
		if err := s.orderRepo.SetPaymentVerified(id); err != nil {
			s.logger.Error("Failed to verify payment", "order_id", id, "error", err)
			return nil, err
		}
		order.PaymentVerified = true
		s.logger.Info("Payment verified", "order_id", id)
	}

	return order, nil
}
