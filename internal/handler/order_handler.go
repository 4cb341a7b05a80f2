package handler

import (
	"fmt"
	"net/http"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/service"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// OrderHandler serves order submission, listing and the admin lifecycle
// actions.
type OrderHandler struct {
	orderService service.OrderServiceInterface
	logger       *logger.Logger
}

func NewOrderHandler(orderService service.OrderServiceInterface, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger.WithComponent("order_handler"),
	}
}

// SubmitOrder handles POST /orders
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitOrderRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for submit order", "error", err)
		writeErrorResponse(w, h.logger, fmt.Errorf("invalid request body: %w", apperrors.ErrValidation))
		return
	}

	order, err := h.orderService.Submit(req)
	if err != nil {
		h.logger.Warn("Order submission failed", "student", req.StudentName, "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusCreated, order)
}

// ListOrders handles GET /orders?student=
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	student := r.URL.Query().Get("student")

	orders, err := h.orderService.ListOrders(student)
	if err != nil {
		h.logger.Error("Failed to list orders", "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusOK, orders)
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetOrder(r.PathValue("id"))
	if err != nil {
		h.logger.Warn("Order lookup failed", "order_id", r.PathValue("id"), "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusOK, order)
}

// AdvanceOrder handles POST /orders/{id}/advance
func (h *OrderHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	order, err := h.orderService.Advance(actorRole(r), id)
	if err != nil {
		h.logger.Warn("Order advance failed", "order_id", id, "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusOK, order)
}

// VerifyPayment handles POST /orders/{id}/verify-payment
func (h *OrderHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	order, err := h.orderService.VerifyPayment(actorRole(r), id)
	if err != nil {
		h.logger.Warn("Payment verification failed", "order_id", id, "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusOK, order)
}
