// Package router wires the HTTP surface onto a stdlib mux.
package router

import (
	"net/http"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/handler"
)

// HealthChecker reports backend storage health for /health.
type HealthChecker interface {
	HealthCheck() error
}

// NewRouter builds the canteen API routing table.
func NewRouter(menuHandler *handler.MenuHandler, authHandler *handler.AuthHandler, orderHandler *handler.OrderHandler, health HealthChecker) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /menu/categories", menuHandler.GetCategories)
	mux.HandleFunc("GET /menu/items", menuHandler.GetMenuItems)
	mux.HandleFunc("GET /menu/category/{categoryId}/items", menuHandler.GetMenuItemsByCategory)
	mux.HandleFunc("GET /menu/search", menuHandler.SearchMenuItems)
	mux.HandleFunc("PATCH /menu/items/{id}/availability", menuHandler.SetItemAvailability)

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/pin", authHandler.SetPin)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	mux.HandleFunc("POST /orders", orderHandler.SubmitOrder)
	mux.HandleFunc("GET /orders", orderHandler.ListOrders)
	mux.HandleFunc("GET /orders/{id}", orderHandler.GetOrder)
	mux.HandleFunc("POST /orders/{id}/advance", orderHandler.AdvanceOrder)
	mux.HandleFunc("POST /orders/{id}/verify-payment", orderHandler.VerifyPayment)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health.HealthCheck(); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"degraded"}`))
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	return mux
}
