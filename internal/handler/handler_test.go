package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/handler"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/repositories"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/router"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/seed"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/service"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

type okHealth struct{}

func (okHealth) HealthCheck() error { return nil }

// newTestMux builds the full request path on memory storage with the
// launch seed data applied.
func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	log := logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})

	catalogRepo := repositories.NewMemoryCatalogRepository()
	userRepo := repositories.NewMemoryUserRepository()
	orderRepo := repositories.NewMemoryOrderRepository()

	if err := seed.Catalog(catalogRepo, log); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	if err := seed.Users(userRepo, log); err != nil {
		t.Fatalf("seed users: %v", err)
	}

	menuHandler := handler.NewMenuHandler(service.NewCatalogService(catalogRepo, log), log)
	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, log), log)
	orderHandler := handler.NewOrderHandler(service.NewOrderService(orderRepo, catalogRepo, log), log)

	return router.NewRouter(menuHandler, authHandler, orderHandler, okHealth{})
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, role models.Role, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("X-Actor-Role", string(role))
	}

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}

func decodeInto(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.NewDecoder(recorder.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestMenuEndpoints(t *testing.T) {
	mux := newTestMux(t)

	t.Run("categories", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodGet, "/menu/categories", "", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		var categories []*models.Category
		decodeInto(t, recorder, &categories)
		if len(categories) != 5 {
			t.Errorf("got %d categories, expected 5", len(categories))
		}
		if categories[0].Name != "Breakfast" || categories[0].Icon != "🍳" {
			t.Errorf("unexpected first category %+v", categories[0])
		}
	})

	t.Run("items", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodGet, "/menu/items", "", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		var items []*models.MenuItem
		decodeInto(t, recorder, &items)
		if len(items) != 15 {
			t.Errorf("got %d items, expected 15", len(items))
		}
	})

	t.Run("items by category", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodGet, "/menu/category/1/items", "", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		var items []*models.MenuItem
		decodeInto(t, recorder, &items)
		if len(items) != 3 {
			t.Errorf("got %d breakfast items, expected 3", len(items))
		}
	})

	t.Run("items by bad category id", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodGet, "/menu/category/abc/items", "", nil)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("status = %d, expected 400", recorder.Code)
		}
	})

	t.Run("search", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodGet, "/menu/search?query=dosa", "", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		var items []*models.MenuItem
		decodeInto(t, recorder, &items)
		if len(items) != 1 || items[0].Name != "Masala Dosa" {
			t.Errorf("unexpected search result %+v", items)
		}
	})

	t.Run("search without query lists everything", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodGet, "/menu/search", "", nil)
		var items []*models.MenuItem
		decodeInto(t, recorder, &items)
		if len(items) != 15 {
			t.Errorf("got %d items, expected 15", len(items))
		}
	})
}

func TestSetItemAvailabilityEndpoint(t *testing.T) {
	mux := newTestMux(t)

	body := map[string]bool{"available": false}

	recorder := doJSON(t, mux, http.MethodPatch, "/menu/items/1/availability", models.RoleStudent, body)
	if recorder.Code != http.StatusForbidden {
		t.Errorf("student toggle status = %d, expected 403", recorder.Code)
	}

	recorder = doJSON(t, mux, http.MethodPatch, "/menu/items/1/availability", models.RoleAdmin, body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("admin toggle status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	var item models.MenuItem
	decodeInto(t, recorder, &item)
	if item.ID != 1 || item.IsAvailable {
		t.Errorf("unexpected item %+v", item)
	}

	// The item disappears from the public listing.
	recorder = doJSON(t, mux, http.MethodGet, "/menu/items", "", nil)
	var items []*models.MenuItem
	decodeInto(t, recorder, &items)
	if len(items) != 14 {
		t.Errorf("got %d items after hiding one, expected 14", len(items))
	}

	recorder = doJSON(t, mux, http.MethodPatch, "/menu/items/999/availability", models.RoleAdmin, body)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("unknown item status = %d, expected 404", recorder.Code)
	}
}

func TestAuthEndpoints(t *testing.T) {
	mux := newTestMux(t)

	t.Run("register then pin", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodPost, "/auth/register", "", map[string]string{
			"id": "STU042", "name": "Asha Verma", "role": "student",
		})
		if recorder.Code != http.StatusOK {
			t.Fatalf("register status = %d, body %s", recorder.Code, recorder.Body.String())
		}

		recorder = doJSON(t, mux, http.MethodPost, "/auth/pin", "", map[string]string{
			"id": "STU042", "name": "Asha Verma", "role": "student", "pin": "4321",
		})
		if recorder.Code != http.StatusCreated {
			t.Fatalf("pin status = %d, body %s", recorder.Code, recorder.Body.String())
		}
		var session models.Session
		decodeInto(t, recorder, &session)
		if session.ID != "STU042" || session.Role != models.RoleStudent {
			t.Errorf("unexpected session %+v", session)
		}
	})

	t.Run("register bad format", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodPost, "/auth/register", "", map[string]string{
			"id": "STU1", "name": "Too Short", "role": "student",
		})
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("status = %d, expected 400", recorder.Code)
		}
	})

	t.Run("register duplicate seeded id", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodPost, "/auth/register", "", map[string]string{
			"id": "STU001", "name": "Copycat", "role": "student",
		})
		if recorder.Code != http.StatusConflict {
			t.Errorf("status = %d, expected 409", recorder.Code)
		}
	})

	t.Run("bad pin", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodPost, "/auth/pin", "", map[string]string{
			"id": "STU043", "name": "Asha Verma", "role": "student", "pin": "12a4",
		})
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("status = %d, expected 400", recorder.Code)
		}
	})

	t.Run("login seeded admin", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodPost, "/auth/login", "", map[string]string{
			"id": "ADM001", "role": "admin", "pin": "9999",
		})
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
		}
		var session models.Session
		decodeInto(t, recorder, &session)
		if session.Name != "Admin User" || session.Role != models.RoleAdmin {
			t.Errorf("unexpected session %+v", session)
		}
	})

	t.Run("login wrong pin", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodPost, "/auth/login", "", map[string]string{
			"id": "ADM001", "role": "admin", "pin": "0000",
		})
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, expected 401", recorder.Code)
		}
	})

	t.Run("login unknown user", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodPost, "/auth/login", "", map[string]string{
			"id": "STU999", "role": "student", "pin": "1234",
		})
		if recorder.Code != http.StatusNotFound {
			t.Errorf("status = %d, expected 404", recorder.Code)
		}
	})
}

func TestOrderEndpoints(t *testing.T) {
	mux := newTestMux(t)

	submission := service.SubmitOrderRequest{
		StudentName:       "Rahul Sharma",
		Items:             []service.SubmitOrderItem{{MenuItemID: 1, Quantity: 1}, {MenuItemID: 7, Quantity: 2}},
		PaymentScreenshot: "upi-842317.png",
	}

	recorder := doJSON(t, mux, http.MethodPost, "/orders", "", submission)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("submit status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	var order models.Order
	decodeInto(t, recorder, &order)
	if order.Total != 75 { // Masala Dosa 45 + 2x Samosa 15
		t.Errorf("total = %.2f, expected 75.00", order.Total)
	}

	t.Run("submit without screenshot", func(t *testing.T) {
		bad := submission
		bad.PaymentScreenshot = ""
		recorder := doJSON(t, mux, http.MethodPost, "/orders", "", bad)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("status = %d, expected 400", recorder.Code)
		}
	})

	t.Run("get order", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodGet, "/orders/"+order.ID, "", nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		var fetched models.Order
		decodeInto(t, recorder, &fetched)
		if fetched.ID != order.ID || fetched.Status != models.StatusPending {
			t.Errorf("unexpected order %+v", fetched)
		}
	})

	t.Run("get unknown order", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodGet, "/orders/nope", "", nil)
		if recorder.Code != http.StatusNotFound {
			t.Errorf("status = %d, expected 404", recorder.Code)
		}
	})

	t.Run("list filtered by student", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodGet, "/orders?student=Rahul+Sharma", "", nil)
		var orders []*models.Order
		decodeInto(t, recorder, &orders)
		if len(orders) != 1 {
			t.Errorf("got %d orders, expected 1", len(orders))
		}
	})

	t.Run("advance lifecycle", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodPost, "/orders/"+order.ID+"/advance", models.RoleStaff, nil)
		if recorder.Code != http.StatusForbidden {
			t.Errorf("staff advance status = %d, expected 403", recorder.Code)
		}

		for _, expected := range []models.OrderStatus{models.StatusPreparing, models.StatusReady} {
			recorder := doJSON(t, mux, http.MethodPost, "/orders/"+order.ID+"/advance", models.RoleAdmin, nil)
			if recorder.Code != http.StatusOK {
				t.Fatalf("advance status = %d, body %s", recorder.Code, recorder.Body.String())
			}
			var advanced models.Order
			decodeInto(t, recorder, &advanced)
			if advanced.Status != expected {
				t.Errorf("status = %s, expected %s", advanced.Status, expected)
			}
		}

		recorder = doJSON(t, mux, http.MethodPost, "/orders/"+order.ID+"/advance", models.RoleAdmin, nil)
		if recorder.Code != http.StatusConflict {
			t.Errorf("advance past ready status = %d, expected 409", recorder.Code)
		}
	})

	t.Run("verify payment", func(t *testing.T) {
		recorder := doJSON(t, mux, http.MethodPost, "/orders/"+order.ID+"/verify-payment", models.RoleAdmin, nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d", recorder.Code)
		}
		var verified models.Order
		decodeInto(t, recorder, &verified)
		if !verified.PaymentVerified {
			t.Error("payment not verified")
		}
	})
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux(t)

	recorder := doJSON(t, mux, http.MethodGet, "/health", "", nil)
	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d", recorder.Code)
	}
}
