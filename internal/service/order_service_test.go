package service

import (
	"errors"
	"testing"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/repositories"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

func newOrderService(t *testing.T) (*OrderService, *repositories.MemoryOrderRepository) {
	t.Helper()
	orderRepo := repositories.NewMemoryOrderRepository()
	svc := NewOrderService(orderRepo, newTestCatalogRepo(t), newTestLogger())
	return svc, orderRepo
}

func validSubmission() SubmitOrderRequest {
	return SubmitOrderRequest{
		StudentName:       "Rahul Sharma",
		Items:             []SubmitOrderItem{{MenuItemID: 1, Quantity: 2}},
		PaymentScreenshot: "upi-842317.png",
	}
}

func TestOrderService_Submit(t *testing.T) {
	svc, _ := newOrderService(t)

	order, err := svc.Submit(validSubmission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if order.ID == "" {
		t.Error("order ID not assigned")
	}
	if order.Status != models.StatusPending {
		t.Errorf("status = %s, expected pending", order.Status)
	}
	if order.PaymentVerified {
		t.Error("new order must start unverified")
	}
	if order.Total != 30 {
		t.Errorf("total = %.2f, expected 30.00", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Name != "Samosa" || order.Items[0].Price != 15 {
		t.Errorf("unexpected order items %+v", order.Items)
	}
}

func TestOrderService_Submit_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*SubmitOrderRequest)
		sentinel error
	}{
		{"no screenshot", func(r *SubmitOrderRequest) { r.PaymentScreenshot = "" }, apperrors.ErrPaymentProofRequired},
		{"empty cart", func(r *SubmitOrderRequest) { r.Items = nil }, apperrors.ErrValidation},
		{"no student", func(r *SubmitOrderRequest) { r.StudentName = "" }, apperrors.ErrValidation},
		{"zero quantity", func(r *SubmitOrderRequest) { r.Items[0].Quantity = 0 }, apperrors.ErrValidation},
		{"unknown item", func(r *SubmitOrderRequest) { r.Items[0].MenuItemID = 99 }, apperrors.ErrNotFound},
		{"unavailable item", func(r *SubmitOrderRequest) { r.Items[0].MenuItemID = 2 }, apperrors.ErrValidation},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, orderRepo := newOrderService(t)

			req := validSubmission()
			test.mutate(&req)

			if _, err := svc.Submit(req); !errors.Is(err, test.sentinel) {
				t.Errorf("Submit error = %v, expected %v", err, test.sentinel)
			}

			// A rejected submission leaves no partial order behind.
			orders, err := orderRepo.GetAll()
			if err != nil {
				t.Fatalf("get all: %v", err)
			}
			if len(orders) != 0 {
				t.Errorf("rejected submission stored %d orders", len(orders))
			}
		})
	}
}

func TestOrderService_Submit_FreezesPrices(t *testing.T) {
	orderRepo := repositories.NewMemoryOrderRepository()
	catalogRepo := newTestCatalogRepo(t)
	svc := NewOrderService(orderRepo, catalogRepo, newTestLogger())

	order, err := svc.Submit(validSubmission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Taking the item off the menu afterwards must not touch the order.
	if err := catalogRepo.SetItemAvailability(1, false); err != nil {
		t.Fatalf("set availability: %v", err)
	}

	stored, err := svc.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if stored.Items[0].Price != 15 || stored.Total != 30 {
		t.Errorf("order changed after catalog edit: %+v", stored)
	}
}

func TestOrderService_Advance_Lifecycle(t *testing.T) {
	svc, _ := newOrderService(t)

	order, err := svc.Submit(validSubmission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	first, err := svc.Advance(models.RoleAdmin, order.ID)
	if err != nil {
		t.Fatalf("first advance: %v", err)
	}
	if first.Status != models.StatusPreparing {
		t.Errorf("status after first advance = %s, expected preparing", first.Status)
	}

	second, err := svc.Advance(models.RoleAdmin, order.ID)
	if err != nil {
		t.Fatalf("second advance: %v", err)
	}
	if second.Status != models.StatusReady {
		t.Errorf("status after second advance = %s, expected ready", second.Status)
	}

	if _, err := svc.Advance(models.RoleAdmin, order.ID); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("third advance error = %v, expected ErrConflict", err)
	}

	// The failed advance must not move the order.
	stored, _ := svc.GetOrder(order.ID)
	if stored.Status != models.StatusReady {
		t.Errorf("status after rejected advance = %s, expected ready", stored.Status)
	}
}

func TestOrderService_Advance_AdminOnly(t *testing.T) {
	svc, _ := newOrderService(t)

	order, err := svc.Submit(validSubmission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	for _, role := range []models.Role{models.RoleStudent, models.RoleStaff} {
		if _, err := svc.Advance(role, order.ID); !errors.Is(err, apperrors.ErrForbidden) {
			t.Errorf("Advance as %s error = %v, expected ErrForbidden", role, err)
		}
	}
}

func TestOrderService_VerifyPayment(t *testing.T) {
	svc, _ := newOrderService(t)

	order, err := svc.Submit(validSubmission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.VerifyPayment(models.RoleStudent, order.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("verify as student error = %v, expected ErrForbidden", err)
	}

	verified, err := svc.VerifyPayment(models.RoleAdmin, order.ID)
	if err != nil {
		t.Fatalf("verify payment: %v", err)
	}
	if !verified.PaymentVerified {
		t.Error("payment not verified")
	}

	// Verifying again is a no-op, not an error.
	again, err := svc.VerifyPayment(models.RoleAdmin, order.ID)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if !again.PaymentVerified {
		t.Error("payment flag lost on second verify")
	}
}

func TestOrderService_VerifyPayment_IndependentOfStatus(t *testing.T) {
	svc, _ := newOrderService(t)

	order, _ := svc.Submit(validSubmission())
	svc.Advance(models.RoleAdmin, order.ID)
	svc.Advance(models.RoleAdmin, order.ID)

	ready, err := svc.VerifyPayment(models.RoleAdmin, order.ID)
	if err != nil {
		t.Fatalf("verify on ready order: %v", err)
	}
	if ready.Status != models.StatusReady || !ready.PaymentVerified {
		t.Errorf("unexpected order state %+v", ready)
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	svc, _ := newOrderService(t)

	first, _ := svc.Submit(validSubmission())

	other := validSubmission()
	other.StudentName = "Someone Else"
	svc.Submit(other)

	all, err := svc.ListOrders("")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d orders, expected 2", len(all))
	}

	mine, err := svc.ListOrders("Rahul Sharma")
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != first.ID {
		t.Errorf("unexpected filtered result %+v", mine)
	}
}
