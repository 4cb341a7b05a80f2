package cli

import (
	"testing"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/service"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

func TestParseOrderLine(t *testing.T) {
	tests := []struct {
		raw      string
		expected service.SubmitOrderItem
		wantErr  bool
	}{
		{"1:2", service.SubmitOrderItem{MenuItemID: 1, Quantity: 2}, false},
		{"7", service.SubmitOrderItem{MenuItemID: 7, Quantity: 1}, false},
		{" 3 : 4 ", service.SubmitOrderItem{MenuItemID: 3, Quantity: 4}, false},
		{"abc", service.SubmitOrderItem{}, true},
		{"1:0", service.SubmitOrderItem{}, true},
		{"1:-2", service.SubmitOrderItem{}, true},
		{"1:x", service.SubmitOrderItem{}, true},
	}

	for _, test := range tests {
		line, err := parseOrderLine(test.raw)
		if test.wantErr {
			if err == nil {
				t.Errorf("parseOrderLine(%q) succeeded, expected error", test.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseOrderLine(%q) failed: %v", test.raw, err)
			continue
		}
		if line != test.expected {
			t.Errorf("parseOrderLine(%q) = %+v, expected %+v", test.raw, line, test.expected)
		}
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"0f0cba8e-3b14-4a79-9a66-0c5a4c61d21b", "0f0cba8e"},
		{"12345678", "12345678"},
		{"ord-7", "ord-7"},
		{"", ""},
	}

	for _, test := range tests {
		if got := shortID(test.id); got != test.expected {
			t.Errorf("shortID(%q) = %q, expected %q", test.id, got, test.expected)
		}
	}
}

func TestParseRole(t *testing.T) {
	for raw, expected := range map[string]models.Role{
		"student": models.RoleStudent,
		"staff":   models.RoleStaff,
		"admin":   models.RoleAdmin,
	} {
		role, err := parseRole(raw)
		if err != nil || role != expected {
			t.Errorf("parseRole(%q) = (%v, %v), expected %v", raw, role, err, expected)
		}
	}

	if _, err := parseRole("manager"); err == nil {
		t.Error("parseRole(manager) succeeded, expected error")
	}
}
