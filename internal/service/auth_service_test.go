package service

import (
	"errors"
	"testing"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/repositories"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

func newAuthService() (*AuthService, *repositories.MemoryUserRepository) {
	repo := repositories.NewMemoryUserRepository()
	return NewAuthService(repo, newTestLogger()), repo
}

func TestAuthService_Register_FormatValidation(t *testing.T) {
	svc, _ := newAuthService()

	tests := []struct {
		name     string
		id       string
		userName string
		role     models.Role
		sentinel error
	}{
		{"valid student", "STU001", "Rahul Sharma", models.RoleStudent, nil},
		{"valid roll number", "123456", "Rahul Sharma", models.RoleStudent, nil},
		{"too short prefix", "STU1", "Rahul Sharma", models.RoleStudent, apperrors.ErrInvalidFormat},
		{"staff id as student", "EMP001", "Dr. Priya Patel", models.RoleStudent, apperrors.ErrInvalidFormat},
		{"valid staff", "EMP001", "Dr. Priya Patel", models.RoleStaff, nil},
		{"valid admin", "ADM001", "Admin User", models.RoleAdmin, nil},
		{"missing name", "STU002", "", models.RoleStudent, apperrors.ErrValidation},
		{"missing id", "", "Rahul Sharma", models.RoleStudent, apperrors.ErrValidation},
		{"unknown role", "STU003", "Rahul Sharma", models.Role("manager"), apperrors.ErrValidation},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pending, err := svc.Register(test.id, test.userName, test.role)
			if test.sentinel == nil {
				if err != nil {
					t.Fatalf("Register(%q) failed: %v", test.id, err)
				}
				if pending.ID != test.id {
					t.Errorf("pending ID = %q, expected %q", pending.ID, test.id)
				}
				return
			}
			if !errors.Is(err, test.sentinel) {
				t.Errorf("Register(%q) error = %v, expected %v", test.id, err, test.sentinel)
			}
		})
	}
}

func TestAuthService_Register_NormalizesID(t *testing.T) {
	svc, _ := newAuthService()

	pending, err := svc.Register("  stu001 ", "Rahul Sharma", models.RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if pending.ID != "STU001" {
		t.Errorf("pending ID = %q, expected STU001", pending.ID)
	}
}

func TestAuthService_Register_DuplicateID(t *testing.T) {
	svc, _ := newAuthService()

	pending, err := svc.Register("STU001", "Rahul Sharma", models.RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.SetPin(pending, "1234"); err != nil {
		t.Fatalf("set pin: %v", err)
	}

	if _, err := svc.Register("STU001", "Another Student", models.RoleStudent); !errors.Is(err, apperrors.ErrDuplicateID) {
		t.Errorf("duplicate register error = %v, expected ErrDuplicateID", err)
	}

	// The same ID under another role is fine, roles are separate spaces.
	if _, err := svc.Register("ADMIN001", "Admin User", models.RoleAdmin); err != nil {
		t.Errorf("register under other role failed: %v", err)
	}
}

func TestAuthService_SetPin(t *testing.T) {
	svc, repo := newAuthService()

	pending, err := svc.Register("STU001", "Rahul Sharma", models.RoleStudent)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, bad := range []string{"12a4", "123", "12345", ""} {
		if _, err := svc.SetPin(pending, bad); !errors.Is(err, apperrors.ErrInvalidPin) {
			t.Errorf("SetPin(%q) error = %v, expected ErrInvalidPin", bad, err)
		}
	}

	// Rejected PINs must not create the account.
	if _, err := repo.Find("STU001", models.RoleStudent); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("user exists after rejected pins: %v", err)
	}

	session, err := svc.SetPin(pending, "1234")
	if err != nil {
		t.Fatalf("set pin: %v", err)
	}
	if session.ID != "STU001" || session.Name != "Rahul Sharma" || session.Role != models.RoleStudent {
		t.Errorf("unexpected session %+v", session)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newAuthService()

	pending, _ := svc.Register("ADM001", "Admin User", models.RoleAdmin)
	if _, err := svc.SetPin(pending, "9999"); err != nil {
		t.Fatalf("set pin: %v", err)
	}

	session, err := svc.Login("ADM001", models.RoleAdmin, "9999")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Role != models.RoleAdmin || session.Name != "Admin User" {
		t.Errorf("unexpected session %+v", session)
	}

	if _, err := svc.Login("ADM001", models.RoleAdmin, "0000"); !errors.Is(err, apperrors.ErrWrongPin) {
		t.Errorf("wrong pin error = %v, expected ErrWrongPin", err)
	}
	if _, err := svc.Login("ADM999", models.RoleAdmin, "9999"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("unknown user error = %v, expected ErrUserNotFound", err)
	}
	// Right ID and PIN under the wrong role must not log in.
	if _, err := svc.Login("ADM001", models.RoleStaff, "9999"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("wrong role error = %v, expected ErrUserNotFound", err)
	}
}
