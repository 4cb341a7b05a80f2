package models

import "testing"

func TestRole_IDPattern(t *testing.T) {
	tests := []struct {
		role  Role
		id    string
		match bool
	}{
		{RoleStudent, "STU001", true},
		{RoleStudent, "123456", true},
		{RoleStudent, "STU1", false},
		{RoleStudent, "12345", false},
		{RoleStudent, "stu001", false},
		{RoleStaff, "EMP001", true},
		{RoleStaff, "CS101", true},
		{RoleStaff, "STU001", false},
		{RoleStaff, "E123", false},
		{RoleAdmin, "ADM001", true},
		{RoleAdmin, "ADMIN123", true},
		{RoleAdmin, "EMP001", false},
	}

	for _, test := range tests {
		pattern := test.role.IDPattern()
		if pattern == nil {
			t.Fatalf("Role(%s).IDPattern() returned nil", test.role)
		}
		if got := pattern.MatchString(test.id); got != test.match {
			t.Errorf("Role(%s) ID %q match = %v, expected %v", test.role, test.id, got, test.match)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	for _, role := range []Role{RoleStudent, RoleStaff, RoleAdmin} {
		if !role.Valid() {
			t.Errorf("Role(%s).Valid() = false", role)
		}
	}
	if Role("manager").Valid() {
		t.Error("unknown role should not be valid")
	}
}

func TestPINPattern(t *testing.T) {
	tests := []struct {
		pin   string
		match bool
	}{
		{"1234", true},
		{"0000", true},
		{"12a4", false},
		{"123", false},
		{"12345", false},
		{"", false},
	}

	for _, test := range tests {
		if got := PINPattern.MatchString(test.pin); got != test.match {
			t.Errorf("PIN %q match = %v, expected %v", test.pin, got, test.match)
		}
	}
}
