package models

import "regexp"

// Role identifies the kind of account. It is carried as an explicit type
// end to end; staff accounts are never relabeled as admin at any boundary.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the three known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Per-role ID formats: students use STU-prefixed IDs or bare roll numbers,
// staff use EMP-prefixed IDs or a two-letter department code, admins use
// ADM or ADMIN prefixes.
var (
	studentIDPattern = regexp.MustCompile(`^(STU\d{3,}|\d{6,})$`)
	staffIDPattern   = regexp.MustCompile(`^(EMP\d{3,}|[A-Z]{2}\d{3,})$`)
	adminIDPattern   = regexp.MustCompile(`^(ADM\d{3,}|ADMIN\d{3,})$`)
)

// IDPattern returns the identifier pattern for the role, or nil for an
// unknown role.
func (r Role) IDPattern() *regexp.Regexp {
	switch r {
	case RoleStudent:
		return studentIDPattern
	case RoleStaff:
		return staffIDPattern
	case RoleAdmin:
		return adminIDPattern
	}
	return nil
}

// PINPattern matches exactly four numeric digits.
var PINPattern = regexp.MustCompile(`^\d{4}$`)

// User is an account record. The (ID, Role) pair is unique.
//
// PINs are stored and compared in plain form, matching the reference
// system. This is unsuitable for a real deployment and is kept only to
// reproduce the documented behavior.
type User struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Role Role   `json:"role" db:"role"`
	PIN  string `json:"-" db:"pin"`
}

// Session is the client-held identity record issued on login or
// registration. The JSON field for Role is "type" to keep the persisted
// shape of the original session record.
type Session struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Role Role   `json:"type" yaml:"type"`
}
