package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/repositories"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// PendingRegistration is the output of a successful Register call. No
// user record exists until SetPin completes.
type PendingRegistration struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
}

// AuthServiceInterface covers registration, PIN setup and login.
//
// PINs are compared in plain form, matching the reference system. There
// is no hashing and no rate limiting; do not reuse this in a real
// deployment.
type AuthServiceInterface interface {
	Register(id, name string, role models.Role) (*PendingRegistration, error)
	SetPin(pending *PendingRegistration, pin string) (*models.Session, error)
	Login(id string, role models.Role, pin string) (*models.Session, error)
}

type AuthService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *logger.Logger
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, logger *logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger.WithComponent("auth_service"),
	}
}

// Register validates the id against the role's pattern and checks for a
// duplicate (id, role) pair. On success the caller proceeds to SetPin.
func (s *AuthService) Register(id, name string, role models.Role) (*PendingRegistration, error) {
	id = strings.TrimSpace(strings.ToUpper(id))
	name = strings.TrimSpace(name)

	if id == "" || name == "" {
		s.logger.Warn("Registration rejected: missing fields", "user_id", id)
		return nil, fmt.Errorf("id and name are required: %w", apperrors.ErrValidation)
	}
	if !role.Valid() {
		s.logger.Warn("Registration rejected: unknown role", "role", role)
		return nil, fmt.Errorf("unknown role %q: %w", role, apperrors.ErrValidation)
	}
	if !role.IDPattern().MatchString(id) {
		s.logger.Warn("Registration rejected: bad id format", "user_id", id, "role", role)
		return nil, fmt.Errorf("id %q for role %s: %w", id, role, apperrors.ErrInvalidFormat)
	}

	if _, err := s.userRepo.Find(id, role); err == nil {
		s.logger.Warn("Registration rejected: duplicate id", "user_id", id, "role", role)
		return nil, fmt.Errorf("id %q for role %s: %w", id, role, apperrors.ErrDuplicateID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Error("Registration lookup failed", "user_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("Registration accepted, awaiting PIN", "user_id", id, "role", role)
	return &PendingRegistration{ID: id, Name: name, Role: role}, nil
}

// SetPin completes a pending registration: it creates the user and
// returns an established session.
func (s *AuthService) SetPin(pending *PendingRegistration, pin string) (*models.Session, error) {
	if pending == nil || pending.ID == "" {
		return nil, fmt.Errorf("no pending registration: %w", apperrors.ErrValidation)
	}
	if !models.PINPattern.MatchString(pin) {
		s.logger.Warn("PIN rejected", "user_id", pending.ID)
		return nil, fmt.Errorf("set pin for %s: %w", pending.ID, apperrors.ErrInvalidPin)
	}

	user := &models.User{
		ID:   pending.ID,
		Name: pending.Name,
		Role: pending.Role,
		PIN:  pin,
	}
	if err := s.userRepo.Create(user); err != nil {
		s.logger.Error("Failed to create user", "user_id", pending.ID, "error", err)
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "role", user.Role)
	return &models.Session{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}

// Login matches (id, role) and compares the PIN, returning a session.
func (s *AuthService) Login(id string, role models.Role, pin string) (*models.Session, error) {
	id = strings.TrimSpace(strings.ToUpper(id))

	user, err := s.userRepo.Find(id, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Login failed: user not found", "user_id", id, "role", role)
			return nil, fmt.Errorf("login %s (%s): %w", id, role, apperrors.ErrUserNotFound)
		}
		s.logger.Error("Login lookup failed", "user_id", id, "error", err)
		return nil, err
	}

	if user.PIN != pin {
		s.logger.Warn("Login failed: wrong pin", "user_id", id, "role", role)
		return nil, fmt.Errorf("login %s (%s): %w", id, role, apperrors.ErrWrongPin)
	}

	s.logger.Info("Login successful", "user_id", user.ID, "role", user.Role)
	return &models.Session{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}
