package repositories

import (
	"fmt"
	"sync"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

// MemoryUserRepository keeps accounts in process memory, keyed by the
// (id, role) pair.
type MemoryUserRepository struct {
	mutex sync.RWMutex
	users map[string]*models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*models.User)}
}

func userKey(id string, role models.Role) string {
	return fmt.Sprintf("%s|%s", id, role)
}

func (r *MemoryUserRepository) Find(id string, role models.Role) (*models.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, exists := r.users[userKey(id, role)]
	if !exists {
		return nil, fmt.Errorf("user %s (%s): %w", id, role, apperrors.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := userKey(user.ID, user.Role)
	if _, exists := r.users[key]; exists {
		return fmt.Errorf("user %s (%s): %w", user.ID, user.Role, apperrors.ErrDuplicateID)
	}
	copied := *user
	r.users[key] = &copied
	return nil
}
