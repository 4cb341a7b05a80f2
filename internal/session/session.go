// Package session persists the logged-in identity between CLI runs as
// a small YAML file under the user's config directory.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

const fileName = "session.yaml"

// ErrNoSession is returned when no one is logged in.
var ErrNoSession = errors.New("no active session")

// Store reads and writes the session file.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. An empty dir resolves to
// <user config dir>/canteen.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(configDir, "canteen")
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, fileName)
}

// Current returns the stored session, or ErrNoSession.
func (s *Store) Current() (*models.Session, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var session models.Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	if session.ID == "" || !session.Role.Valid() {
		return nil, ErrNoSession
	}
	return &session, nil
}

// Save writes the session, creating the directory if needed.
func (s *Store) Save(session *models.Session) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
