// Package store holds the in-memory entity sets that are the source of
// truth while the process runs. A single Store handle is created at startup,
// seeded from the durable database, and passed to every component. Mutations
// commit here first; mirroring to the durable store happens asynchronously
// through the outbox.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition is returned when a transaction status change is
	// attempted on a missing or already-terminal transaction.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrDuplicateEmail is returned when a member registration collides with
	// an existing email address.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store is the in-memory database. All exported methods are safe for
// concurrent use; reads copy out so callers never observe later mutations.
type Store struct {
	mu sync.RWMutex

	members       []models.Member
	transactions  []models.Transaction
	products      []models.Product
	journal       []models.JournalEntry
	news          []models.News
	notifications []models.Notification
	settings      models.Settings
	shuConfig     models.SHUConfig

	memberSeq int
}

// New returns an empty store with default settings and SHU configuration.
func New() *Store {
	return &Store{
		settings:  models.DefaultSettings(),
		shuConfig: models.DefaultSHUConfig(),
	}
}

// Settings returns the cooperative profile.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetSettings replaces the cooperative profile.
func (s *Store) SetSettings(v models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = v
}

// SHUConfig returns the current SHU configuration.
func (s *Store) SHUConfig() models.SHUConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shuConfig
}

// SetSHUConfig replaces the SHU configuration.
func (s *Store) SetSHUConfig(v models.SHUConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shuConfig = v
}

// nextMemberID issues sequential ids in the USR-001 form. Caller must hold
// the write lock.
func (s *Store) nextMemberID() string {
	s.memberSeq++
	return fmt.Sprintf("USR-%03d", s.memberSeq)
}
