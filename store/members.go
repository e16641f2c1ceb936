package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

// AddMember stores a new member. When the id is empty a sequential USR-nnn
// id is issued. Registration fails with ErrDuplicateEmail when the email is
// taken.
func (s *Store) AddMember(m models.Member) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.members {
		if strings.EqualFold(existing.Email, m.Email) {
			return models.Member{}, fmt.Errorf("%s: %w", m.Email, ErrDuplicateEmail)
		}
	}
	if m.ID == "" {
		m.ID = s.nextMemberID()
	} else {
		s.bumpMemberSeq(m.ID)
	}
	s.members = append(s.members, m)
	return m, nil
}

// UpdateMember replaces the member record with the given id.
func (s *Store) UpdateMember(m models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == m.ID {
			for j := range s.members {
				if j != i && strings.EqualFold(s.members[j].Email, m.Email) {
					return fmt.Errorf("%s: %w", m.Email, ErrDuplicateEmail)
				}
			}
			s.members[i] = m
			return nil
		}
	}
	return fmt.Errorf("member %s: %w", m.ID, ErrNotFound)
}

// DeleteMember removes the member with the given id.
func (s *Store) DeleteMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("member %s: %w", id, ErrNotFound)
}

// Member returns the member with the given id.
func (s *Store) Member(id string) (models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Member{}, fmt.Errorf("member %s: %w", id, ErrNotFound)
}

// MemberByEmail returns the member with the given email, case-insensitively.
func (s *Store) MemberByEmail(email string) (models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if strings.EqualFold(m.Email, email) {
			return m, nil
		}
	}
	return models.Member{}, fmt.Errorf("member %s: %w", email, ErrNotFound)
}

// Members returns a copy of all members.
func (s *Store) Members() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Member, len(s.members))
	copy(out, s.members)
	return out
}

// bumpMemberSeq keeps the sequence ahead of externally supplied USR-nnn ids.
// Caller must hold the write lock.
func (s *Store) bumpMemberSeq(id string) {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "USR-"))
	if err == nil && n > s.memberSeq {
		s.memberSeq = n
	}
}
