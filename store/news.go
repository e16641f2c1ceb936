package store

import (
	"fmt"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

// AddNews prepends an announcement.
func (s *Store) AddNews(n models.News) models.News {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.news = append([]models.News{n}, s.news...)
	return n
}

// DeleteNews removes the announcement with the given id.
func (s *Store) DeleteNews(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.news {
		if s.news[i].ID == id {
			s.news = append(s.news[:i], s.news[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("news %s: %w", id, ErrNotFound)
}

// News returns a copy of all announcements, most recent first.
func (s *Store) News() []models.News {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.News, len(s.news))
	copy(out, s.news)
	return out
}
