package store

import "github.com/anwarkhairul/Usaha-Bersama/models"

// AddJournalEntries prepends the given entries to the journal, keeping their
// relative order. Entries are immutable once recorded.
func (s *Store) AddJournalEntries(entries ...models.JournalEntry) {
	if len(entries) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journal = append(append([]models.JournalEntry{}, entries...), s.journal...)
}

// HasJournalForTransaction reports whether the primary entry for the given
// transaction has already been posted. Approval uses this to stay idempotent.
func (s *Store) HasJournalForTransaction(trxID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id := "JRN-" + trxID
	for _, e := range s.journal {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Journal returns a copy of the journal, most recent first.
func (s *Store) Journal() []models.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.JournalEntry, len(s.journal))
	copy(out, s.journal)
	return out
}
