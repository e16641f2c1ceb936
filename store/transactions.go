package store

import (
	"fmt"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

// AddTransaction stores a new transaction, most recent first. An empty
// status defaults to PENDING. The stored record is returned.
func (s *Store) AddTransaction(trx models.Transaction) models.Transaction {
	if trx.Status == "" {
		trx.Status = models.StatusPending
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]models.Transaction{trx}, s.transactions...)
	return trx
}

// Transaction returns the transaction with the given id.
func (s *Store) Transaction(id string) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
}

// UpdateTransactionStatus moves a PENDING transaction to a terminal status.
// The check and the write happen under one lock, so concurrent approval
// attempts resolve to exactly one winner; every other caller gets
// ErrInvalidTransition. Terminal transactions never change again.
func (s *Store) UpdateTransactionStatus(id, status string) (models.Transaction, error) {
	if status != models.StatusApproved && status != models.StatusRejected {
		return models.Transaction{}, fmt.Errorf("status %q: %w", status, ErrInvalidTransition)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		if s.transactions[i].Terminal() {
			return models.Transaction{}, fmt.Errorf("transaction %s is already %s: %w",
				id, s.transactions[i].Status, ErrInvalidTransition)
		}
		s.transactions[i].Status = status
		return s.transactions[i], nil
	}
	return models.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrInvalidTransition)
}

// Transactions returns a copy of all transactions, most recent first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// TransactionsByMember returns the member's transactions, most recent first.
func (s *Store) TransactionsByMember(memberID string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Transaction
	for _, t := range s.transactions {
		if t.MemberID == memberID {
			out = append(out, t)
		}
	}
	return out
}

// ApprovedTransactions returns only APPROVED transactions; PENDING and
// REJECTED never feed the aggregates.
func (s *Store) ApprovedTransactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Transaction
	for _, t := range s.transactions {
		if t.Status == models.StatusApproved {
			out = append(out, t)
		}
	}
	return out
}
