package store

import (
	"fmt"

	"github.com/anwarkhairul/Usaha-Bersama/models"
)

// AddProduct stores a new product.
func (s *Store) AddProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return p
}

// UpdateProduct replaces the product with the given id and returns the
// previous record, so callers can detect a stock increase.
func (s *Store) UpdateProduct(p models.Product) (prev models.Product, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			prev = s.products[i]
			s.products[i] = p
			return prev, nil
		}
	}
	return models.Product{}, fmt.Errorf("product %s: %w", p.ID, ErrNotFound)
}

// AdjustStock changes a product's stock by delta (negative for sales) and
// returns the updated record. Stock never goes below zero.
func (s *Store) AdjustStock(id string, delta int64) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if s.products[i].Stock+delta < 0 {
			return models.Product{}, fmt.Errorf("product %s: insufficient stock", id)
		}
		s.products[i].Stock += delta
		return s.products[i], nil
	}
	return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
}

// DeleteProduct removes the product with the given id.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %s: %w", id, ErrNotFound)
}

// Product returns the product with the given id.
func (s *Store) Product(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
}

// Products returns a copy of all products.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}
