// Package store is the persistence layer: a generic entity store over
// GORM plus the filter scopes and pagination used by list queries.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// Store provides typed CRUD over one record kind. All mutations are
// single transactions against the shared *gorm.DB; the database is the
// only synchronization point between concurrent requests.
type Store[M any] struct {
	db *gorm.DB
}

func New[M any](db *gorm.DB) *Store[M] {
	return &Store[M]{db: db}
}

// Create persists a new record. The model hooks assign the id and
// timestamps.
func (s *Store[M]) Create(m *M) error {
	return s.db.Create(m).Error
}

// Get returns the live record with the given id, or ErrNotFound.
func (s *Store[M]) Get(id string) (*M, error) {
	var m M
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns one page of records matching every scope, plus the total
// match count before slicing. An offset past the end yields an empty
// page with the correct count.
func (s *Store[M]) List(page Page, order string, scopes ...Scope) ([]M, int64, error) {
	// Session makes the chain reusable for the count and the page query.
	q := s.db.Model(new(M)).Scopes(scopes...).Session(&gorm.Session{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	items := make([]M, 0, page.Limit)
	err := q.Order(order).Offset(page.Offset).Limit(page.Limit).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

// Update applies merge to the stored record and persists the result.
// Read, merge and save run in one transaction so concurrent writers to
// the same id serialize; the last committed write wins, never a torn
// merge. A merge error rolls the transaction back.
func (s *Store[M]) Update(id string, merge func(*M) error) (*M, error) {
	var m M
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := merge(&m); err != nil {
			return err
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes the record with the given id, running the optional
// cascade in the same transaction. A reader never observes the parent
// gone while cascaded children remain, or the reverse.
func (s *Store[M]) Delete(id string, cascade func(tx *gorm.DB, m *M) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var m M
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if cascade != nil {
			if err := cascade(tx, &m); err != nil {
				return err
			}
		}
		return tx.Delete(&m).Error
	})
}
