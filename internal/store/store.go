package store

import (
	"context"
	"errors"

	"github.com/storefront-dev/storefront/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyAssociated = errors.New("product already in order")
	ErrNotAssociated     = errors.New("product not in order")
)

type ConstraintViolation = models.ConstraintViolation

// Store is the persistence gateway. All reads and writes for users,
// products, orders and the order_product association go through it.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()

	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return err
}

// exists loads only the primary key, failing with gorm.ErrRecordNotFound.
func exists(tx *gorm.DB, model interface{}, id uint) error {
	return tx.Select("id").Take(model, id).Error
}
