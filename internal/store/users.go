package store

import (
	"context"
	"errors"

	"github.com/storefront-dev/storefront/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateUsers inserts the batch in one transaction. Either every user is
// stored or none is.
func (s *Store) CreateUsers(ctx context.Context, users []models.User) ([]models.User, error) {
	if len(users) == 0 {
		return users, nil
	}

	for i := range users {
		if err := users[i].CheckColumns(); err != nil {
			return nil, err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&users).Error
	})

	if err != nil {
		return nil, userWriteError(err)
	}

	return users, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

func (s *Store) UserExists(ctx context.Context, id uint) (bool, error) {
	err := exists(s.db.WithContext(ctx), &models.User{}, id)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// UpdateUser replaces every mutable column of the user. A nil email clears it.
func (s *Store) UpdateUser(ctx context.Context, id uint, user models.User) (*models.User, error) {
	user.ID = id

	if err := user.CheckColumns(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User

		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		return tx.Model(&existing).Updates(map[string]interface{}{
			"name":    user.Name,
			"address": user.Address,
			"email":   user.Email,
		}).Error
	})

	if err != nil {
		return nil, userWriteError(translate(err))
	}

	return &user, nil
}

// DeleteUser removes the user, its orders and their association rows.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		var orderIDs []uint

		if err := tx.Model(&models.Order{}).Where("user_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}

		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderProduct{}).Error; err != nil {
				return err
			}

			if err := tx.Where("id IN ?", orderIDs).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})

	return translate(err)
}

func userWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConstraintViolation{Field: "email", Message: "Email already exists."}
	}

	return err
}
