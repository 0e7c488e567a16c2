package store

import (
	"context"
	"errors"
	"time"

	"github.com/storefront-dev/storefront/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// now is the order_date source. Millisecond precision survives both
// timestamptz and datetime(3) unchanged.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// CreateOrder stores a new order for userID. order_date is always assigned
// here; ErrNotFound means the user does not exist.
func (s *Store) CreateOrder(ctx context.Context, userID uint) (*models.Order, error) {
	order := models.Order{
		UserID:    userID,
		OrderDate: now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.User{}, userID); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(&order).Error
	})

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, translate(err)
	}

	order.Products = []models.Product{}

	return &order, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order

	if err := s.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrder returns the order with its products loaded.
func (s *Store) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}

		products, err := productsForOrder(tx, id)

		if err != nil {
			return err
		}

		order.Products = products

		return nil
	})

	if err != nil {
		return nil, translate(err)
	}

	return &order, nil
}

// DeleteOrder removes the order and its association rows. Products stay.
func (s *Store) DeleteOrder(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order

		if err := tx.First(&order, id).Error; err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}

		return tx.Delete(&order).Error
	})

	return translate(err)
}

func (s *Store) ListOrdersForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.User{}, userID); err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Order("id").Find(&orders).Error
	})

	if err != nil {
		return nil, translate(err)
	}

	return orders, nil
}

func (s *Store) ListProductsForOrder(ctx context.Context, orderID uint) ([]models.Product, error) {
	var products []models.Product

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.Order{}, orderID); err != nil {
			return err
		}

		var err error
		products, err = productsForOrder(tx, orderID)

		return err
	})

	if err != nil {
		return nil, translate(err)
	}

	return products, nil
}

// AddProductToOrder inserts the (order, product) pair and returns the order
// with its products. A concurrent insert of the same pair loses on the
// primary key and also reports ErrAlreadyAssociated.
func (s *Store) AddProductToOrder(ctx context.Context, orderID, productID uint) (*models.Order, error) {
	var order models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}

		if err := exists(tx, &models.Product{}, productID); err != nil {
			return err
		}

		var count int64

		if err := tx.Model(&models.OrderProduct{}).
			Where("order_id = ? AND product_id = ?", orderID, productID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return ErrAlreadyAssociated
		}

		link := models.OrderProduct{OrderID: orderID, ProductID: productID}

		if err := tx.Omit(clause.Associations).Create(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyAssociated
			}
			return err
		}

		products, err := productsForOrder(tx, orderID)

		if err != nil {
			return err
		}

		order.Products = products

		return nil
	})

	if err != nil {
		return nil, translate(err)
	}

	return &order, nil
}

func (s *Store) RemoveProductFromOrder(ctx context.Context, orderID, productID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.Order{}, orderID); err != nil {
			return err
		}

		if err := exists(tx, &models.Product{}, productID); err != nil {
			return err
		}

		result := tx.Where("order_id = ? AND product_id = ?", orderID, productID).Delete(&models.OrderProduct{})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrNotAssociated
		}

		return nil
	})

	return translate(err)
}

func productsForOrder(tx *gorm.DB, orderID uint) ([]models.Product, error) {
	var products []models.Product

	err := tx.Model(&models.Product{}).
		Joins("JOIN order_product ON order_product.product_id = products.id").
		Where("order_product.order_id = ?", orderID).
		Order("products.id").
		Find(&products).Error

	return products, err
}
