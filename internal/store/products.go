package store

import (
	"context"

	"github.com/storefront-dev/storefront/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error) {
	if len(products) == 0 {
		return products, nil
	}

	for i := range products {
		if err := products[i].CheckColumns(); err != nil {
			return nil, err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&products).Error
	})

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product

	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}

	return &product, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id uint, product models.Product) (*models.Product, error) {
	product.ID = id

	if err := product.CheckColumns(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product

		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		return tx.Model(&existing).Updates(map[string]interface{}{
			"product_name": product.ProductName,
			"price":        product.Price,
		}).Error
	})

	if err != nil {
		return nil, translate(err)
	}

	return &product, nil
}

// DeleteProduct removes the product from every order it appears in, then
// the product itself. Orders are left in place.
func (s *Store) DeleteProduct(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product

		if err := tx.First(&product, id).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}

		return tx.Delete(&product).Error
	})

	return translate(err)
}
