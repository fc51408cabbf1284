package mysql

import (
	"errors"
	"fmt"
	"log"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Create verifies both foreign keys; the schema has no FK constraints, so an
// order for a missing user or product has to be rejected here.
func (r *orderRepo) Create(order *domain.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Where("id = ?", order.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: user %d", domain.ErrNotFound, order.UserID)
		}
		if err := tx.Model(&domain.Product{}).Where("id = ?", order.ProductID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: product %d", domain.ErrNotFound, order.ProductID)
		}
		return tx.Create(order).Error
	})
}

func (r *orderRepo) FindByUserID(userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Where("user_id = ?", userID).
		Order("order_date DESC").Find(&out).Error; err != nil {
		log.Printf("order FindByUserID error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByUserAndID(userID, orderID uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Where("user_id = ? AND id = ?", userID, orderID).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order FindByUserAndID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) Update(order *domain.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepo) Delete(userID, orderID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND id = ?", userID, orderID).Delete(&domain.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Where("order_id = ?", orderID).Delete(&domain.Shipment{}).Error
	})
}
