package mysql

import (
	"errors"
	"log"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepo{db: db}
}

// Create checks username/email uniqueness and inserts in one transaction. Two
// concurrent registrations with the same email can still both pass the check;
// that race is accepted and documented rather than closed.
func (r *userRepo) Create(user *domain.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).
			Where("username = ? OR email = ?", user.Username, user.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicate
		}
		return tx.Create(user).Error
	})
}

func (r *userRepo) FindByID(id uint64) (*domain.User, error) {
	var u domain.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("user FindByID error: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("user FindByEmail error: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Update(user *domain.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).
			Where("(username = ? OR email = ?) AND id <> ?", user.Username, user.Email, user.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicate
		}
		return tx.Save(user).Error
	})
}

// Delete removes the user and everything the user owns: listed products with
// their whole subtree, the user's bids, reviews, messages (either direction)
// and orders with their shipments. All of it commits or none of it does.
func (r *userRepo) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		var productIDs []uint64
		if err := tx.Model(&domain.Product{}).Where("user_id = ?", id).
			Pluck("id", &productIDs).Error; err != nil {
			return err
		}
		if err := deleteProductTree(tx, productIDs); err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&domain.Bid{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("seller_id = ? OR receiver_id = ?", id, id).
			Delete(&domain.Message{}).Error; err != nil {
			return err
		}

		var orderIDs []uint64
		if err := tx.Model(&domain.Order{}).Where("user_id = ?", id).
			Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&domain.Shipment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", orderIDs).Delete(&domain.Order{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&domain.User{}, id).Error
	})
}
