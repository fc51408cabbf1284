package mysql

import (
	"errors"
	"log"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"gorm.io/gorm"
)

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

// Name uniqueness is checked here, not constrained in the schema, so the same
// read-then-write race window as user registration applies.
func (r *categoryRepo) Create(category *domain.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Category{}).
			Where("name = ?", category.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicate
		}
		return tx.Create(category).Error
	})
}

func (r *categoryRepo) FindByID(id uint64) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("category FindByID error: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) FindAll() ([]domain.Category, error) {
	var out []domain.Category
	if err := r.db.Order("id ASC").Find(&out).Error; err != nil {
		log.Printf("category FindAll error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *categoryRepo) Update(category *domain.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Exec("DELETE FROM category_products WHERE category_id = ?", id).Error
	})
}
