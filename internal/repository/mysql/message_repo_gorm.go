package mysql

import (
	"errors"
	"log"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"gorm.io/gorm"
)

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(message *domain.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepo) FindByID(id uint64) (*domain.Message, error) {
	var m domain.Message
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("message FindByID error: %v", err)
		return nil, err
	}
	return &m, nil
}

func (r *messageRepo) Update(message *domain.Message) error {
	return r.db.Save(message).Error
}

func (r *messageRepo) Delete(id uint64) error {
	res := r.db.Delete(&domain.Message{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *messageRepo) FindByUserID(userID uint64) ([]domain.Message, error) {
	var out []domain.Message
	if err := r.db.Where("seller_id = ? OR receiver_id = ?", userID, userID).
		Order("sent_time ASC").Find(&out).Error; err != nil {
		log.Printf("message FindByUserID error: %v", err)
		return nil, err
	}
	return out, nil
}
