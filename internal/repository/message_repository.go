package repository

import (
	"github.com/arjunmnath/probidder-backend/internal/domain"
)

type MessageRepository interface {
	Create(message *domain.Message) error
	FindByID(id uint64) (*domain.Message, error)
	Update(message *domain.Message) error
	Delete(id uint64) error
	// FindByUserID returns messages the user sent or received.
	FindByUserID(userID uint64) ([]domain.Message, error)
}
