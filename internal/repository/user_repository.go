package repository

import (
	"github.com/arjunmnath/probidder-backend/internal/domain"
)

// Repositories return (nil, nil) for missing rows; services translate that into
// domain.ErrNotFound.

type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id uint64) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	Update(user *domain.User) error
	Delete(id uint64) error
}
