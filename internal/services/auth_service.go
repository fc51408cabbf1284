package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns user accounts: registration, credential checks and user
// CRUD. Passwords only ever exist here as bcrypt hashes.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	Phone      string
	FirstName  string
	LastName   string
	HouseNo    string
	Street     string
	City       string
	Pincode    string
	IsVerified bool
}

func (s *AuthService) Register(in RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: username and email are required", domain.ErrValidation)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:   in.Username,
		Email:      in.Email,
		PasswdHash: string(hash),
		Phone:      in.Phone,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		HouseNo:    in.HouseNo,
		Street:     in.Street,
		City:       in.City,
		Pincode:    in.Pincode,
		DateJoined: time.Now(),
		IsVerified: in.IsVerified,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswdHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetUser(id uint64) (*domain.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
	}
	return user, nil
}

// UserPatch carries partial updates; nil fields keep their stored value.
type UserPatch struct {
	Username   *string
	Email      *string
	Phone      *string
	FirstName  *string
	LastName   *string
	HouseNo    *string
	Street     *string
	City       *string
	Pincode    *string
	IsVerified *bool
}

func (s *AuthService) UpdateUser(id uint64, patch UserPatch) (*domain.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	applyString(&user.Username, patch.Username)
	applyString(&user.Email, patch.Email)
	applyString(&user.Phone, patch.Phone)
	applyString(&user.FirstName, patch.FirstName)
	applyString(&user.LastName, patch.LastName)
	applyString(&user.HouseNo, patch.HouseNo)
	applyString(&user.Street, patch.Street)
	applyString(&user.City, patch.City)
	applyString(&user.Pincode, patch.Pincode)
	if patch.IsVerified != nil {
		user.IsVerified = *patch.IsVerified
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) DeleteUser(id uint64) error {
	return s.users.Delete(id)
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
