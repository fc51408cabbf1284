package services

import (
	"fmt"
	"strings"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/repository"
)

type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: categoryName is required", domain.ErrValidation)
	}
	category := &domain.Category{Name: name}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(id uint64) (*domain.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %d", domain.ErrNotFound, id)
	}
	return category, nil
}

func (s *CategoryService) List() ([]domain.Category, error) {
	return s.categories.FindAll()
}

func (s *CategoryService) Update(id uint64, name *string) (*domain.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	applyString(&category.Name, name)
	if err := s.categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id uint64) error {
	return s.categories.Delete(id)
}
