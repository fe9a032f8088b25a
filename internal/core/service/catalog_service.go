package service

import (
	"context"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// CategoryService is plain CRUD over product categories with soft-delete.
type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	if in.Nombre == "" {
		return nil, domain.NewValidationError("El nombre es requerido")
	}
	return s.categories.Create(ctx, &domain.Category{
		AdminID:     in.AdminID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Activo:      true,
	})
}

func (s *CategoryService) Update(ctx context.Context, id uint, nombre, descripcion *string) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nombre != nil {
		category.Nombre = *nombre
	}
	if descripcion != nil {
		category.Descripcion = *descripcion
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categories.Deactivate(ctx, id)
}

// BrandService is plain CRUD over brands with soft-delete.
type BrandService struct {
	brands ports.BrandRepository
}

func NewBrandService(brands ports.BrandRepository) *BrandService {
	return &BrandService{brands: brands}
}

func (s *BrandService) List(ctx context.Context) ([]domain.Brand, error) {
	return s.brands.List(ctx)
}

func (s *BrandService) Get(ctx context.Context, id uint) (*domain.Brand, error) {
	return s.brands.FindByID(ctx, id)
}

func (s *BrandService) Create(ctx context.Context, in ports.BrandInput) (*domain.Brand, error) {
	if in.Nombre == "" {
		return nil, domain.NewValidationError("El nombre es requerido")
	}
	return s.brands.Create(ctx, &domain.Brand{
		AdminID:     in.AdminID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Activo:      true,
	})
}

func (s *BrandService) Update(ctx context.Context, id uint, nombre, descripcion *string) (*domain.Brand, error) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nombre != nil {
		brand.Nombre = *nombre
	}
	if descripcion != nil {
		brand.Descripcion = *descripcion
	}
	if err := s.brands.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *BrandService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.brands.FindByID(ctx, id); err != nil {
		return err
	}
	return s.brands.Deactivate(ctx, id)
}
