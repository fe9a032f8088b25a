package service

import (
	"context"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// ReviewService manages product opinions.
type ReviewService struct {
	reviews  ports.ReviewRepository
	users    ports.UserRepository
	products ports.ProductRepository
}

func NewReviewService(reviews ports.ReviewRepository, users ports.UserRepository, products ports.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, users: users, products: products}
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID uint) ([]domain.Review, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.reviews.ListByProduct(ctx, productID)
}

func (s *ReviewService) Get(ctx context.Context, id uint) (*domain.Review, error) {
	return s.reviews.FindByID(ctx, id)
}

func (s *ReviewService) Create(ctx context.Context, in ports.ReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		UserID:       in.UserID,
		ProductID:    in.ProductID,
		Calificacion: in.Calificacion,
		Comentario:   in.Comentario,
	}
	if !review.RatingValid() {
		return nil, domain.NewValidationError("La calificación debe estar entre 1 y 5")
	}
	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	if _, err := s.products.FindByID(ctx, in.ProductID); err != nil {
		return nil, err
	}
	return s.reviews.Create(ctx, review)
}

func (s *ReviewService) Delete(ctx context.Context, id uint) error {
	if _, err := s.reviews.FindByID(ctx, id); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, id)
}
