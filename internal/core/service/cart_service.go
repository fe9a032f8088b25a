package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// CartService manages the per-user cart. Prices are snapshotted from the
// product when an item is first added; adding the same product again merges
// quantities instead of creating a second row.
type CartService struct {
	carts    ports.CartRepository
	users    ports.UserRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCartService(carts ports.CartRepository, users ports.UserRepository, products ports.ProductRepository, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, users: users, products: products, logger: logger}
}

func (s *CartService) GetByUser(ctx context.Context, userID uint) (*domain.Cart, error) {
	return s.carts.FindByUser(ctx, userID)
}

// AddProduct puts cantidad units of a product into the user's cart, creating
// the cart on first use. The product must be active and have enough stock for
// the resulting quantity.
func (s *CartService) AddProduct(ctx context.Context, userID, productID uint, cantidad int) (*domain.Cart, error) {
	if cantidad <= 0 {
		cantidad = 1
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive() {
		return nil, domain.ErrProductNotFound
	}

	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create cart: %w", err)
	}

	existing, err := s.carts.FindItemByProduct(ctx, cart.ID, productID)
	switch {
	case err == nil:
		merged := existing.Cantidad + cantidad
		if !product.HasStock(merged) {
			return nil, domain.ErrInsufficientStock
		}
		if err := s.carts.UpdateItemQuantity(ctx, existing.ID, merged); err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrCartItemNotFound):
		if !product.HasStock(cantidad) {
			return nil, domain.ErrInsufficientStock
		}
		item := &domain.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Cantidad:  cantidad,
			Precio:    product.Precio,
		}
		if err := s.carts.AddItem(ctx, item); err != nil {
			return nil, fmt.Errorf("add cart item: %w", err)
		}
	default:
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	s.logger.Debug().Uint("user_id", userID).Uint("product_id", productID).Int("cantidad", cantidad).Msg("product added to cart")
	return s.carts.FindByUser(ctx, userID)
}

// UpdateItem sets the quantity of one item, verifying cart ownership first.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uint, cantidad int) error {
	if cantidad <= 0 {
		return domain.NewValidationError("La cantidad debe ser mayor a cero")
	}

	item, err := s.carts.FindItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	product, err := s.products.FindByID(ctx, item.ProductID)
	if err != nil {
		return err
	}
	if !product.HasStock(cantidad) {
		return domain.ErrInsufficientStock
	}

	return s.carts.UpdateItemQuantity(ctx, item.ID, cantidad)
}

// RemoveItem drops one item from the user's cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	item, err := s.carts.FindItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	return s.carts.RemoveItem(ctx, item.ID)
}

// Clear removes every item from the user's cart.
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.carts.Clear(ctx, cart.ID)
}
