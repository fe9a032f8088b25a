package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// CartRepository persists carts and their items.
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// GetOrCreate returns the user's cart, creating an empty one on first access.
func (r *CartRepository) GetOrCreate(ctx context.Context, userID uint) (*domain.Cart, error) {
	var m cartModel
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Where("id_usuario = ?", userID).
		First(&m).Error
	if err == nil {
		return m.toDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m = cartModel{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *CartRepository) FindByUser(ctx context.Context, userID uint) (*domain.Cart, error) {
	var m cartModel
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Where("id_usuario = ?", userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

// FindItem locates an item by id and verifies, through the join, that it sits
// in the given user's cart.
func (r *CartRepository) FindItem(ctx context.Context, userID, itemID uint) (*domain.CartItem, error) {
	var m cartItemModel
	err := r.db.WithContext(ctx).
		Joins("JOIN carritos ON carritos.id = item_carrito.id_carrito").
		Where("item_carrito.id = ? AND carritos.id_usuario = ?", itemID, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *CartRepository) FindItemByProduct(ctx context.Context, cartID, productID uint) (*domain.CartItem, error) {
	var m cartItemModel
	err := r.db.WithContext(ctx).
		Where("id_carrito = ? AND id_producto = ?", cartID, productID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *CartRepository) AddItem(ctx context.Context, item *domain.CartItem) error {
	m := &cartItemModel{
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Cantidad:  item.Cantidad,
		Precio:    item.Precio,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	return nil
}

func (r *CartRepository) UpdateItemQuantity(ctx context.Context, itemID uint, cantidad int) error {
	res := r.db.WithContext(ctx).Model(&cartItemModel{}).Where("id = ?", itemID).Update("cantidad", cantidad)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, itemID uint) error {
	res := r.db.WithContext(ctx).Delete(&cartItemModel{}, itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).Where("id_carrito = ?", cartID).Delete(&cartItemModel{}).Error
}
