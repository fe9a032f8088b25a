package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// UserRepository persists customer accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Deactivate(ctx context.Context, id uint) error
}

// AdminRepository persists back-office accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByID(ctx context.Context, id uint) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	List(ctx context.Context) ([]domain.Admin, error)
	Update(ctx context.Context, admin *domain.Admin) error
	Deactivate(ctx context.Context, id uint) error
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id uint) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Deactivate(ctx context.Context, id uint) error
}

// BrandRepository persists product brands.
type BrandRepository interface {
	Create(ctx context.Context, b *domain.Brand) (*domain.Brand, error)
	FindByID(ctx context.Context, id uint) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, b *domain.Brand) error
	Deactivate(ctx context.Context, id uint) error
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Deactivate(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// CartRepository persists carts and their items.
type CartRepository interface {
	GetOrCreate(ctx context.Context, userID uint) (*domain.Cart, error)
	FindByUser(ctx context.Context, userID uint) (*domain.Cart, error)
	FindItem(ctx context.Context, userID, itemID uint) (*domain.CartItem, error)
	FindItemByProduct(ctx context.Context, cartID, productID uint) (*domain.CartItem, error)
	AddItem(ctx context.Context, item *domain.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uint, cantidad int) error
	RemoveItem(ctx context.Context, itemID uint) error
	Clear(ctx context.Context, cartID uint) error
}

// OrderRepository persists orders and their lines. The three line mutations
// run inside a single transaction that locks the parent order row and
// rewrites subtotal/total from a full re-sum of the remaining lines.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, estado string) error
	Delete(ctx context.Context, id uint) error

	ListLines(ctx context.Context) ([]domain.OrderLine, error)
	FindLine(ctx context.Context, lineID uint) (*domain.OrderLine, error)
	AddLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, error)
	UpdateLine(ctx context.Context, lineID uint, cantidad int, precioUnitario decimal.Decimal) (*domain.OrderLine, error)
	DeleteLine(ctx context.Context, lineID uint) error
}

// AddressRepository persists shipping addresses.
type AddressRepository interface {
	Create(ctx context.Context, a *domain.Address) (*domain.Address, error)
	FindByID(ctx context.Context, id uint) (*domain.Address, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Address, error)
	Update(ctx context.Context, a *domain.Address) error
	Delete(ctx context.Context, id uint) error
}

// PaymentRepository persists order payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id uint) (*domain.Payment, error)
	ListByOrder(ctx context.Context, orderID uint) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, id uint, estado domain.PaymentStatus) error
}

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id uint) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID uint) ([]domain.Review, error)
	Delete(ctx context.Context, id uint) error
}

// ConversationRepository stores chat transcripts (document store).
type ConversationRepository interface {
	Append(ctx context.Context, conv *domain.Conversation) (string, error)
}
