package ports

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// --- Auth ---

type RegisterUserInput struct {
	Nombre   string
	Apellido string
	Email    string
	Password string
	Telefono string
}

type RegisterAdminInput struct {
	Nombre   string
	Apellido string
	Email    string
	Password string
	Rol      domain.AdminRole
}

// AuthService owns registration, the two login entry points, and the refresh
// exchange. Logins are split per store so a client-supplied type field never
// selects which credential store gets checked.
type AuthService interface {
	RegisterUser(ctx context.Context, in RegisterUserInput) (*domain.User, *TokenPair, error)
	RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*domain.Admin, error)
	LoginUser(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	LoginAdmin(ctx context.Context, email, password string) (*domain.Admin, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// ResolvePrincipal looks up the account behind verified access claims and
	// rejects missing or inactive accounts. Used by the auth middleware.
	ResolvePrincipal(ctx context.Context, id uint, typ domain.PrincipalType) (*domain.Principal, error)
}

// --- Accounts ---

type UserUpdate struct {
	Nombre   *string
	Apellido *string
	Telefono *string
	Activo   *bool
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	Update(ctx context.Context, id uint, upd UserUpdate) (*domain.User, error)
	Deactivate(ctx context.Context, id uint) error
}

type AdminUpdate struct {
	Nombre   *string
	Apellido *string
	Rol      *domain.AdminRole
	Activo   *bool
}

type AdminService interface {
	List(ctx context.Context) ([]domain.Admin, error)
	Get(ctx context.Context, id uint) (*domain.Admin, error)
	Update(ctx context.Context, id uint, upd AdminUpdate) (*domain.Admin, error)
	Deactivate(ctx context.Context, id uint) error
}

// --- Catalog ---

type CategoryInput struct {
	AdminID     uint
	Nombre      string
	Descripcion string
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id uint) (*domain.Category, error)
	Create(ctx context.Context, in CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id uint, nombre, descripcion *string) (*domain.Category, error)
	Deactivate(ctx context.Context, id uint) error
}

type BrandInput struct {
	AdminID     uint
	Nombre      string
	Descripcion string
}

type BrandService interface {
	List(ctx context.Context) ([]domain.Brand, error)
	Get(ctx context.Context, id uint) (*domain.Brand, error)
	Create(ctx context.Context, in BrandInput) (*domain.Brand, error)
	Update(ctx context.Context, id uint, nombre, descripcion *string) (*domain.Brand, error)
	Deactivate(ctx context.Context, id uint) error
}

type ProductInput struct {
	CategoryID  uint
	BrandID     uint
	AdminID     uint
	Nombre      string
	Descripcion string
	SKU         string
	Precio      decimal.Decimal
	Stock       int
	Destacado   bool
}

type ProductUpdate struct {
	CategoryID  *uint
	BrandID     *uint
	Nombre      *string
	Descripcion *string
	SKU         *string
	Precio      *decimal.Decimal
	Stock       *int
	Activo      *bool
	Destacado   *bool
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id uint) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id uint, upd ProductUpdate) (*domain.Product, error)
	Deactivate(ctx context.Context, id uint) error
	DeletePermanent(ctx context.Context, id uint) error
	AttachImage(ctx context.Context, id uint, filename, contentType string, body io.Reader) (*domain.Product, error)
}

// --- Cart ---

type CartService interface {
	GetByUser(ctx context.Context, userID uint) (*domain.Cart, error)
	AddProduct(ctx context.Context, userID, productID uint, cantidad int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID uint, cantidad int) error
	RemoveItem(ctx context.Context, userID, itemID uint) error
	Clear(ctx context.Context, userID uint) error
}

// --- Orders ---

type CreateOrderInput struct {
	UserID    uint
	AddressID uint
}

type AddLineInput struct {
	OrderID        uint
	ProductID      uint
	Cantidad       int
	PrecioUnitario *decimal.Decimal // nil → snapshot the current product price
}

type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, estado string) (*domain.Order, error)
	Delete(ctx context.Context, id uint) error

	ListLines(ctx context.Context) ([]domain.OrderLine, error)
	GetLine(ctx context.Context, lineID uint) (*domain.OrderLine, error)
	AddLine(ctx context.Context, in AddLineInput) (*domain.OrderLine, error)
	UpdateLine(ctx context.Context, lineID uint, cantidad *int, precioUnitario *decimal.Decimal) (*domain.OrderLine, error)
	DeleteLine(ctx context.Context, lineID uint) error
}

// --- Addresses / payments / reviews ---

type AddressInput struct {
	UserID       uint
	Calle        string
	Numero       string
	Localidad    string
	Provincia    string
	CodigoPostal string
	EsPrincipal  bool
}

type AddressService interface {
	ListByUser(ctx context.Context, userID uint) ([]domain.Address, error)
	Get(ctx context.Context, id uint) (*domain.Address, error)
	Create(ctx context.Context, in AddressInput) (*domain.Address, error)
	Update(ctx context.Context, id uint, in AddressInput) (*domain.Address, error)
	Delete(ctx context.Context, id uint) error
}

type CreatePaymentInput struct {
	OrderID    uint
	MetodoPago string
	Monto      decimal.Decimal
}

type PaymentService interface {
	Get(ctx context.Context, id uint) (*domain.Payment, error)
	ListByOrder(ctx context.Context, orderID uint) ([]domain.Payment, error)
	Create(ctx context.Context, in CreatePaymentInput) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id uint, estado domain.PaymentStatus) (*domain.Payment, error)
}

type ReviewInput struct {
	UserID       uint
	ProductID    uint
	Calificacion int
	Comentario   string
}

type ReviewService interface {
	ListByProduct(ctx context.Context, productID uint) ([]domain.Review, error)
	Get(ctx context.Context, id uint) (*domain.Review, error)
	Create(ctx context.Context, in ReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, id uint) error
}

// --- Chat assistant ---

type ChatTurn struct {
	Usuario   string `json:"usuario"`
	Asistente string `json:"asistente"`
}

type ChatInput struct {
	Mensaje   string
	Tematica  string
	Historial []ChatTurn
}

type ChatResult struct {
	Respuesta string
	Tematica  string
	Usage     domain.ChatUsage
}

type ChatService interface {
	Process(ctx context.Context, in ChatInput) (*ChatResult, error)
}

// --- Notifications ---

// OrderNotification is the payload handed to the async dispatcher after an
// order is created.
type OrderNotification struct {
	NumeroOrden string
	Email       string
	Nombre      string
	Total       decimal.Decimal
}

// NotificationService delivers one order notification (email today).
type NotificationService interface {
	Notify(ctx context.Context, n OrderNotification) error
}
