package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// The persistence models keep the Spanish table and column names of the
// storefront's schema. Mapping to the domain structs is explicit so the
// schema can drift without touching business code.

type userModel struct {
	ID            uint      `gorm:"primaryKey"`
	Nombre        string    `gorm:"size:100;not null"`
	Apellido      string    `gorm:"size:100;not null"`
	Email         string    `gorm:"size:255;uniqueIndex;not null"`
	Password      string    `gorm:"size:255;not null"`
	Telefono      string    `gorm:"size:30"`
	FechaRegistro time.Time `gorm:"autoCreateTime"`
	Activo        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (userModel) TableName() string { return "usuarios" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:            m.ID,
		Nombre:        m.Nombre,
		Apellido:      m.Apellido,
		Email:         m.Email,
		PasswordHash:  m.Password,
		Telefono:      m.Telefono,
		FechaRegistro: m.FechaRegistro,
		Activo:        m.Activo,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func userFromDomain(u *domain.User) *userModel {
	return &userModel{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Email:    u.Email,
		Password: u.PasswordHash,
		Telefono: u.Telefono,
		Activo:   u.Activo,
	}
}

type adminModel struct {
	ID            uint      `gorm:"primaryKey"`
	Nombre        string    `gorm:"size:100;not null"`
	Apellido      string    `gorm:"size:100;not null"`
	Email         string    `gorm:"size:255;uniqueIndex;not null"`
	Password      string    `gorm:"size:255;not null"`
	Rol           string    `gorm:"size:20;not null;default:admin"`
	FechaRegistro time.Time `gorm:"autoCreateTime"`
	Activo        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (adminModel) TableName() string { return "administradores" }

func (m *adminModel) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:            m.ID,
		Nombre:        m.Nombre,
		Apellido:      m.Apellido,
		Email:         m.Email,
		PasswordHash:  m.Password,
		Rol:           domain.AdminRole(m.Rol),
		FechaRegistro: m.FechaRegistro,
		Activo:        m.Activo,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func adminFromDomain(a *domain.Admin) *adminModel {
	return &adminModel{
		ID:       a.ID,
		Nombre:   a.Nombre,
		Apellido: a.Apellido,
		Email:    a.Email,
		Password: a.PasswordHash,
		Rol:      string(a.Rol),
		Activo:   a.Activo,
	}
}

type categoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	AdminID     uint   `gorm:"column:id_administrador;not null;index"`
	Nombre      string `gorm:"size:100;not null"`
	Descripcion string `gorm:"type:text"`
	Activo      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (categoryModel) TableName() string { return "categorias" }

func (m *categoryModel) toDomain() *domain.Category {
	return &domain.Category{
		ID:          m.ID,
		AdminID:     m.AdminID,
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		Activo:      m.Activo,
	}
}

type brandModel struct {
	ID          uint   `gorm:"primaryKey"`
	AdminID     uint   `gorm:"column:id_administrador;not null;index"`
	Nombre      string `gorm:"size:100;not null"`
	Descripcion string `gorm:"type:text"`
	Activo      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (brandModel) TableName() string { return "marcas" }

func (m *brandModel) toDomain() *domain.Brand {
	return &domain.Brand{
		ID:          m.ID,
		AdminID:     m.AdminID,
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		Activo:      m.Activo,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type productModel struct {
	ID              uint             `gorm:"primaryKey"`
	CategoryID      uint             `gorm:"column:id_categoria;not null;index"`
	BrandID         uint             `gorm:"column:id_marca;not null;index"`
	AdminID         uint             `gorm:"column:id_administrador;not null"`
	Nombre          string           `gorm:"size:255;not null;index"`
	Descripcion     string           `gorm:"type:text"`
	SKU             string           `gorm:"column:sku;size:100;uniqueIndex;not null"`
	Precio          decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	Stock           int              `gorm:"not null;default:0"`
	ImagenPrincipal *domain.ImageRef `gorm:"column:imagen_principal;type:jsonb;serializer:json"`
	Galeria         []domain.ImageRef `gorm:"column:galeria_imagenes;type:jsonb;serializer:json"`
	Activo          bool             `gorm:"not null;default:true"`
	Destacado       bool             `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (productModel) TableName() string { return "productos" }

func (m *productModel) toDomain() *domain.Product {
	return &domain.Product{
		ID:              m.ID,
		CategoryID:      m.CategoryID,
		BrandID:         m.BrandID,
		AdminID:         m.AdminID,
		Nombre:          m.Nombre,
		Descripcion:     m.Descripcion,
		SKU:             m.SKU,
		Precio:          m.Precio,
		Stock:           m.Stock,
		ImagenPrincipal: m.ImagenPrincipal,
		Galeria:         m.Galeria,
		Activo:          m.Activo,
		Destacado:       m.Destacado,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func productFromDomain(p *domain.Product) *productModel {
	return &productModel{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		BrandID:         p.BrandID,
		AdminID:         p.AdminID,
		Nombre:          p.Nombre,
		Descripcion:     p.Descripcion,
		SKU:             p.SKU,
		Precio:          p.Precio,
		Stock:           p.Stock,
		ImagenPrincipal: p.ImagenPrincipal,
		Galeria:         p.Galeria,
		Activo:          p.Activo,
		Destacado:       p.Destacado,
	}
}

type addressModel struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"column:id_usuario;not null;index"`
	Calle        string `gorm:"size:255;not null"`
	Numero       string `gorm:"size:20;not null"`
	Localidad    string `gorm:"size:100;not null"`
	Provincia    string `gorm:"size:100;not null"`
	CodigoPostal string `gorm:"column:codigo_postal;size:20;not null"`
	EsPrincipal  bool   `gorm:"column:es_principal;not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (addressModel) TableName() string { return "direcciones" }

func (m *addressModel) toDomain() *domain.Address {
	return &domain.Address{
		ID:           m.ID,
		UserID:       m.UserID,
		Calle:        m.Calle,
		Numero:       m.Numero,
		Localidad:    m.Localidad,
		Provincia:    m.Provincia,
		CodigoPostal: m.CodigoPostal,
		EsPrincipal:  m.EsPrincipal,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type cartModel struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"column:id_usuario;uniqueIndex;not null"`
	Items     []cartItemModel `gorm:"foreignKey:CartID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (cartModel) TableName() string { return "carritos" }

func (m *cartModel) toDomain() *domain.Cart {
	cart := &domain.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range m.Items {
		cart.Items = append(cart.Items, *m.Items[i].toDomain())
	}
	return cart
}

type cartItemModel struct {
	ID        uint            `gorm:"primaryKey"`
	CartID    uint            `gorm:"column:id_carrito;not null;index"`
	ProductID uint            `gorm:"column:id_producto;not null"`
	Cantidad  int             `gorm:"not null"`
	Precio    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Product   *productModel   `gorm:"foreignKey:ProductID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (cartItemModel) TableName() string { return "item_carrito" }

func (m *cartItemModel) toDomain() *domain.CartItem {
	item := &domain.CartItem{
		ID:        m.ID,
		CartID:    m.CartID,
		ProductID: m.ProductID,
		Cantidad:  m.Cantidad,
		Precio:    m.Precio,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Product != nil {
		item.Product = m.Product.toDomain()
	}
	return item
}

type orderModel struct {
	ID          uint             `gorm:"primaryKey"`
	UserID      uint             `gorm:"column:id_usuario;not null;index"`
	AddressID   uint             `gorm:"column:id_direccion_envio;not null"`
	NumeroOrden string           `gorm:"column:numero_orden;size:50;uniqueIndex;not null"`
	FechaOrden  time.Time        `gorm:"column:fecha_orden;autoCreateTime"`
	Estado      string           `gorm:"size:30;not null;default:pendiente"`
	Subtotal    decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	Total       decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	Lines       []orderLineModel `gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (orderModel) TableName() string { return "ordenes" }

func (m *orderModel) toDomain() *domain.Order {
	order := &domain.Order{
		ID:          m.ID,
		UserID:      m.UserID,
		AddressID:   m.AddressID,
		NumeroOrden: m.NumeroOrden,
		FechaOrden:  m.FechaOrden,
		Estado:      m.Estado,
		Subtotal:    m.Subtotal,
		Total:       m.Total,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for i := range m.Lines {
		order.Lines = append(order.Lines, *m.Lines[i].toDomain())
	}
	return order
}

type orderLineModel struct {
	ID             uint            `gorm:"primaryKey"`
	OrderID        uint            `gorm:"column:id_orden;not null;index"`
	ProductID      uint            `gorm:"column:id_producto;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"column:precio_unitario;type:numeric(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (orderLineModel) TableName() string { return "detalle_ordenes" }

func (m *orderLineModel) toDomain() *domain.OrderLine {
	return &domain.OrderLine{
		ID:             m.ID,
		OrderID:        m.OrderID,
		ProductID:      m.ProductID,
		Cantidad:       m.Cantidad,
		PrecioUnitario: m.PrecioUnitario,
		Subtotal:       m.Subtotal,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

type paymentModel struct {
	ID            uint            `gorm:"primaryKey"`
	OrderID       uint            `gorm:"column:id_orden;not null;index"`
	MetodoPago    string          `gorm:"column:metodo_pago;size:50;not null"`
	TransactionID string          `gorm:"column:id_transaccion;size:100"`
	Monto         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Estado        string          `gorm:"size:20;not null;default:pendiente"`
	FechaPago     time.Time       `gorm:"column:fecha_pago"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (paymentModel) TableName() string { return "pagos" }

func (m *paymentModel) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            m.ID,
		OrderID:       m.OrderID,
		MetodoPago:    m.MetodoPago,
		TransactionID: m.TransactionID,
		Monto:         m.Monto,
		Estado:        domain.PaymentStatus(m.Estado),
		FechaPago:     m.FechaPago,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type reviewModel struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"column:id_usuario;not null;index"`
	ProductID    uint   `gorm:"column:id_producto;not null;index"`
	Calificacion int    `gorm:"not null"`
	Comentario   string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (reviewModel) TableName() string { return "opiniones" }

func (m *reviewModel) toDomain() *domain.Review {
	return &domain.Review{
		ID:           m.ID,
		UserID:       m.UserID,
		ProductID:    m.ProductID,
		Calificacion: m.Calificacion,
		Comentario:   m.Comentario,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
