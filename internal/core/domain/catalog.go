package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImageRef points at an uploaded object in the media store.
// Key is kept so the object can be replaced or removed later.
type ImageRef struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Category groups products. Owned by the admin who created it.
type Category struct {
	ID          uint   `json:"id"`
	AdminID     uint   `json:"id_administrador"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activo      bool   `json:"activo"`
}

func (c *Category) IsActive() bool { return c.Activo }

// Brand identifies a product manufacturer.
type Brand struct {
	ID          uint      `json:"id"`
	AdminID     uint      `json:"id_administrador"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (b *Brand) IsActive() bool { return b.Activo }

// Product is a sellable catalog entry. Precio is decimal money, never float.
type Product struct {
	ID          uint            `json:"id"`
	CategoryID  uint            `json:"id_categoria"`
	BrandID     uint            `json:"id_marca"`
	AdminID     uint            `json:"id_administrador"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	SKU         string          `json:"sku"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	ImagenPrincipal *ImageRef   `json:"imagen_principal,omitempty"`
	Galeria     []ImageRef      `json:"galeria_imagenes,omitempty"`
	Activo      bool            `json:"activo"`
	Destacado   bool            `json:"destacado"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p *Product) IsActive() bool { return p.Activo }

// HasStock reports whether qty units can be taken from stock.
func (p *Product) HasStock(qty int) bool { return qty > 0 && p.Stock >= qty }
