package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart holds a user's pending items. One cart per user, created lazily on the
// first add.
type Cart struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"id_usuario"`
	Items     []CartItem `json:"items,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Total sums precio × cantidad over all items.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Precio.Mul(decimal.NewFromInt(int64(it.Cantidad))))
	}
	return total
}

// CartItem is a product entry inside a cart. Precio is snapshotted from the
// product when the item is first added.
type CartItem struct {
	ID        uint            `json:"id"`
	CartID    uint            `json:"id_carrito"`
	ProductID uint            `json:"id_producto"`
	Cantidad  int             `json:"cantidad"`
	Precio    decimal.Decimal `json:"precio"`
	Product   *Product        `json:"producto,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
