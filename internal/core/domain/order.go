package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses are free text (the store front sets intermediate states),
// but these two are terminal for line edits.
const (
	OrderStatusPending   = "pendiente"
	OrderStatusDelivered = "entregado"
	OrderStatusCancelled = "cancelado"
)

// Order is the purchase aggregate. Subtotal and Total are derived from the
// lines on every line mutation and are never settable by clients once lines
// exist.
type Order struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"id_usuario"`
	AddressID   uint            `json:"id_direccion_envio"`
	NumeroOrden string          `json:"numero_orden"`
	FechaOrden  time.Time       `json:"fecha_orden"`
	Estado      string          `json:"estado"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
	Lines       []OrderLine     `json:"detalles,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LinesEditable reports whether order lines may still be added, changed or
// removed. Delivered and cancelled orders are frozen.
func (o *Order) LinesEditable() bool {
	return o.Estado != OrderStatusDelivered && o.Estado != OrderStatusCancelled
}

// OrderLine is one product/quantity/price entry. PrecioUnitario is a snapshot
// taken at creation, not a live reference to the product price.
type OrderLine struct {
	ID             uint            `json:"id"`
	OrderID        uint            `json:"id_orden"`
	ProductID      uint            `json:"id_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ComputeSubtotal returns cantidad × precio_unitario with decimal precision.
func (l OrderLine) ComputeSubtotal() decimal.Decimal {
	return l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// SumLineSubtotals re-sums every line subtotal. An empty slice yields zero,
// never an unset value.
func SumLineSubtotals(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	return total
}
