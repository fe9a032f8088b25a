package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the closed set of payment states.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pendiente"
	PaymentCompleted PaymentStatus = "completado"
	PaymentRejected  PaymentStatus = "rechazado"
)

// Valid reports whether the status is one of the accepted payment states.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentCompleted || s == PaymentRejected
}

// Payment records an attempt to pay for an order. An order can accumulate
// several payments (retries after rejection).
type Payment struct {
	ID            uint            `json:"id"`
	OrderID       uint            `json:"id_orden"`
	MetodoPago    string          `json:"metodo_pago"`
	TransactionID string          `json:"id_transaccion,omitempty"`
	Monto         decimal.Decimal `json:"monto"`
	Estado        PaymentStatus   `json:"estado"`
	FechaPago     time.Time       `json:"fecha_pago"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
