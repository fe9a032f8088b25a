package domain

import "time"

// Address is a user's shipping address.
type Address struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"id_usuario"`
	Calle        string    `json:"calle"`
	Numero       string    `json:"numero"`
	Localidad    string    `json:"localidad"`
	Provincia    string    `json:"provincia"`
	CodigoPostal string    `json:"codigo_postal"`
	EsPrincipal  bool      `json:"es_principal"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
