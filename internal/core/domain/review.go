package domain

import "time"

// Review is a user's opinion on a product, rated 1..5.
type Review struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"id_usuario"`
	ProductID    uint      `json:"id_producto"`
	Calificacion int       `json:"calificacion"`
	Comentario   string    `json:"comentario,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RatingValid reports whether the rating is inside the accepted 1..5 range.
func (r *Review) RatingValid() bool {
	return r.Calificacion >= 1 && r.Calificacion <= 5
}
