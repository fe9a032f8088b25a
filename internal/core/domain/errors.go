package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared across services. The HTTP layer maps these to status
// codes and Spanish client-facing messages in one place (internal/api).
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("access forbidden")

	ErrEmailTaken = errors.New("email already in use")
	ErrSKUTaken   = errors.New("sku already in use")

	ErrUserNotFound      = errors.New("user not found")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrAddressNotFound   = errors.New("address not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderLineNotFound = errors.New("order line not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrReviewNotFound    = errors.New("review not found")

	ErrOrderLocked       = errors.New("order no longer accepts line changes")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidRole       = errors.New("invalid admin role")
	ErrChatUnavailable   = errors.New("chat provider unavailable")
)

// ValidationError carries field-level messages so the HTTP layer can render
// the {"message": …, "errors": […]} envelope.
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Errors, "; ")
}

// NewValidationError builds a ValidationError with the given summary message.
func NewValidationError(message string, errs ...string) *ValidationError {
	return &ValidationError{Message: message, Errors: errs}
}
