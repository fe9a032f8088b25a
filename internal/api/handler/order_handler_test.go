package handler

import (
	"errors"
	"testing"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

func TestUpdateOrderStatusRequestAcceptsFreeTextStates(t *testing.T) {
	v := NewValidator()

	// Intermediate states set by the storefront are not enumerated anywhere;
	// only the two terminal states have special meaning, and that lives in the
	// domain, not in request validation.
	for _, estado := range []string{"pendiente", "enviado", "en preparación", "entregado", "cancelado"} {
		if err := v.Validate(&updateOrderStatusRequest{Estado: estado}); err != nil {
			t.Errorf("Validate(%q) = %v, want accepted", estado, err)
		}
	}
}

func TestUpdateOrderStatusRequestRequiresEstado(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&updateOrderStatusRequest{})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
