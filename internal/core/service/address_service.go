package service

import (
	"context"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// AddressService manages a user's shipping addresses.
type AddressService struct {
	addresses ports.AddressRepository
	users     ports.UserRepository
}

func NewAddressService(addresses ports.AddressRepository, users ports.UserRepository) *AddressService {
	return &AddressService{addresses: addresses, users: users}
}

func (s *AddressService) ListByUser(ctx context.Context, userID uint) ([]domain.Address, error) {
	return s.addresses.ListByUser(ctx, userID)
}

func (s *AddressService) Get(ctx context.Context, id uint) (*domain.Address, error) {
	return s.addresses.FindByID(ctx, id)
}

func (s *AddressService) Create(ctx context.Context, in ports.AddressInput) (*domain.Address, error) {
	if in.Calle == "" || in.Numero == "" || in.Localidad == "" || in.Provincia == "" || in.CodigoPostal == "" {
		return nil, domain.NewValidationError("Todos los campos de la dirección son requeridos")
	}
	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	return s.addresses.Create(ctx, &domain.Address{
		UserID:       in.UserID,
		Calle:        in.Calle,
		Numero:       in.Numero,
		Localidad:    in.Localidad,
		Provincia:    in.Provincia,
		CodigoPostal: in.CodigoPostal,
		EsPrincipal:  in.EsPrincipal,
	})
}

func (s *AddressService) Update(ctx context.Context, id uint, in ports.AddressInput) (*domain.Address, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Calle != "" {
		address.Calle = in.Calle
	}
	if in.Numero != "" {
		address.Numero = in.Numero
	}
	if in.Localidad != "" {
		address.Localidad = in.Localidad
	}
	if in.Provincia != "" {
		address.Provincia = in.Provincia
	}
	if in.CodigoPostal != "" {
		address.CodigoPostal = in.CodigoPostal
	}
	address.EsPrincipal = in.EsPrincipal
	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Delete(ctx context.Context, id uint) error {
	if _, err := s.addresses.FindByID(ctx, id); err != nil {
		return err
	}
	return s.addresses.Delete(ctx, id)
}
