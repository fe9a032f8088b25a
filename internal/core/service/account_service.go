package service

import (
	"context"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// UserService is the admin-facing account management surface for customers.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id uint, upd ports.UserUpdate) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Nombre != nil {
		user.Nombre = *upd.Nombre
	}
	if upd.Apellido != nil {
		user.Apellido = *upd.Apellido
	}
	if upd.Telefono != nil {
		user.Telefono = *upd.Telefono
	}
	if upd.Activo != nil {
		user.Activo = *upd.Activo
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.Deactivate(ctx, id)
}

// AdminService manages back-office accounts. Role changes stay inside the
// closed admin/superadmin set.
type AdminService struct {
	admins ports.AdminRepository
}

func NewAdminService(admins ports.AdminRepository) *AdminService {
	return &AdminService{admins: admins}
}

func (s *AdminService) List(ctx context.Context) ([]domain.Admin, error) {
	return s.admins.List(ctx)
}

func (s *AdminService) Get(ctx context.Context, id uint) (*domain.Admin, error) {
	return s.admins.FindByID(ctx, id)
}

func (s *AdminService) Update(ctx context.Context, id uint, upd ports.AdminUpdate) (*domain.Admin, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Nombre != nil {
		admin.Nombre = *upd.Nombre
	}
	if upd.Apellido != nil {
		admin.Apellido = *upd.Apellido
	}
	if upd.Rol != nil {
		if !upd.Rol.Valid() {
			return nil, domain.ErrInvalidRole
		}
		admin.Rol = *upd.Rol
	}
	if upd.Activo != nil {
		admin.Activo = *upd.Activo
	}
	if err := s.admins.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.admins.FindByID(ctx, id); err != nil {
		return err
	}
	return s.admins.Deactivate(ctx, id)
}
