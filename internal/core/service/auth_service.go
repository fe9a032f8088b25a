package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
	"github.com/gameronce/commerce-api/internal/metrics"
)

// AuthService implements registration, the split user/admin logins, and the
// refresh-token exchange against two separate credential stores.
type AuthService struct {
	users  ports.UserRepository
	admins ports.AdminRepository
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, admins ports.AdminRepository, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, admins: admins, tokens: tokens, logger: logger}
}

// RegisterUser creates a customer account and returns it with a fresh token
// pair, so registration doubles as the first login.
func (s *AuthService) RegisterUser(ctx context.Context, in ports.RegisterUserInput) (*domain.User, *ports.TokenPair, error) {
	if in.Nombre == "" || in.Apellido == "" || in.Email == "" || in.Password == "" {
		return nil, nil, domain.NewValidationError("Todos los campos son requeridos")
	}
	if ok, violations := ValidatePassword(in.Password); !ok {
		return nil, nil, domain.NewValidationError("La contraseña no es válida", violations...)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Email:        in.Email,
		PasswordHash: hash,
		Telefono:     in.Telefono,
		Activo:       true,
	})
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens.IssuePair(domain.Principal{ID: user.ID, Email: user.Email, Type: domain.TypeUser})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user registered")
	return user, pair, nil
}

// RegisterAdmin creates a back-office account. No tokens are issued: the
// calling superadmin stays logged in as themselves.
func (s *AuthService) RegisterAdmin(ctx context.Context, in ports.RegisterAdminInput) (*domain.Admin, error) {
	if in.Nombre == "" || in.Apellido == "" || in.Email == "" || in.Password == "" {
		return nil, domain.NewValidationError("Nombre, apellido, email y contraseña son requeridos")
	}
	if in.Rol == "" {
		in.Rol = domain.RoleAdmin
	}
	if !in.Rol.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if ok, violations := ValidatePassword(in.Password); !ok {
		return nil, domain.NewValidationError("Contraseña no válida", violations...)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	admin, err := s.admins.Create(ctx, &domain.Admin{
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Email:        in.Email,
		PasswordHash: hash,
		Rol:          in.Rol,
		Activo:       true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("admin_id", admin.ID).Str("rol", string(admin.Rol)).Msg("admin registered")
	return admin, nil
}

// LoginUser authenticates against the user store only.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, domain.NewValidationError("Email y contraseña son requeridos")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Not-found collapses into invalid credentials so the response never
		// reveals whether the email exists.
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("user", "invalid_credentials").Inc()
			return nil, nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("user", "error").Inc()
		return nil, nil, fmt.Errorf("login user: %w", err)
	}
	if !user.IsActive() {
		metrics.LoginsTotal.WithLabelValues("user", "disabled").Inc()
		return nil, nil, domain.ErrAccountDisabled
	}
	if !CheckPassword(user.PasswordHash, password) {
		metrics.LoginsTotal.WithLabelValues("user", "invalid_credentials").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(domain.Principal{ID: user.ID, Email: user.Email, Type: domain.TypeUser})
	if err != nil {
		return nil, nil, err
	}
	metrics.LoginsTotal.WithLabelValues("user", "ok").Inc()
	return user, pair, nil
}

// LoginAdmin authenticates against the admin store only.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*domain.Admin, *ports.TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, domain.NewValidationError("Email y contraseña son requeridos")
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			metrics.LoginsTotal.WithLabelValues("admin", "invalid_credentials").Inc()
			return nil, nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("admin", "error").Inc()
		return nil, nil, fmt.Errorf("login admin: %w", err)
	}
	if !admin.IsActive() {
		metrics.LoginsTotal.WithLabelValues("admin", "disabled").Inc()
		return nil, nil, domain.ErrAccountDisabled
	}
	if !CheckPassword(admin.PasswordHash, password) {
		metrics.LoginsTotal.WithLabelValues("admin", "invalid_credentials").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(domain.Principal{ID: admin.ID, Email: admin.Email, Type: domain.TypeAdmin, Rol: admin.Rol})
	if err != nil {
		return nil, nil, err
	}
	metrics.LoginsTotal.WithLabelValues("admin", "ok").Inc()
	return admin, pair, nil
}

// Refresh exchanges a valid refresh token for a new pair. The referenced
// principal must still exist and be active.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	if refreshToken == "" {
		return nil, domain.NewValidationError("Refresh token requerido")
	}

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		result := "invalid"
		if errors.Is(err, domain.ErrTokenExpired) {
			result = "expired"
		}
		metrics.TokenRefreshTotal.WithLabelValues(result).Inc()
		return nil, err
	}

	principal, err := s.ResolvePrincipal(ctx, claims.ID, claims.Type)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("disabled").Inc()
		return nil, err
	}

	pair, err := s.tokens.IssuePair(*principal)
	if err != nil {
		return nil, err
	}
	metrics.TokenRefreshTotal.WithLabelValues("ok").Inc()
	return pair, nil
}

// ResolvePrincipal loads the account behind (id, type) and rejects missing or
// inactive ones.
func (s *AuthService) ResolvePrincipal(ctx context.Context, id uint, typ domain.PrincipalType) (*domain.Principal, error) {
	switch typ {
	case domain.TypeAdmin:
		admin, err := s.admins.FindByID(ctx, id)
		if err != nil || !admin.IsActive() {
			return nil, domain.ErrAccountDisabled
		}
		return &domain.Principal{ID: admin.ID, Email: admin.Email, Type: domain.TypeAdmin, Rol: admin.Rol}, nil
	case domain.TypeUser:
		user, err := s.users.FindByID(ctx, id)
		if err != nil || !user.IsActive() {
			return nil, domain.ErrAccountDisabled
		}
		return &domain.Principal{ID: user.ID, Email: user.Email, Type: domain.TypeUser}, nil
	default:
		return nil, domain.ErrTokenInvalid
	}
}
