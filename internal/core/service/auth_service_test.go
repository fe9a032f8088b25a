package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uint]*domain.User{}, nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) { return nil, nil }
func (r *stubUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }
func (r *stubUserRepo) Deactivate(_ context.Context, id uint) error {
	if u, ok := r.users[id]; ok {
		u.Activo = false
	}
	return nil
}

type stubAdminRepo struct {
	admins map[uint]*domain.Admin
	nextID uint
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: map[uint]*domain.Admin{}, nextID: 1}
}

func (r *stubAdminRepo) Create(_ context.Context, a *domain.Admin) (*domain.Admin, error) {
	a.ID = r.nextID
	r.nextID++
	r.admins[a.ID] = a
	return a, nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id uint) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return a, nil
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) List(_ context.Context) ([]domain.Admin, error)  { return nil, nil }
func (r *stubAdminRepo) Update(_ context.Context, _ *domain.Admin) error { return nil }
func (r *stubAdminRepo) Deactivate(_ context.Context, _ uint) error      { return nil }

func newTestAuthService() (*AuthService, *stubUserRepo, *stubAdminRepo) {
	users := newStubUserRepo()
	admins := newStubAdminRepo()
	svc := NewAuthService(users, admins, testTokenService(), zerolog.Nop())
	return svc, users, admins
}

func TestRegisterUserIssuesTokens(t *testing.T) {
	svc, _, _ := newTestAuthService()

	user, pair, err := svc.RegisterUser(context.Background(), ports.RegisterUserInput{
		Nombre:   "Ana",
		Apellido: "García",
		Email:    "ana@example.com",
		Password: "Segura123!",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.ID == 0 || !user.Activo {
		t.Errorf("user = %+v, want persisted active account", user)
	}
	if user.PasswordHash == "Segura123!" {
		t.Error("password stored in plaintext")
	}
	if pair == nil || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("pair = %+v, want both tokens", pair)
	}
}

func TestRegisterUserRejectsWeakPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _, err := svc.RegisterUser(context.Background(), ports.RegisterUserInput{
		Nombre:   "Ana",
		Apellido: "García",
		Email:    "ana@example.com",
		Password: "corta",
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(verr.Errors) == 0 {
		t.Error("expected the policy violations to be listed")
	}
}

func TestRegisterAdminRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.RegisterAdmin(context.Background(), ports.RegisterAdminInput{
		Nombre:   "Luis",
		Apellido: "Pérez",
		Email:    "luis@example.com",
		Password: "Segura123!",
		Rol:      "megaadmin",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}

func TestRegisterAdminDefaultsRole(t *testing.T) {
	svc, _, _ := newTestAuthService()

	admin, err := svc.RegisterAdmin(context.Background(), ports.RegisterAdminInput{
		Nombre:   "Luis",
		Apellido: "Pérez",
		Email:    "luis@example.com",
		Password: "Segura123!",
	})
	if err != nil {
		t.Fatalf("RegisterAdmin: %v", err)
	}
	if admin.Rol != domain.RoleAdmin {
		t.Errorf("rol = %q, want %q", admin.Rol, domain.RoleAdmin)
	}
}

func TestLoginUser(t *testing.T) {
	svc, users, _ := newTestAuthService()

	hash, err := HashPassword("Segura123!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	active, _ := users.Create(context.Background(), &domain.User{
		Nombre: "Ana", Apellido: "García", Email: "ana@example.com",
		PasswordHash: hash, Activo: true,
	})
	users.Create(context.Background(), &domain.User{
		Nombre: "Baja", Apellido: "Cuenta", Email: "baja@example.com",
		PasswordHash: hash, Activo: false,
	})

	t.Run("unknown email collapses to invalid credentials", func(t *testing.T) {
		_, _, err := svc.LoginUser(context.Background(), "nadie@example.com", "Segura123!")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.LoginUser(context.Background(), "ana@example.com", "Incorrecta1!")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("deactivated account", func(t *testing.T) {
		_, _, err := svc.LoginUser(context.Background(), "baja@example.com", "Segura123!")
		if !errors.Is(err, domain.ErrAccountDisabled) {
			t.Errorf("err = %v, want ErrAccountDisabled", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		user, pair, err := svc.LoginUser(context.Background(), "ana@example.com", "Segura123!")
		if err != nil {
			t.Fatalf("LoginUser: %v", err)
		}
		if user.ID != active.ID {
			t.Errorf("user.ID = %d, want %d", user.ID, active.ID)
		}
		claims, err := testTokenService().VerifyAccess(pair.AccessToken)
		if err != nil {
			t.Fatalf("VerifyAccess: %v", err)
		}
		if claims.Type != domain.TypeUser || claims.Rol != "" {
			t.Errorf("claims = %+v, want plain user without role", claims)
		}
	})
}

func TestLoginAdminDoesNotSeeUserStore(t *testing.T) {
	svc, users, _ := newTestAuthService()

	hash, err := HashPassword("Segura123!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	users.Create(context.Background(), &domain.User{
		Nombre: "Ana", Apellido: "García", Email: "ana@example.com",
		PasswordHash: hash, Activo: true,
	})

	// The same credentials are only valid in the user store.
	_, _, err = svc.LoginAdmin(context.Background(), "ana@example.com", "Segura123!")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefresh(t *testing.T) {
	svc, users, _ := newTestAuthService()

	hash, err := HashPassword("Segura123!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user, _ := users.Create(context.Background(), &domain.User{
		Nombre: "Ana", Apellido: "García", Email: "ana@example.com",
		PasswordHash: hash, Activo: true,
	})

	_, pair, err := svc.LoginUser(context.Background(), "ana@example.com", "Segura123!")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	t.Run("exchanges a valid refresh token", func(t *testing.T) {
		fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
		if err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		claims, err := testTokenService().VerifyAccess(fresh.AccessToken)
		if err != nil {
			t.Fatalf("VerifyAccess: %v", err)
		}
		if claims.ID != user.ID || claims.Email != user.Email {
			t.Errorf("claims = %+v, want the re-resolved principal", claims)
		}
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		if _, err := svc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("err = %v, want ErrTokenInvalid", err)
		}
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		users.Deactivate(context.Background(), user.ID)
		defer func() { users.users[user.ID].Activo = true }()

		if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrAccountDisabled) {
			t.Errorf("err = %v, want ErrAccountDisabled", err)
		}
	})
}

func TestResolvePrincipalUnknownType(t *testing.T) {
	svc, _, _ := newTestAuthService()
	if _, err := svc.ResolvePrincipal(context.Background(), 1, "robot"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}
