package service

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
		want     []string
	}{
		{
			name:     "valid password",
			password: "Segura123!",
			valid:    true,
		},
		{
			name:     "empty short-circuits to required",
			password: "",
			valid:    false,
			want:     []string{"La contraseña es requerida"},
		},
		{
			name:     "too short",
			password: "Ab1!",
			valid:    false,
			want:     []string{"La contraseña debe tener al menos 8 caracteres"},
		},
		{
			name:     "missing uppercase",
			password: "segura123!",
			valid:    false,
			want:     []string{"La contraseña debe contener al menos una letra mayúscula"},
		},
		{
			name:     "missing lowercase",
			password: "SEGURA123!",
			valid:    false,
			want:     []string{"La contraseña debe contener al menos una letra minúscula"},
		},
		{
			name:     "missing digit",
			password: "SeguraAbc!",
			valid:    false,
			want:     []string{"La contraseña debe contener al menos un número"},
		},
		{
			name:     "missing symbol",
			password: "Segura12345",
			valid:    false,
			want:     []string{"La contraseña debe contener al menos un carácter especial"},
		},
		{
			name:     "reports every violation",
			password: "abc",
			valid:    false,
			want: []string{
				"La contraseña debe tener al menos 8 caracteres",
				"La contraseña debe contener al menos una letra mayúscula",
				"La contraseña debe contener al menos un número",
				"La contraseña debe contener al menos un carácter especial",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, violations := ValidatePassword(tt.password)
			if valid != tt.valid {
				t.Fatalf("valid = %v, want %v (violations: %v)", valid, tt.valid, violations)
			}
			if len(violations) != len(tt.want) {
				t.Fatalf("violations = %v, want %v", violations, tt.want)
			}
			for i, v := range tt.want {
				if violations[i] != v {
					t.Errorf("violation[%d] = %q, want %q", i, violations[i], v)
				}
			}
		})
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Segura123!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Segura123!" {
		t.Fatal("hash equals the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$12$") {
		t.Errorf("hash = %q, want bcrypt cost 12 prefix", hash[:7])
	}
	if !CheckPassword(hash, "Segura123!") {
		t.Error("CheckPassword rejected the original plaintext")
	}
	if CheckPassword(hash, "Segura123?") {
		t.Error("CheckPassword accepted a different plaintext")
	}
}
