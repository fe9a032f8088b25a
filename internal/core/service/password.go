package service

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is deliberately above the library default. Raising it slows both
// hashing and verification, which is the point.
const bcryptCost = 12

// passwordSymbols is the punctuation set at least one character must come from.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// HashPassword produces a salted bcrypt digest of the plaintext.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored digest. A mismatch is
// never an error, only false.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidatePassword checks the candidate against the account password policy.
// Every violated rule is reported, not just the first; an empty password
// short-circuits to the single "required" violation.
func ValidatePassword(plain string) (valid bool, violations []string) {
	if plain == "" {
		return false, []string{"La contraseña es requerida"}
	}

	if len(plain) < 8 {
		violations = append(violations, "La contraseña debe tener al menos 8 caracteres")
	}
	if !strings.ContainsFunc(plain, unicode.IsUpper) {
		violations = append(violations, "La contraseña debe contener al menos una letra mayúscula")
	}
	if !strings.ContainsFunc(plain, unicode.IsLower) {
		violations = append(violations, "La contraseña debe contener al menos una letra minúscula")
	}
	if !strings.ContainsFunc(plain, unicode.IsDigit) {
		violations = append(violations, "La contraseña debe contener al menos un número")
	}
	if !strings.ContainsAny(plain, passwordSymbols) {
		violations = append(violations, "La contraseña debe contener al menos un carácter especial")
	}

	return len(violations) == 0, violations
}
