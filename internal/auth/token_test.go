package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/autofuellanka/portal-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	user := &domain.User{ID: 12, Email: "tech@autofuellanka.lk", Role: domain.RoleTechnician}

	token, exp, err := tm.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatal("expiry should be in the future")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 12 || claims.Role != domain.RoleTechnician {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", 60)
	other := NewTokenManager("secret-b", 60)

	token, _, err := tm.GenerateToken(&domain.User{ID: 1, Role: domain.RoleCustomer})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	claims := &Claims{
		UserID: 3,
		Role:   domain.RoleFinance,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := tm.ParseToken(signed); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePassword(hash, "s3cret"); err != nil {
		t.Fatalf("ComparePassword: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("wrong password must not match")
	}
}
