package jwt

import (
	"errors"
	"testing"
	"time"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateAccessToken("M12345", []string{"ADMIN", "LECTURE"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.Matricule != "M12345" {
		t.Fatalf("unexpected matricule %q", claims.Matricule)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected token type %q", claims.TokenType)
	}
	if len(claims.Habilitations) != 2 {
		t.Fatalf("expected 2 habilitations, got %v", claims.Habilitations)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token must not read as refresh")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateRefreshToken("M12345")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("expected a refresh token")
	}
	if len(claims.Habilitations) != 0 {
		t.Fatalf("refresh token must not carry habilitations")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateAccessToken("M12345", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewHMACService("other-access", "other-refresh", 15*time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken("M12345", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := other.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := svc.ValidateToken("garbage"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
