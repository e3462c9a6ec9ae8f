package token

import (
	"errors"
	"testing"
	"time"

	"leadvault/internal/models"
	"leadvault/internal/shared"
)

func TestSignAndParse(t *testing.T) {
	codec := NewHS256([]byte("secret"), time.Hour)

	user := models.User{ID: "acc-1", Email: "user@demo.com", Name: "Demo User", Role: models.RoleUser}
	raw, err := codec.Sign(user)
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	got, err := codec.Parse(raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got != user {
		t.Errorf("Parse = %+v; want %+v", got, user)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	signer := NewHS256([]byte("secret"), time.Hour)
	verifier := NewHS256([]byte("other"), time.Hour)

	raw, err := signer.Sign(models.User{ID: "acc-1", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	if _, err := verifier.Parse(raw); !errors.Is(err, shared.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	codec := NewHS256([]byte("secret"), -time.Minute)

	raw, err := codec.Sign(models.User{ID: "acc-1", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	if _, err := codec.Parse(raw); !errors.Is(err, shared.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	codec := NewHS256([]byte("secret"), time.Hour)

	if _, err := codec.Parse("not-a-token"); !errors.Is(err, shared.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
