package token

import (
	"testing"
	"time"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	j := NewJWT("0123456789abcdef0123456789abcdef", time.Hour)

	tok, err := j.Generate(42, "admin")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	claims, err := j.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("username mismatch: got %q want %q", claims.Username, "admin")
	}

	id, err := claims.AdminID()
	if err != nil {
		t.Fatalf("AdminID error: %v", err)
	}
	if id != 42 {
		t.Fatalf("admin id mismatch: got %d want 42", id)
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	j := NewJWT("0123456789abcdef0123456789abcdef", -1*time.Second)

	tok, err := j.Generate(1, "admin")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := j.Validate(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	j := NewJWT("0123456789abcdef0123456789abcdef", time.Hour)
	tok, err := j.Generate(1, "admin")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	other := NewJWT("ffffffffffffffffffffffffffffffff", time.Hour)
	if _, err := other.Validate(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	j := NewJWT("0123456789abcdef0123456789abcdef", time.Hour)
	if _, err := j.Validate("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
