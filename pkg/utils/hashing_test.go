package utils

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("password stored in the clear")
	}
	if err := ComparePasswords(hash, "s3cret-pass"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := ComparePasswords(hash, "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken: %v", err)
	}
	b, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken: %v", err)
	}
	if len(a) != 64 {
		t.Errorf("token length = %d hex chars, want 64", len(a))
	}
	if a == b {
		t.Error("two generated tokens collide")
	}
	if _, err := GenerateSecureToken(0); err == nil {
		t.Error("zero-length token accepted")
	}
	if HashToken(a) == a {
		t.Error("HashToken returned its input")
	}
	if HashToken(a) != HashToken(a) {
		t.Error("HashToken not deterministic")
	}
}
