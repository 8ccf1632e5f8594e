package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := CreateToken(userID, "admin")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "abc", "a.b.c"} {
		if claims, err := ValidateToken(bad); err == nil && claims != nil && claims.UserID != "" {
			t.Errorf("ValidateToken(%q) accepted", bad)
		}
	}
}
