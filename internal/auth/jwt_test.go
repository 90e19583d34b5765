package auth

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "amara", "Admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "amara" || claims.Role != "Admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken(1, "x", "Sales Personnel")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Error("tampered token validated")
	}
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}
