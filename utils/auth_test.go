package utils

import (
	"testing"

	"todoapi/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pass1234")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "pass1234" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPassword("pass1234", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenPairRoundTrip(t *testing.T) {
	user := models.User{ID: 42, Username: "alice"}

	access, refresh, err := GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if access == "" || refresh == "" || access == refresh {
		t.Fatalf("bad token pair: access=%q refresh=%q", access, refresh)
	}

	id, err := ParseToken(access, TokenTypeAccess)
	if err != nil {
		t.Fatalf("ParseToken(access): %v", err)
	}
	if id != 42 {
		t.Errorf("access user id = %d, want 42", id)
	}

	id, err = ParseToken(refresh, TokenTypeRefresh)
	if err != nil {
		t.Fatalf("ParseToken(refresh): %v", err)
	}
	if id != 42 {
		t.Errorf("refresh user id = %d, want 42", id)
	}
}

func TestParseToken_RejectsWrongType(t *testing.T) {
	access, refresh, err := GenerateTokenPair(models.User{ID: 1})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := ParseToken(access, TokenTypeRefresh); err == nil {
		t.Error("access token accepted as refresh")
	}
	if _, err := ParseToken(refresh, TokenTypeAccess); err == nil {
		t.Error("refresh token accepted as access")
	}
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(bad, TokenTypeAccess); err == nil {
			t.Errorf("ParseToken(%q) should fail", bad)
		}
	}
}
