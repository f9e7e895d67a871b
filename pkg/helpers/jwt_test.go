package helpers

import (
	"testing"
	"time"
)

func testJWT() *JWTManager {
	return NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 720*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testJWT()
	in := AccessTokenInput{
		UserID: "u1",
		Name:   "Alamgir",
		Email:  "alam@example.com",
		Phone:  "01712345678",
		Role:   "admin",
	}
	tok, exp, err := m.GenerateAccessToken(in)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if time.Until(exp) > 15*time.Minute || time.Until(exp) < 14*time.Minute {
		t.Errorf("expiry %v not ~15m out", exp)
	}
	claims, err := m.ParseAccessToken(tok)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "alam@example.com" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := testJWT()
	tok, _, err := m.GenerateRefreshToken("u1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	claims, err := m.ParseRefreshToken(tok)
	if err != nil {
		t.Fatalf("ParseRefreshToken: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("UserID = %q", claims.UserID)
	}
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	m := testJWT()
	access, _, _ := m.GenerateAccessToken(AccessTokenInput{UserID: "u1"})
	refresh, _, _ := m.GenerateRefreshToken("u1")

	if _, err := m.ParseRefreshToken(access); err == nil {
		t.Error("access token accepted as refresh token")
	}
	if _, err := m.ParseAccessToken(refresh); err == nil {
		t.Error("refresh token accepted as access token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewJWTManager("a", "r", -time.Minute, -time.Minute)
	tok, _, err := m.GenerateAccessToken(AccessTokenInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := m.ParseAccessToken(tok); err == nil {
		t.Error("expired token accepted")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	tok, _, err := testJWT().GenerateAccessToken(AccessTokenInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	other := NewJWTManager("different", "different", time.Minute, time.Minute)
	if _, err := other.ParseAccessToken(tok); err == nil {
		t.Error("token verified under the wrong secret")
	}
}
