// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-signing-secret"

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret)

	token, err := svc.Issue(42, "admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "admin")
	}
	if claims.ExpiresAt == nil {
		t.Fatal("claims.ExpiresAt is nil")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("token TTL = %v, want ~24h", ttl)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	token, err := NewTokenService(testSecret).Issue(1, "admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = NewTokenService("a-different-secret").Verify(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify() with wrong key error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenServiceWithTTL(testSecret, -time.Minute)

	token, err := svc.Issue(1, "admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() of expired token error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewTokenService(testSecret)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty token", "", ErrTokenMissing},
		{"garbage token", "not.a.jwt", ErrTokenInvalid},
		{"truncated token", "eyJhbGciOiJIUzI1NiJ9", ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			if !errors.Is(err, tt.want) {
				t.Errorf("Verify(%q) error = %v, want %v", tt.token, err, tt.want)
			}
		})
	}
}
