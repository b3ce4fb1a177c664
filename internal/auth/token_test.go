package auth

import (
	"testing"
	"time"
)

func TestTokenManager_IssueAndValidate(t *testing.T) {
	manager := NewTokenManager("test-secret-key")

	token, err := manager.Issue("test@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	subject, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if subject != "test@example.com" {
		t.Errorf("Validate() subject = %q, want %q", subject, "test@example.com")
	}
}

func TestTokenManager_InvalidToken(t *testing.T) {
	manager := NewTokenManager("test-secret-key")

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "random string",
			token: "not.a.valid.token",
		},
		{
			name:  "malformed jwt",
			token: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Validate(tt.token)
			if err != ErrTokenInvalid {
				t.Errorf("Validate() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	manager1 := NewTokenManager("secret-key-1")
	manager2 := NewTokenManager("secret-key-2")

	token, err := manager1.Issue("test@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := manager2.Validate(token); err != ErrTokenInvalid {
		t.Errorf("Validate() error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	manager := NewTokenManager("test-secret-key")
	manager.ttl = -time.Minute // already past expiry when issued

	token, err := manager.Issue("test@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := manager.Validate(token); err != ErrTokenExpired {
		t.Errorf("Validate() error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenManager_TTLIs30Minutes(t *testing.T) {
	if AccessTokenTTL != 30*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 30m", AccessTokenTTL)
	}
}
