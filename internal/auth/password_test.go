package auth

import (
	"strings"
	"testing"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "simple password",
			password: "password123",
		},
		{
			name:     "symbols",
			password: "P@ssw0rd!#$%^&*()",
		},
		{
			name:     "unicode password",
			password: "пароль密码123",
		},
		{
			name:     "longer than 72 bytes",
			password: strings.Repeat("a", 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if hash == "" || hash == tt.password {
				t.Errorf("Hash() returned %q", hash)
			}
			if !hasher.Verify(tt.password, hash) {
				t.Error("Verify() returned false for correct password")
			}
			if hasher.Verify(tt.password+"x", hash) {
				t.Error("Verify() returned true for wrong password")
			}
		})
	}
}

func TestPasswordHasher_TruncatesAt72Bytes(t *testing.T) {
	hasher := NewPasswordHasher()

	base := strings.Repeat("a", 72)
	hash, err := hasher.Hash(base + "tail-that-should-be-ignored")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// Only the first 72 bytes are significant.
	if !hasher.Verify(base, hash) {
		t.Error("Verify() rejected the 72-byte prefix")
	}
	if !hasher.Verify(base+"completely different tail", hash) {
		t.Error("Verify() rejected a password differing only past byte 72")
	}
	if hasher.Verify(strings.Repeat("b", 72), hash) {
		t.Error("Verify() accepted a password differing inside the first 72 bytes")
	}
}

func TestPasswordHasher_UniqueSalts(t *testing.T) {
	hasher := NewPasswordHasher()

	hash1, err := hasher.Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	hash2, err := hasher.Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("Hash() produced identical hashes for the same password")
	}
	if !hasher.Verify("samepassword", hash1) || !hasher.Verify("samepassword", hash2) {
		t.Error("Verify() failed for one of the hashes")
	}
}
