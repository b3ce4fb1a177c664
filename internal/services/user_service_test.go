package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	user, err := svc.Register(RegisterInput{
		Email:                 "alice@example.com",
		Password:              "secret123",
		FullName:              "Alice Doe",
		Location:              "Boston, MA",
		GraduationInstitution: "Computer Science - MIT",
		TransportationMode:    "car",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.HashedPassword)

	t.Run("duplicate email fails", func(t *testing.T) {
		_, err := svc.Register(RegisterInput{
			Email:    "alice@example.com",
			Password: "другойpass",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("distinct email succeeds", func(t *testing.T) {
		other, err := svc.Register(RegisterInput{
			Email:    "bob@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEqual(t, user.ID, other.ID)
	})
}

func TestUserService_Verify(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	_, err := svc.Register(RegisterInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Verify("alice@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Verify("alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email fails identically", func(t *testing.T) {
		_, err := svc.Verify("nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_FindByEmail(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	_, err := svc.Register(RegisterInput{Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	user, err := svc.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.FindByEmail("gone@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
