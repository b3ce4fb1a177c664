package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"jobseeker-backend/internal/auth"
	"jobseeker-backend/internal/models"
)

var (
	// ErrEmailTaken is returned when registering with an email that exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on login failure. It is deliberately
	// the same for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when a token subject no longer exists.
	ErrUserNotFound = errors.New("user not found")
)

// RegisterInput carries the profile fields collected at signup.
type RegisterInput struct {
	Email                 string
	Password              string
	FullName              string
	DateOfBirth           *time.Time
	Location              string
	GraduationDate        *time.Time
	GraduationInstitution string
	TransportationMode    string
	ResumeURL             string
}

// UserService owns user identity: registration and password verification.
type UserService struct {
	DB     *gorm.DB
	Hasher *auth.PasswordHasher
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db, Hasher: auth.NewPasswordHasher()}
}

// Register creates a user, rejecting duplicate emails. The unique index on
// email backs up the pre-check under concurrency.
func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:                 in.Email,
		HashedPassword:        hash,
		FullName:              in.FullName,
		DateOfBirth:           in.DateOfBirth,
		Location:              in.Location,
		GraduationDate:        in.GraduationDate,
		GraduationInstitution: in.GraduationInstitution,
		TransportationMode:    in.TransportationMode,
		ResumeURL:             in.ResumeURL,
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Verify checks the email/password pair. Both failure modes collapse into
// ErrInvalidCredentials so callers learn nothing about which factor failed.
func (s *UserService) Verify(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !s.Hasher.Verify(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// FindByEmail resolves a token subject back to a user record.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
