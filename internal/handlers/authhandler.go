package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobseeker-backend/internal/auth"
	"jobseeker-backend/internal/dtos"
	"jobseeker-backend/internal/models"
	"jobseeker-backend/internal/services"
	"jobseeker-backend/internal/storage"
)

// AuthHandler serves signup and login.
type AuthHandler struct {
	Users   *services.UserService
	Tokens  *auth.TokenManager
	Resumes storage.ResumeStore
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenManager, resumes storage.ResumeStore) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens, Resumes: resumes}
}

const dateLayout = "2006-01-02"

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Signup is POST /auth/signup: multipart form with profile fields and an
// optional resume file.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_of_birth, expected YYYY-MM-DD"})
		return
	}
	gradDate, err := parseDate(req.GraduationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid graduation_date, expected YYYY-MM-DD"})
		return
	}

	resumeURL := ""
	if file, err := c.FormFile("resume"); err == nil && file != nil {
		resumeURL, err = h.Resumes.Save(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store resume: " + err.Error()})
			return
		}
	}

	user, err := h.Users.Register(services.RegisterInput{
		Email:                 req.Email,
		Password:              req.Password,
		FullName:              req.FullName,
		DateOfBirth:           dob,
		Location:              req.Location,
		GraduationDate:        gradDate,
		GraduationInstitution: req.GraduationInstitution,
		TransportationMode:    req.TransportationMode,
		ResumeURL:             resumeURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	h.respondWithToken(c, user, dtos.UserSummary{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Location: user.Location,
	})
}

// Login is POST /auth/login: JSON credentials, returns a fresh token plus
// the fuller profile summary.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.Users.Verify(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	summary := dtos.UserSummary{
		ID:                    user.ID,
		Email:                 user.Email,
		FullName:              user.FullName,
		Location:              user.Location,
		GraduationInstitution: user.GraduationInstitution,
		TransportationMode:    user.TransportationMode,
	}
	if user.DateOfBirth != nil {
		summary.DateOfBirth = user.DateOfBirth.Format(dateLayout)
	}
	if user.GraduationDate != nil {
		summary.GraduationDate = user.GraduationDate.Format(dateLayout)
	}
	h.respondWithToken(c, user, summary)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, user *models.User, summary dtos.UserSummary) {
	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, dtos.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        summary,
	})
}
