package dtos

import "time"

// SignupRequest arrives as multipart form data so the resume file can ride
// along. The optional dates are "2006-01-02" strings, parsed in the handler.
type SignupRequest struct {
	Email                 string `form:"email" binding:"required"`
	Password              string `form:"password" binding:"required"`
	FullName              string `form:"full_name" binding:"required"`
	DateOfBirth           string `form:"date_of_birth"`
	Location              string `form:"location" binding:"required"`
	GraduationDate        string `form:"graduation_date"`
	GraduationInstitution string `form:"graduation_institution" binding:"required"`
	TransportationMode    string `form:"transportation_mode" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the profile slice returned alongside tokens.
type UserSummary struct {
	ID                    uint   `json:"id"`
	Email                 string `json:"email"`
	FullName              string `json:"full_name"`
	Location              string `json:"location"`
	DateOfBirth           string `json:"date_of_birth,omitempty"`
	GraduationDate        string `json:"graduation_date,omitempty"`
	GraduationInstitution string `json:"graduation_institution,omitempty"`
	TransportationMode    string `json:"transportation_mode,omitempty"`
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserSummary `json:"user"`
}

type JobCreationRequest struct {
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	Description  string   `json:"description" binding:"required"`
	Requirements string   `json:"requirements" binding:"required"`
	JobType      string   `json:"job_type" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	IsRemote     bool     `json:"is_remote"`
}

type JobExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}

type ApplicationRequest struct {
	JobID uint `json:"job_id" binding:"required"`
}

type ApplicationSubmitted struct {
	Message       string `json:"message"`
	ApplicationID uint   `json:"application_id"`
}

// ApplicationSummary joins an application to its job for listing.
type ApplicationSummary struct {
	ID        uint      `json:"id"`
	JobTitle  string    `json:"job_title"`
	Company   string    `json:"company"`
	AppliedAt time.Time `json:"applied_at"`
	Status    string    `json:"status"`
}
