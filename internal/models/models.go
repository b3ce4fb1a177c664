package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`

	FullName              string     `json:"full_name"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Location              string     `json:"location"`
	GraduationDate        *time.Time `json:"graduation_date,omitempty"`
	GraduationInstitution string     `json:"graduation_institution"`
	TransportationMode    string     `json:"transportation_mode"`
	ResumeURL             string     `json:"resume_url,omitempty"`
}

type Job struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PostedDate time.Time `gorm:"autoCreateTime" json:"posted_date"`

	Title        string   `gorm:"not null" json:"title"`
	Company      string   `gorm:"not null" json:"company"`
	Location     string   `json:"location"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	Description  string   `gorm:"type:text" json:"description"`
	Requirements string   `gorm:"type:text" json:"requirements"`
	JobType      string   `json:"job_type"`
	Category     string   `json:"category"`
	IsRemote     bool     `gorm:"default:false" json:"is_remote"`
}

// Application records that a user applied to a job. The composite unique
// index closes the check-then-insert race on concurrent duplicate submits.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`

	UserID uint   `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	JobID  uint   `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"job_id"`
	Status string `gorm:"default:'pending'" json:"status"`
}
