package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"jobseeker-backend/internal/dtos"
	"jobseeker-backend/internal/models"
	"jobseeker-backend/internal/notify"
)

// ErrAlreadyApplied is returned when a (user, job) application already exists.
var ErrAlreadyApplied = errors.New("already applied")

// ApplicationService owns the application ledger: one record per
// (user, job) pair, confirmation notification on submit.
type ApplicationService struct {
	DB       *gorm.DB
	Notifier notify.Notifier
}

func NewApplicationService(db *gorm.DB, notifier notify.Notifier) *ApplicationService {
	return &ApplicationService{DB: db, Notifier: notifier}
}

// Submit records an application for the user. The composite unique index on
// (user_id, job_id) makes the duplicate check race-free: a concurrent
// duplicate loses at insert time and maps to ErrAlreadyApplied. The
// confirmation notification is fired in the background; its failure never
// affects the response.
func (s *ApplicationService) Submit(user *models.User, jobID uint) (*models.Application, error) {
	var count int64
	if err := s.DB.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", user.ID, jobID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyApplied
	}

	var job models.Job
	if err := s.DB.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	application := &models.Application{
		UserID: user.ID,
		JobID:  jobID,
		Status: "pending",
	}
	if err := s.DB.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	go func(email, title, company string) {
		if err := s.Notifier.SendApplicationConfirmation(email, title, company); err != nil {
			log.Printf("⚠️ Confirmation email failed for %s: %v", email, err)
		}
	}(user.Email, job.Title, job.Company)

	return application, nil
}

// ListForUser returns the user's applications joined to their jobs.
// Applications whose job no longer resolves are skipped, not errors.
func (s *ApplicationService) ListForUser(user *models.User) ([]dtos.ApplicationSummary, error) {
	var applications []models.Application
	if err := s.DB.Where("user_id = ?", user.ID).Order("id").Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	summaries := make([]dtos.ApplicationSummary, 0, len(applications))
	for _, app := range applications {
		var job models.Job
		if err := s.DB.First(&job, "id = ?", app.JobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load job %d: %w", app.JobID, err)
		}
		summaries = append(summaries, dtos.ApplicationSummary{
			ID:        app.ID,
			JobTitle:  job.Title,
			Company:   job.Company,
			AppliedAt: app.AppliedAt,
			Status:    app.Status,
		})
	}
	return summaries, nil
}
