package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"jobseeker-backend/internal/dtos"
	"jobseeker-backend/internal/models"
)

// ErrJobNotFound is returned when a job id does not resolve.
var ErrJobNotFound = errors.New("job not found")

// CategoryAny is the sentinel category value that disables the filter.
const CategoryAny = "Any"

// SearchFilters are the optional job search criteria. Empty fields are
// ignored; provided filters are ANDed.
type SearchFilters struct {
	Title    string
	Location string
	Category string
}

// JobService owns the job catalog.
type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// SeedIfEmpty populates the catalog with the curated demo dataset the first
// time it is called on an empty catalog. Once jobs exist it is a no-op.
func (s *JobService) SeedIfEmpty() error {
	var count int64
	if err := s.DB.Model(&models.Job{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}
	if count > 0 {
		return nil
	}

	jobs := seedJobs()
	if err := s.DB.Create(&jobs).Error; err != nil {
		return fmt.Errorf("failed to seed jobs: %w", err)
	}
	log.Printf("Seeded catalog with %d sample jobs", len(jobs))
	return nil
}

// Search returns jobs matching the filters: substring containment on title
// and location, exact match on category unless the "Any" sentinel.
func (s *JobService) Search(f SearchFilters) ([]models.Job, error) {
	query := s.DB.Model(&models.Job{}).Order("id")
	if f.Title != "" {
		query = query.Where("title LIKE ?", "%"+f.Title+"%")
	}
	if f.Location != "" {
		query = query.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.Category != "" && f.Category != CategoryAny {
		query = query.Where("category = ?", f.Category)
	}

	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	return jobs, nil
}

// Create inserts a job unconditionally. The catalog does not deduplicate.
func (s *JobService) Create(req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Description:  req.Description,
		Requirements: req.Requirements,
		JobType:      req.JobType,
		Category:     req.Category,
		IsRemote:     req.IsRemote,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// FindByID resolves a job id.
func (s *JobService) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}
