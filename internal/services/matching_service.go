package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"jobseeker-backend/internal/models"
)

const (
	recommendedLimit = 20
	generalLimit     = 10
)

// majorEntry ties a canonical major name to the job keywords associated
// with it. Order matters: the table is scanned top to bottom and the first
// major appearing as a substring of the user's field of study wins, so a
// slice is used rather than a map.
type majorEntry struct {
	major    string
	keywords []string
}

var majorKeywords = []majorEntry{
	{"computer science", []string{"developer", "software", "programmer", "engineer", "it", "tech", "data", "web"}},
	{"information technology", []string{"it", "developer", "software", "tech", "system", "network"}},
	{"software engineering", []string{"software", "developer", "engineer", "programmer", "tech"}},
	{"computer engineering", []string{"engineer", "software", "hardware", "developer", "tech"}},
	{"data science", []string{"data", "analyst", "scientist", "analytics", "bi", "machine learning"}},
	{"artificial intelligence", []string{"ai", "machine learning", "data", "scientist", "ml"}},
	{"cybersecurity", []string{"security", "cybersecurity", "analyst", "engineer"}},
	{"business administration", []string{"manager", "business", "admin", "operations", "consultant"}},
	{"management", []string{"manager", "director", "operations", "project", "business"}},
	{"marketing", []string{"marketing", "digital", "social media", "brand", "content"}},
	{"finance", []string{"financial", "analyst", "accountant", "finance", "banking"}},
	{"accounting", []string{"accountant", "finance", "auditor", "tax"}},
	{"economics", []string{"economist", "analyst", "financial", "research"}},
	{"mechanical engineering", []string{"mechanical", "engineer", "manufacturing", "design"}},
	{"electrical engineering", []string{"electrical", "engineer", "electronics", "power"}},
	{"civil engineering", []string{"civil", "engineer", "construction", "infrastructure"}},
	{"chemical engineering", []string{"chemical", "engineer", "process", "manufacturing"}},
	{"nursing", []string{"nurse", "healthcare", "medical", "clinical"}},
	{"medicine", []string{"doctor", "physician", "medical", "clinical", "healthcare"}},
	{"pharmacy", []string{"pharmacist", "pharmaceutical", "clinical"}},
}

// keywordsForMajor scans the table in order and returns the keyword set of
// the first major name contained in the field-of-study string, or nil.
func keywordsForMajor(fieldOfStudy string) []string {
	field := strings.ToLower(fieldOfStudy)
	for _, entry := range majorKeywords {
		if strings.Contains(field, entry.major) {
			return entry.keywords
		}
	}
	return nil
}

// MatcherService produces keyword-based job recommendations from a user's
// declared field of study. No trained model, no scoring: deterministic
// keyword expansion against the catalog.
type MatcherService struct {
	DB *gorm.DB
}

func NewMatcherService(db *gorm.DB) *MatcherService {
	return &MatcherService{DB: db}
}

// RecommendForUser returns jobs relevant to the user's graduation field.
// With no matching major, or when the keyword filter finds nothing, it
// falls back to the first jobs of the catalog. It never fails outright:
// the result is empty only when the catalog itself is empty.
func (s *MatcherService) RecommendForUser(user *models.User) ([]models.Job, error) {
	keywords := keywordsForMajor(user.GraduationInstitution)
	if keywords == nil {
		return s.generalJobs()
	}

	query := s.DB.Model(&models.Job{})
	var cond *gorm.DB
	for _, kw := range keywords {
		pattern := "%" + strings.ToLower(kw) + "%"
		clause := s.DB.Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
		if cond == nil {
			cond = clause
		} else {
			cond = cond.Or(clause)
		}
	}

	var jobs []models.Job
	if err := query.Where(cond).Order("id").Limit(recommendedLimit).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	if len(jobs) == 0 {
		return s.generalJobs()
	}
	return jobs, nil
}

func (s *MatcherService) generalJobs() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Model(&models.Job{}).Order("id").Limit(generalLimit).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to query general jobs: %w", err)
	}
	return jobs, nil
}
