package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobseeker-backend/internal/models"
)

func TestKeywordsForMajor(t *testing.T) {
	tests := []struct {
		name         string
		fieldOfStudy string
		wantFirstKw  string
	}{
		{
			name:         "exact major",
			fieldOfStudy: "computer science",
			wantFirstKw:  "developer",
		},
		{
			name:         "major embedded in longer string",
			fieldOfStudy: "BSc Computer Science, Stanford University",
			wantFirstKw:  "developer",
		},
		{
			name:         "first table entry wins over later match",
			fieldOfStudy: "computer science and data science",
			wantFirstKw:  "developer", // computer science set, not data science
		},
		{
			name:         "data science alone",
			fieldOfStudy: "data science",
			wantFirstKw:  "data",
		},
		{
			name:         "nursing",
			fieldOfStudy: "Bachelor of Nursing",
			wantFirstKw:  "nurse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keywords := keywordsForMajor(tt.fieldOfStudy)
			require.NotEmpty(t, keywords)
			assert.Equal(t, tt.wantFirstKw, keywords[0])
		})
	}

	t.Run("unknown major yields nil", func(t *testing.T) {
		assert.Nil(t, keywordsForMajor("philosophy"))
	})
}

func TestMatcherService_RecommendForUser(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, NewJobService(db).SeedIfEmpty())
	matcher := NewMatcherService(db)

	csUser := &models.User{GraduationInstitution: "Computer Science - MIT"}

	t.Run("keyword match filters by title or category", func(t *testing.T) {
		jobs, err := matcher.RecommendForUser(csUser)
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		assert.LessOrEqual(t, len(jobs), recommendedLimit)

		keywords := keywordsForMajor(csUser.GraduationInstitution)
		for _, job := range jobs {
			matched := false
			for _, kw := range keywords {
				if strings.Contains(strings.ToLower(job.Title), kw) ||
					strings.Contains(strings.ToLower(job.Category), kw) {
					matched = true
					break
				}
			}
			assert.True(t, matched, "job %q (%s) matches no keyword", job.Title, job.Category)
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first, err := matcher.RecommendForUser(csUser)
		require.NoError(t, err)
		second, err := matcher.RecommendForUser(csUser)
		require.NoError(t, err)
		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
		}
	})

	t.Run("first-match-wins over later majors", func(t *testing.T) {
		combined := &models.User{GraduationInstitution: "computer science and data science"}
		got, err := matcher.RecommendForUser(combined)
		require.NoError(t, err)
		want, err := matcher.RecommendForUser(csUser)
		require.NoError(t, err)
		require.Equal(t, len(want), len(got))
		for i := range want {
			assert.Equal(t, want[i].ID, got[i].ID)
		}
	})

	t.Run("no major match falls back to first 10", func(t *testing.T) {
		jobs, err := matcher.RecommendForUser(&models.User{GraduationInstitution: "philosophy"})
		require.NoError(t, err)
		require.Len(t, jobs, generalLimit)
		for i, job := range jobs {
			assert.Equal(t, uint(i+1), job.ID)
		}
	})

	t.Run("empty field of study falls back", func(t *testing.T) {
		jobs, err := matcher.RecommendForUser(&models.User{})
		require.NoError(t, err)
		assert.Len(t, jobs, generalLimit)
	})
}

func TestMatcherService_ZeroKeywordHitsFallsBack(t *testing.T) {
	db := setupTestDB(t)
	// Catalog with nothing a pharmacy keyword would hit.
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Job{
			Title:    fmt.Sprintf("Welder %d", i),
			Company:  "Steel Co",
			Category: "Trades",
		}).Error)
	}
	matcher := NewMatcherService(db)

	jobs, err := matcher.RecommendForUser(&models.User{GraduationInstitution: "pharmacy"})
	require.NoError(t, err)
	assert.Len(t, jobs, 3) // general fallback, bounded at 10
}

func TestMatcherService_EmptyCatalog(t *testing.T) {
	matcher := NewMatcherService(setupTestDB(t))

	jobs, err := matcher.RecommendForUser(&models.User{GraduationInstitution: "computer science"})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
