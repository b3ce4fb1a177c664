package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobseeker-backend/internal/dtos"
	"jobseeker-backend/internal/models"
)

func TestJobService_SeedIfEmpty(t *testing.T) {
	svc := NewJobService(setupTestDB(t))

	require.NoError(t, svc.SeedIfEmpty())

	var count int64
	require.NoError(t, svc.DB.Model(&models.Job{}).Count(&count).Error)
	assert.Equal(t, int64(len(seedJobs())), count)

	// Idempotent: a second call changes nothing.
	require.NoError(t, svc.SeedIfEmpty())
	var after int64
	require.NoError(t, svc.DB.Model(&models.Job{}).Count(&after).Error)
	assert.Equal(t, count, after)
}

func TestJobService_SeedSkippedWhenNonEmpty(t *testing.T) {
	svc := NewJobService(setupTestDB(t))

	require.NoError(t, svc.DB.Create(&models.Job{Title: "Solo Job", Company: "Solo Co"}).Error)
	require.NoError(t, svc.SeedIfEmpty())

	var count int64
	require.NoError(t, svc.DB.Model(&models.Job{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestJobService_Search(t *testing.T) {
	svc := NewJobService(setupTestDB(t))
	require.NoError(t, svc.SeedIfEmpty())
	total := len(seedJobs())

	t.Run("no filters returns full catalog", func(t *testing.T) {
		jobs, err := svc.Search(SearchFilters{})
		require.NoError(t, err)
		assert.Len(t, jobs, total)
	})

	t.Run("Any category equals no category filter", func(t *testing.T) {
		jobs, err := svc.Search(SearchFilters{Category: CategoryAny})
		require.NoError(t, err)
		assert.Len(t, jobs, total)
	})

	t.Run("title substring", func(t *testing.T) {
		jobs, err := svc.Search(SearchFilters{Title: "Developer"})
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for _, job := range jobs {
			assert.Contains(t, job.Title, "Developer")
		}
	})

	t.Run("category exact match", func(t *testing.T) {
		jobs, err := svc.Search(SearchFilters{Category: "Finance"})
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for _, job := range jobs {
			assert.Equal(t, "Finance", job.Category)
		}
	})

	t.Run("filters are ANDed", func(t *testing.T) {
		jobs, err := svc.Search(SearchFilters{Title: "Analyst", Category: "Marketing"})
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for _, job := range jobs {
			assert.Contains(t, job.Title, "Analyst")
			assert.Equal(t, "Marketing", job.Category)
		}
	})

	t.Run("location substring", func(t *testing.T) {
		jobs, err := svc.Search(SearchFilters{Location: "New York"})
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for _, job := range jobs {
			assert.Contains(t, job.Location, "New York")
		}
	})

	t.Run("no matches yields empty, not error", func(t *testing.T) {
		jobs, err := svc.Search(SearchFilters{Title: "Zookeeper"})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestJobService_Create(t *testing.T) {
	svc := NewJobService(setupTestDB(t))

	req := &dtos.JobCreationRequest{
		Title:        "Go Developer",
		Company:      "Gopher Works",
		Location:     "Remote",
		Description:  "Build backend services in Go.",
		Requirements: "Go, SQL",
		JobType:      "Full-time",
		Category:     "IT",
		IsRemote:     true,
	}

	job, err := svc.Create(req)
	require.NoError(t, err)
	assert.NotZero(t, job.ID)

	// No dedup: the same payload inserts again.
	again, err := svc.Create(req)
	require.NoError(t, err)
	assert.NotEqual(t, job.ID, again.ID)
}

func TestJobService_FindByID(t *testing.T) {
	svc := NewJobService(setupTestDB(t))
	require.NoError(t, svc.DB.Create(&models.Job{Title: "Only Job", Company: "Only Co"}).Error)

	job, err := svc.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Only Job", job.Title)

	_, err = svc.FindByID(999)
	assert.ErrorIs(t, err, ErrJobNotFound)
}
