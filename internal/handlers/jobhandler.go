package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobseeker-backend/internal/dtos"
	"jobseeker-backend/internal/services"
)

// JobHandler serves the job catalog and recommendations.
type JobHandler struct {
	Jobs    *services.JobService
	Matcher *services.MatcherService
	LLM     *services.LLMService
}

func NewJobHandler(jobs *services.JobService, matcher *services.MatcherService, llm *services.LLMService) *JobHandler {
	return &JobHandler{Jobs: jobs, Matcher: matcher, LLM: llm}
}

// ListJobs is GET /jobs/ with optional title/location/category filters.
// The demo catalog is seeded on the first call against an empty database.
func (h *JobHandler) ListJobs(c *gin.Context) {
	if err := h.Jobs.SeedIfEmpty(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed catalog: " + err.Error()})
		return
	}

	jobs, err := h.Jobs.Search(services.SearchFilters{
		Title:    c.Query("title"),
		Location: c.Query("location"),
		Category: c.Query("category"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// RecommendedJobs is GET /jobs/recommended, derived from the caller's
// declared field of study.
func (h *JobHandler) RecommendedJobs(c *gin.Context) {
	jobs, err := h.Matcher.RecommendForUser(currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build recommendations"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob is POST /jobs/.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ExtractJob is POST /jobs/extract: raw posting HTML in, structured job
// JSON out. Only routed when the LLM client is configured.
func (h *JobHandler) ExtractJob(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	extractedJSON, err := h.LLM.ExtractJobDetails(c.Request.Context(), req.RawHTML)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Extraction failed: " + err.Error()})
		return
	}

	// json.RawMessage keeps the model's JSON from being re-escaped.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(extractedJSON),
	})
}
