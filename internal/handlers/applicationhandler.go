package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobseeker-backend/internal/dtos"
	"jobseeker-backend/internal/services"
)

// ApplicationHandler serves application submission and listing.
type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// SubmitApplication is POST /applications/.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	application, err := h.Applications.Submit(currentUser(c), req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyApplied):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already applied"})
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		}
		return
	}

	c.JSON(http.StatusOK, dtos.ApplicationSubmitted{
		Message:       "Application submitted successfully",
		ApplicationID: application.ID,
	})
}

// ListApplications is GET /applications/ for the authenticated user only.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	summaries, err := h.Applications.ListForUser(currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// Root is the GET / liveness message.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Job Search API is running."})
}
