package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobseeker-backend/internal/models"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// recordingNotifier captures confirmation sends for assertions. Submit
// notifies from a goroutine, so deliveries arrive on a channel.
type recordingNotifier struct {
	sent chan [3]string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan [3]string, 8)}
}

func (n *recordingNotifier) SendApplicationConfirmation(toEmail, jobTitle, company string) error {
	n.sent <- [3]string{toEmail, jobTitle, company}
	return nil
}
