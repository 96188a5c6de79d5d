package services

import (
	"path/filepath"
	"testing"

	"github.com/justsurfingit/uncooked/internal/database"
	"github.com/justsurfingit/uncooked/internal/dtos"
	"github.com/justsurfingit/uncooked/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated sqlite database that lives for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createJob(t *testing.T, s *JobService, company, title string) *models.Job {
	t.Helper()
	job, err := s.CreateJob(&dtos.JobCreationRequest{
		CompanyName: company,
		Title:       title,
		JobLink:     "https://jobs.example.com/" + title,
		Description: "Build things.",
	})
	require.NoError(t, err)
	return job
}
