package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/justsurfingit/uncooked/internal/dtos"
	"github.com/justsurfingit/uncooked/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

func (s *JobService) CreateJob(req *dtos.JobCreationRequest) (*models.Job, error) {
	var company models.Company
	// it create an entry if it already don't exist
	err := s.DB.Where(models.Company{Name: req.CompanyName}).
		FirstOrCreate(&company).Error
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.StatusApplied
	}
	job := &models.Job{
		CompanyID:   company.ID,
		Company:     company,
		Title:       req.Title,
		Description: req.Description,
		JobLink:     req.JobLink,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
		Status:      status,
		ResumeLink:  req.ResumeLink,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ListJobs returns jobs newest first, optionally filtered by status.
func (s *JobService) ListJobs(status string) ([]models.Job, error) {
	q := s.DB.Preload("Company").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var jobs []models.Job
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) GetJob(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.Preload("Company").First(&job, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

// UpdateJob applies a partial update. A status change is recorded as a
// JobEvent in the same transaction.
func (s *JobService) UpdateJob(id uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	var job models.Job
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, id).Error; err != nil {
			return notFound(err)
		}
		updates, event := jobUpdates(&job, req)
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&job).Updates(updates).Error; err != nil {
			return err
		}
		if event != nil {
			log.Printf("⚡ Job %d: %s", job.ID, event.Details)
			return tx.Create(event).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetJob(id)
}

// jobUpdates collects the changed columns of req against job, and the
// event to record if the status moved.
func jobUpdates(job *models.Job, req *dtos.JobUpdateRequest) (map[string]interface{}, *models.JobEvent) {
	updates := map[string]interface{}{}
	set := func(column string, v *string, current string) {
		if v != nil && *v != current {
			updates[column] = *v
		}
	}
	set("title", req.Title, job.Title)
	set("description", req.Description, job.Description)
	set("job_link", req.JobLink, job.JobLink)
	set("location", req.Location, job.Location)
	set("salary_range", req.SalaryRange, job.SalaryRange)
	set("resume_link", req.ResumeLink, job.ResumeLink)
	set("status", req.Status, job.Status)

	if _, ok := updates["status"]; !ok {
		return updates, nil
	}
	return updates, &models.JobEvent{
		JobID:     job.ID,
		EventType: "STATUS_UPDATE",
		Details:   fmt.Sprintf("Status changed from %s to %s", job.Status, *req.Status),
	}
}

func (s *JobService) DeleteJob(id uint) error {
	res := s.DB.Delete(&models.Job{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *JobService) ListEvents(jobID uint) ([]models.JobEvent, error) {
	var events []models.JobEvent
	err := s.DB.Where("job_id = ?", jobID).Order("created_at ASC").Find(&events).Error
	return events, err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
