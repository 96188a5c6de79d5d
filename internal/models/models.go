package models

import (
	"time"

	"gorm.io/gorm"
)

// Job statuses. Terminal states are never changed by a tailoring flow.
const (
	StatusYetToApply = "YET_TO_APPLY"
	StatusApplied    = "APPLIED"
	StatusInterview  = "INTERVIEW"
	StatusOffer      = "OFFER"
	StatusRejected   = "REJECTED"
)

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"uniqueIndex;not null" json:"company_name"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `json:"company_id"`
	Company   Company `json:"company"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	JobLink     string `json:"job_link"`
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	Status      string `gorm:"default:'APPLIED'" json:"status"`
	ResumeLink  string `json:"resume_link"`
}

type JobEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	JobID     uint      `gorm:"index" json:"job_id"`
	EventType string    `json:"event_type"`
	Details   string    `gorm:"type:text" json:"details"`
}

// MasterResume is the single source résumé every tailored copy starts from.
type MasterResume struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	LatexContent string `gorm:"type:text" json:"latex_content"`
}

// TailoredResume is a per-job copy of the master résumé. Deleting one
// removes the row, so the job can be tailored again.
type TailoredResume struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID uint `gorm:"uniqueIndex" json:"job_id"`
	Job   Job  `json:"job"`

	LatexContent string `gorm:"type:text" json:"latex_content"`
}
