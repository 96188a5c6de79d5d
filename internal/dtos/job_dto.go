package dtos

type JobCreationRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Title       string `json:"role_title" binding:"required"`
	JobLink     string `json:"job_link" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	ResumeLink  string `json:"resume_link"`
	Status      string `json:"status" binding:"omitempty,oneof=YET_TO_APPLY APPLIED INTERVIEW OFFER REJECTED"` // Defaults to "APPLIED" if empty
}

// JobUpdateRequest is a PATCH body: nil fields are left untouched.
type JobUpdateRequest struct {
	Title       *string `json:"role_title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	JobLink     *string `json:"job_link"`
	Location    *string `json:"location"`
	SalaryRange *string `json:"salary_range"`
	ResumeLink  *string `json:"resume_link"`
	Status      *string `json:"status" binding:"omitempty,oneof=YET_TO_APPLY APPLIED INTERVIEW OFFER REJECTED"`
}
