package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/justsurfingit/uncooked/internal/models"
	"gorm.io/gorm"
)

const MasterRef = "master"

var (
	ErrNoMasterResume = errors.New("master resume has not been created yet")
	ErrBadResumeRef   = errors.New(`resume must be "master" or a tailored resume id`)
)

type ResumeService struct {
	DB *gorm.DB
}

func NewResumeService(db *gorm.DB) *ResumeService {
	return &ResumeService{DB: db}
}

func (s *ResumeService) GetMaster() (*models.MasterResume, error) {
	var master models.MasterResume
	err := s.DB.Order("id ASC").First(&master).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoMasterResume
	}
	if err != nil {
		return nil, err
	}
	return &master, nil
}

// SaveMaster creates the master résumé on first save and overwrites it after.
func (s *ResumeService) SaveMaster(content string) (*models.MasterResume, error) {
	var master models.MasterResume
	err := s.DB.Order("id ASC").FirstOrCreate(&master).Error
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(&master).Update("latex_content", content).Error; err != nil {
		return nil, err
	}
	master.LatexContent = content
	return &master, nil
}

// Tailor seeds a job's tailored résumé from the master. An existing one is
// returned as is.
func (s *ResumeService) Tailor(jobID uint) (*models.TailoredResume, error) {
	master, err := s.GetMaster()
	if err != nil {
		return nil, err
	}
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		return nil, notFound(err)
	}

	tailored := models.TailoredResume{JobID: job.ID}
	err = s.DB.Where(models.TailoredResume{JobID: job.ID}).
		Attrs(models.TailoredResume{LatexContent: master.LatexContent}).
		FirstOrCreate(&tailored).Error
	if err != nil {
		return nil, err
	}
	log.Printf("📝 Tailored resume %d ready for job %d", tailored.ID, job.ID)
	return s.GetTailored(tailored.ID)
}

func (s *ResumeService) GetTailored(id uint) (*models.TailoredResume, error) {
	var tailored models.TailoredResume
	if err := s.DB.Preload("Job.Company").First(&tailored, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &tailored, nil
}

func (s *ResumeService) UpdateTailored(id uint, content string) (*models.TailoredResume, error) {
	res := s.DB.Model(&models.TailoredResume{}).Where("id = ?", id).Update("latex_content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetTailored(id)
}

func (s *ResumeService) DeleteTailored(id uint) error {
	res := s.DB.Delete(&models.TailoredResume{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTailoredByCompany returns every tailored résumé for a company's jobs.
func (s *ResumeService) ListTailoredByCompany(company string) ([]models.TailoredResume, error) {
	var out []models.TailoredResume
	err := s.DB.Preload("Job.Company").
		Joins("JOIN jobs ON jobs.id = tailored_resumes.job_id AND jobs.deleted_at IS NULL").
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Where("LOWER(companies.name) = LOWER(?)", company).
		Order("tailored_resumes.updated_at DESC").
		Find(&out).Error
	return out, err
}

// Load returns the stored text behind a résumé reference.
func (s *ResumeService) Load(ref string) (string, error) {
	if ref == MasterRef {
		master, err := s.GetMaster()
		if err != nil {
			return "", err
		}
		return master.LatexContent, nil
	}
	id, err := ParseResumeID(ref)
	if err != nil {
		return "", err
	}
	tailored, err := s.GetTailored(id)
	if err != nil {
		return "", err
	}
	return tailored.LatexContent, nil
}

// Save stores text behind a résumé reference.
func (s *ResumeService) Save(ref, content string) error {
	if ref == MasterRef {
		_, err := s.SaveMaster(content)
		return err
	}
	id, err := ParseResumeID(ref)
	if err != nil {
		return err
	}
	_, err = s.UpdateTailored(id, content)
	return err
}

// Persister returns a callback that writes every edit of ref back to the
// database. Failures are logged; the editor keeps the text either way.
func (s *ResumeService) Persister(ref string) func(string) {
	return func(content string) {
		if err := s.Save(ref, content); err != nil {
			log.Printf("❌ Failed to persist resume %s: %v", ref, err)
		}
	}
}

func ParseResumeID(ref string) (uint, error) {
	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadResumeRef, ref)
	}
	return uint(id), nil
}
