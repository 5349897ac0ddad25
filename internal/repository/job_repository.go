package repository

import (
	"github.com/google/uuid"
	"github.com/recruitflow/hiring-pipeline/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

// FindByID looks up by the store-native uuid, not the business jobId.
func (r *JobRepository) FindByID(id uuid.UUID) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ?", id).Error
	return &j, err
}

// FindByJobID returns the oldest job carrying the business jobId. The field
// is not unique, so later duplicates are ignored.
func (r *JobRepository) FindByJobID(jobID string) (*model.Job, error) {
	var j model.Job
	err := r.db.Order("created_at").First(&j, "job_id = ?", jobID).Error
	return &j, err
}

func (r *JobRepository) All() ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Find(&jobs).Error
	return jobs, err
}
