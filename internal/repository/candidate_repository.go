package repository

import (
	"github.com/recruitflow/hiring-pipeline/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func (r *CandidateRepository) Create(candidate *model.Candidate) error {
	return r.db.Create(candidate).Error
}

// FindByCandidateID looks up by the business candidateId, not the native id.
func (r *CandidateRepository) FindByCandidateID(candidateID string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.Order("created_at").First(&c, "candidate_id = ?", candidateID).Error
	return &c, err
}

func (r *CandidateRepository) All() ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := r.db.Find(&candidates).Error
	return candidates, err
}
