package repository

import (
	"github.com/recruitflow/hiring-pipeline/internal/model"
	"gorm.io/gorm"
)

type EvaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db}
}

func (r *EvaluationRepository) Create(evaluation *model.Evaluation) error {
	return r.db.Create(evaluation).Error
}

// FirstByCandidateID returns the oldest evaluation for the candidate.
// Duplicates are allowed by the store, so "first" is pinned to insertion
// order to keep reads deterministic.
func (r *EvaluationRepository) FirstByCandidateID(candidateID string) (*model.Evaluation, error) {
	var e model.Evaluation
	err := r.db.Order("created_at").First(&e, "candidate_id = ?", candidateID).Error
	return &e, err
}
