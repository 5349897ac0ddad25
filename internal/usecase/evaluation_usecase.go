package usecase

import (
	"encoding/json"

	"github.com/recruitflow/hiring-pipeline/internal/dto"
	"github.com/recruitflow/hiring-pipeline/internal/model"
)

type EvaluationStore interface {
	Create(evaluation *model.Evaluation) error
	FirstByCandidateID(candidateID string) (*model.Evaluation, error)
}

type EvaluationUsecase struct {
	evaluations EvaluationStore
}

func NewEvaluationUsecase(evaluations EvaluationStore) *EvaluationUsecase {
	return &EvaluationUsecase{evaluations: evaluations}
}

// Save persists an evaluation as-is. The candidate is not checked for
// existence and a prior evaluation for the same candidateId does not block
// the write. ScoresFactor may be empty; it is stored as an empty array,
// which the handler never rejects even though the stored shape expects it.
func (uc *EvaluationUsecase) Save(candidateID, evaluationResults, scoresFactor string) (*model.Evaluation, error) {
	if scoresFactor == "" {
		scoresFactor = "[]"
	}
	evaluation := &model.Evaluation{
		CandidateID:       candidateID,
		EvaluationResults: evaluationResults,
		ScoresFactor:      scoresFactor,
	}
	if err := uc.evaluations.Create(evaluation); err != nil {
		return nil, err
	}
	return evaluation, nil
}

// Get returns the first stored evaluation for the candidate in insertion
// order.
func (uc *EvaluationUsecase) Get(candidateID string) (*dto.EvaluationDTO, error) {
	e, err := uc.evaluations.FirstByCandidateID(candidateID)
	if err != nil {
		return nil, err
	}
	return &dto.EvaluationDTO{
		ID:                e.ID,
		CandidateID:       e.CandidateID,
		EvaluationResults: json.RawMessage(e.EvaluationResults),
		ScoresFactor:      json.RawMessage(e.ScoresFactor),
		CreatedAt:         e.CreatedAt,
	}, nil
}
