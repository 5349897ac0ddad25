package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EvaluationDTO struct {
	ID                uuid.UUID       `json:"id"`
	CandidateID       string          `json:"candidateId"`
	EvaluationResults json.RawMessage `json:"evaluationResults"`
	ScoresFactor      json.RawMessage `json:"ScoresFactor"`
	CreatedAt         time.Time       `json:"created_at"`
}
