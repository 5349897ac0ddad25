package model

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation rows are not unique per candidate: a second save for the same
// candidateId creates a second row, and reads return the oldest match.
type Evaluation struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CandidateID       string    `gorm:"not null;index" json:"candidateId"`
	EvaluationResults string    `gorm:"type:jsonb" json:"evaluationResults"`
	ScoresFactor      string    `gorm:"type:jsonb;default:'[]'" json:"ScoresFactor"`
	CreatedAt         time.Time `json:"created_at"`
}

func (e *Evaluation) TableName() string {
	return "evaluations"
}
