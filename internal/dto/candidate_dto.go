package dto

import "github.com/recruitflow/hiring-pipeline/internal/model"

// CandidateWithJobDTO is a candidate read model enriched with fields from
// the job it references by business jobId. Both enrichment fields stay
// empty when the referenced job does not exist.
type CandidateWithJobDTO struct {
	model.Candidate
	JobClassification string `json:"jobClassification,omitempty"`
	JobTitle          string `json:"jobTitle,omitempty"`
}
