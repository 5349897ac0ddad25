package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Candidate struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID          string         `gorm:"index" json:"jobId"` // references Job.JobID, not enforced
	CandidateID    string         `gorm:"index" json:"candidateId"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	LinkedIn       string         `json:"linkedIn"`
	Education      string         `json:"education"`
	Experience     string         `json:"experience"`
	TotalScore     float64        `gorm:"type:float" json:"totalScore"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	Certifications pq.StringArray `gorm:"type:text[]" json:"certifications"`
	Tools          pq.StringArray `gorm:"type:text[]" json:"tools"`
	ResumeLink     string         `json:"resumeLink"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
