package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Job struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID             string         `gorm:"index" json:"jobId"` // caller-supplied, not unique
	Position          string         `json:"position"`
	Classification    string         `json:"classification"`
	Experience        string         `json:"experience"`
	Education         string         `json:"education"`
	Location          string         `json:"location"` // postal code
	OrganizationLevel string         `json:"organizationLevel"`
	Attitude          string         `json:"attitude"`
	Comments          string         `gorm:"type:text" json:"comments"`
	Description       string         `gorm:"type:text" json:"description"`
	Certifications    pq.StringArray `gorm:"type:text[]" json:"certifications"`
	Tools             pq.StringArray `gorm:"type:text[]" json:"tools"`
	AttachmentLinks   pq.StringArray `gorm:"type:text[]" json:"attachmentLinks"`
	DatePosted        string         `gorm:"type:varchar(10)" json:"datePosted"` // YYYY-MM-DD
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
