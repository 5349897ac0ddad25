package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	UploadOwnerJob       = "job"
	UploadOwnerCandidate = "candidate"

	UploadStatusUploaded = "uploaded"
	UploadStatusLinked   = "linked"
)

// UploadRecord is written after each blob upload and before the owning
// record is persisted. Rows stuck in "uploaded" mark blobs whose owning
// insert never completed, so a reconciliation job can find them later.
type UploadRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerKind string    `gorm:"type:varchar(20)" json:"ownerKind"`
	OwnerRef  string    `gorm:"index" json:"ownerRef"` // business jobId or candidateId
	FileName  string    `json:"fileName"`
	Link      string    `json:"link"`
	Status    string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *UploadRecord) TableName() string {
	return "upload_records"
}
