package repository

import (
	"github.com/recruitflow/hiring-pipeline/internal/model"
	"gorm.io/gorm"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db}
}

func (r *UploadRepository) Create(record *model.UploadRecord) error {
	return r.db.Create(record).Error
}

// MarkLinked flips every uploaded record of the owner to linked once the
// owning row is persisted.
func (r *UploadRepository) MarkLinked(ownerKind, ownerRef string) error {
	return r.db.Model(&model.UploadRecord{}).
		Where("owner_kind = ? AND owner_ref = ? AND status = ?", ownerKind, ownerRef, model.UploadStatusUploaded).
		Update("status", model.UploadStatusLinked).Error
}
