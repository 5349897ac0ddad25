package usecase

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/recruitflow/hiring-pipeline/internal/model"
	"github.com/recruitflow/hiring-pipeline/internal/service"
	"gorm.io/gorm"
)

// Attachment is a file relayed to the blob store. Content is read exactly
// once, during upload.
type Attachment struct {
	Name     string
	MIMEType string
	Content  io.Reader
}

type JobStore interface {
	Create(job *model.Job) error
	FindByID(id uuid.UUID) (*model.Job, error)
	FindByJobID(jobID string) (*model.Job, error)
	All() ([]model.Job, error)
}

type UploadStore interface {
	Create(record *model.UploadRecord) error
	MarkLinked(ownerKind, ownerRef string) error
}

type JobSubmission struct {
	JobID             string
	Position          string
	Classification    string
	Experience        string
	Education         string
	Location          string
	OrganizationLevel string
	Attitude          string
	Comments          string
	Description       string
	Certifications    []string
	Tools             []string
	DatePosted        string
}

type JobUsecase struct {
	jobs    JobStore
	uploads UploadStore
	blobs   service.BlobStoreInterface
}

func NewJobUsecase(jobs JobStore, uploads UploadStore, blobs service.BlobStoreInterface) *JobUsecase {
	return &JobUsecase{jobs: jobs, uploads: uploads, blobs: blobs}
}

// Submit uploads every attachment in order, then persists the job. Uploads
// and the insert are not transactional: a failure partway through leaves the
// already-uploaded blobs behind, each marked by an upload record so they can
// be found later.
func (uc *JobUsecase) Submit(ctx context.Context, sub JobSubmission, files []Attachment) (*model.Job, error) {
	links := make([]string, 0, len(files))
	for _, f := range files {
		link, err := uc.blobs.Upload(ctx, f.Name, f.MIMEType, f.Content)
		if err != nil {
			return nil, err
		}
		record := &model.UploadRecord{
			OwnerKind: model.UploadOwnerJob,
			OwnerRef:  sub.JobID,
			FileName:  f.Name,
			Link:      link,
			Status:    model.UploadStatusUploaded,
		}
		if err := uc.uploads.Create(record); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	datePosted := sub.DatePosted
	if datePosted == "" {
		datePosted = time.Now().Format("2006-01-02")
	}

	job := &model.Job{
		JobID:             sub.JobID,
		Position:          sub.Position,
		Classification:    sub.Classification,
		Experience:        sub.Experience,
		Education:         sub.Education,
		Location:          sub.Location,
		OrganizationLevel: sub.OrganizationLevel,
		Attitude:          sub.Attitude,
		Comments:          sub.Comments,
		Description:       sub.Description,
		Certifications:    sub.Certifications,
		Tools:             sub.Tools,
		AttachmentLinks:   links,
		DatePosted:        datePosted,
	}
	if err := uc.jobs.Create(job); err != nil {
		return nil, err
	}

	if len(files) > 0 {
		if err := uc.uploads.MarkLinked(model.UploadOwnerJob, sub.JobID); err != nil {
			log.Printf("could not mark uploads linked for job %s: %v", sub.JobID, err)
		}
	}

	return job, nil
}

func (uc *JobUsecase) List() ([]model.Job, error) {
	return uc.jobs.All()
}

// Get looks up by the store-native id. The business jobId is not consulted
// here even though both are strings on the wire.
func (uc *JobUsecase) Get(id string) (*model.Job, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return uc.jobs.FindByID(uid)
}
