package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/recruitflow/hiring-pipeline/internal/dto"
	"github.com/recruitflow/hiring-pipeline/internal/model"
	"github.com/recruitflow/hiring-pipeline/internal/service"
	"gorm.io/gorm"
)

type CandidateStore interface {
	Create(candidate *model.Candidate) error
	FindByCandidateID(candidateID string) (*model.Candidate, error)
	All() ([]model.Candidate, error)
}

type CandidateSubmission struct {
	JobID          string
	CandidateID    string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	LinkedIn       string
	Education      string
	Experience     string
	TotalScore     float64
	Skills         []string
	Certifications []string
	Tools          []string
}

type CandidateUsecase struct {
	candidates CandidateStore
	jobs       JobStore
	uploads    UploadStore
	blobs      service.BlobStoreInterface
}

func NewCandidateUsecase(candidates CandidateStore, jobs JobStore, uploads UploadStore, blobs service.BlobStoreInterface) *CandidateUsecase {
	return &CandidateUsecase{candidates: candidates, jobs: jobs, uploads: uploads, blobs: blobs}
}

// Submit uploads the resume (when present) under the First_Last_Resume.pdf
// convention, then persists the candidate. The rename keeps whatever name
// collisions it produces and discards the original extension.
func (uc *CandidateUsecase) Submit(ctx context.Context, sub CandidateSubmission, resume *Attachment) (*model.Candidate, error) {
	var resumeLink string
	if resume != nil {
		name := fmt.Sprintf("%s_%s_Resume.pdf", sub.FirstName, sub.LastName)
		link, err := uc.blobs.Upload(ctx, name, "application/pdf", resume.Content)
		if err != nil {
			return nil, err
		}
		record := &model.UploadRecord{
			OwnerKind: model.UploadOwnerCandidate,
			OwnerRef:  sub.CandidateID,
			FileName:  name,
			Link:      link,
			Status:    model.UploadStatusUploaded,
		}
		if err := uc.uploads.Create(record); err != nil {
			return nil, err
		}
		resumeLink = link
	}

	candidate := &model.Candidate{
		JobID:          sub.JobID,
		CandidateID:    sub.CandidateID,
		FirstName:      sub.FirstName,
		LastName:       sub.LastName,
		Email:          sub.Email,
		Phone:          sub.Phone,
		Address:        sub.Address,
		LinkedIn:       sub.LinkedIn,
		Education:      sub.Education,
		Experience:     sub.Experience,
		TotalScore:     sub.TotalScore,
		Skills:         sub.Skills,
		Certifications: sub.Certifications,
		Tools:          sub.Tools,
		ResumeLink:     resumeLink,
	}
	if err := uc.candidates.Create(candidate); err != nil {
		return nil, err
	}

	if resume != nil {
		if err := uc.uploads.MarkLinked(model.UploadOwnerCandidate, sub.CandidateID); err != nil {
			log.Printf("could not mark uploads linked for candidate %s: %v", sub.CandidateID, err)
		}
	}

	return candidate, nil
}

// List returns every candidate, each enriched with the referenced job's
// classification when that job exists. Dangling job references are not an
// error; the enrichment is simply absent.
func (uc *CandidateUsecase) List() ([]dto.CandidateWithJobDTO, error) {
	candidates, err := uc.candidates.All()
	if err != nil {
		return nil, err
	}
	jobs, err := uc.jobs.All()
	if err != nil {
		return nil, err
	}

	byJobID := make(map[string]model.Job, len(jobs))
	for _, j := range jobs {
		if _, ok := byJobID[j.JobID]; !ok {
			byJobID[j.JobID] = j
		}
	}

	out := make([]dto.CandidateWithJobDTO, 0, len(candidates))
	for _, c := range candidates {
		enriched := dto.CandidateWithJobDTO{Candidate: c}
		if j, ok := byJobID[c.JobID]; ok {
			enriched.JobClassification = j.Classification
			enriched.JobTitle = j.Position
		}
		out = append(out, enriched)
	}
	return out, nil
}

// GetByCandidateID looks up by the business candidateId and enriches the
// result with the referenced job's classification and title.
func (uc *CandidateUsecase) GetByCandidateID(candidateID string) (*dto.CandidateWithJobDTO, error) {
	c, err := uc.candidates.FindByCandidateID(candidateID)
	if err != nil {
		return nil, err
	}

	enriched := &dto.CandidateWithJobDTO{Candidate: *c}
	job, err := uc.jobs.FindByJobID(c.JobID)
	switch {
	case err == nil:
		enriched.JobClassification = job.Classification
		enriched.JobTitle = job.Position
	case errors.Is(err, gorm.ErrRecordNotFound):
		// dangling reference, leave the enrichment empty
	default:
		return nil, err
	}
	return enriched, nil
}
