package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/recruitflow/hiring-pipeline/internal/model"
	"gorm.io/gorm"
)

// fakeBlobStore returns a deterministic link per name and records the call
// order in the shared event log.
type fakeBlobStore struct {
	events *[]string
	names  []string
	mimes  []string
	failAt int // index of the upload that fails, -1 for none
}

func (f *fakeBlobStore) Upload(ctx context.Context, name, mimeType string, content io.Reader) (string, error) {
	if f.failAt >= 0 && len(f.names) == f.failAt {
		return "", errors.New("blob store unavailable")
	}
	f.names = append(f.names, name)
	f.mimes = append(f.mimes, mimeType)
	if f.events != nil {
		*f.events = append(*f.events, "upload:"+name)
	}
	return "https://drive.example.com/view/" + name, nil
}

type fakeJobStore struct {
	events  *[]string
	created []*model.Job
	jobs    []model.Job
	err     error
}

func (f *fakeJobStore) Create(job *model.Job) error {
	if f.err != nil {
		return f.err
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	f.created = append(f.created, job)
	f.jobs = append(f.jobs, *job)
	if f.events != nil {
		*f.events = append(*f.events, "job-create")
	}
	return nil
}

func (f *fakeJobStore) FindByID(id uuid.UUID) (*model.Job, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeJobStore) FindByJobID(jobID string) (*model.Job, error) {
	for i := range f.jobs {
		if f.jobs[i].JobID == jobID {
			return &f.jobs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeJobStore) All() ([]model.Job, error) {
	return f.jobs, nil
}

type fakeCandidateStore struct {
	created    []*model.Candidate
	candidates []model.Candidate
	err        error
}

func (f *fakeCandidateStore) Create(candidate *model.Candidate) error {
	if f.err != nil {
		return f.err
	}
	if candidate.ID == uuid.Nil {
		candidate.ID = uuid.New()
	}
	f.created = append(f.created, candidate)
	f.candidates = append(f.candidates, *candidate)
	return nil
}

func (f *fakeCandidateStore) FindByCandidateID(candidateID string) (*model.Candidate, error) {
	for i := range f.candidates {
		if f.candidates[i].CandidateID == candidateID {
			return &f.candidates[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCandidateStore) All() ([]model.Candidate, error) {
	return f.candidates, nil
}

type fakeEvaluationStore struct {
	created []*model.Evaluation
	err     error
}

func (f *fakeEvaluationStore) Create(evaluation *model.Evaluation) error {
	if f.err != nil {
		return f.err
	}
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	f.created = append(f.created, evaluation)
	return nil
}

func (f *fakeEvaluationStore) FirstByCandidateID(candidateID string) (*model.Evaluation, error) {
	for _, e := range f.created {
		if e.CandidateID == candidateID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeUploadStore struct {
	events  *[]string
	records []*model.UploadRecord
	linked  []string
}

func (f *fakeUploadStore) Create(record *model.UploadRecord) error {
	f.records = append(f.records, record)
	if f.events != nil {
		*f.events = append(*f.events, "record:"+record.FileName)
	}
	return nil
}

func (f *fakeUploadStore) MarkLinked(ownerKind, ownerRef string) error {
	f.linked = append(f.linked, fmt.Sprintf("%s/%s", ownerKind, ownerRef))
	for _, r := range f.records {
		if r.OwnerKind == ownerKind && r.OwnerRef == ownerRef && r.Status == model.UploadStatusUploaded {
			r.Status = model.UploadStatusLinked
		}
	}
	return nil
}

type fakeRowAppender struct {
	sheets []string
	rows   [][]any
	err    error
}

func (f *fakeRowAppender) AppendRow(ctx context.Context, sheet string, values []any) error {
	if f.err != nil {
		return f.err
	}
	f.sheets = append(f.sheets, sheet)
	f.rows = append(f.rows, values)
	return nil
}
