package handler

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/recruitflow/hiring-pipeline/internal/middleware"
	"github.com/recruitflow/hiring-pipeline/internal/usecase"
	"github.com/recruitflow/hiring-pipeline/internal/util"
	"gorm.io/gorm"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/jobs", middleware.RateLimiter(20, 1*time.Minute), h.Create)
	app.Get("/api/getJobs", h.List)
	app.Get("/api/jobs/:id", h.Get)
}

// Create accepts the job fields plus any number of attachments. Every file
// is uploaded before the record is written; a failure anywhere fails the
// whole request.
func (h *JobHandler) Create(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create job",
		}, err)
	}

	sub := usecase.JobSubmission{
		JobID:             formValue(form, "jobId"),
		Position:          formValue(form, "position"),
		Classification:    formValue(form, "classification"),
		Experience:        formValue(form, "experience"),
		Education:         formValue(form, "education"),
		Location:          formValue(form, "location"),
		OrganizationLevel: formValue(form, "organizationLevel"),
		Attitude:          formValue(form, "attitude"),
		Comments:          formValue(form, "comments"),
		Description:       formValue(form, "description"),
		Certifications:    util.StringList(form.Value["certifications"]),
		Tools:             util.StringList(form.Value["tools"]),
		DatePosted:        formValue(form, "datePosted"),
	}

	files := make([]usecase.Attachment, 0, len(form.File["attachments"]))
	for _, fh := range form.File["attachments"] {
		f, err := fh.Open()
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to create job",
			}, err)
		}
		defer f.Close()
		files = append(files, usecase.Attachment{
			Name:     fh.Filename,
			MIMEType: fh.Header.Get(fiber.HeaderContentType),
			Content:  f,
		})
	}

	job, err := h.uc.Submit(c.Context(), sub, files)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create job",
		}, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":         "Job created successfully",
		"jobId":           job.JobID,
		"attachmentLinks": job.AttachmentLinks,
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.uc.List()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch jobs",
		}, err)
	}
	return c.JSON(jobs)
}

// Get resolves by the store-native id, not the business jobId.
func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch job",
		}, err)
	}
	return c.JSON(job)
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}
