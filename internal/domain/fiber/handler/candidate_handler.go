package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/recruitflow/hiring-pipeline/internal/middleware"
	"github.com/recruitflow/hiring-pipeline/internal/usecase"
	"github.com/recruitflow/hiring-pipeline/internal/util"
	"gorm.io/gorm"
)

type CandidateHandler struct {
	uc *usecase.CandidateUsecase
}

func NewCandidateHandler(uc *usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/candidates", middleware.RateLimiter(20, 1*time.Minute), h.Create)
	app.Get("/api/candidates", h.List)
	app.Get("/api/getCandidate/:candidateId", h.GetByCandidateID)
}

func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create candidate",
		}, err)
	}

	totalScore, _ := strconv.ParseFloat(formValue(form, "totalScore"), 64)
	sub := usecase.CandidateSubmission{
		JobID:          formValue(form, "jobId"),
		CandidateID:    formValue(form, "candidateId"),
		FirstName:      formValue(form, "firstName"),
		LastName:       formValue(form, "lastName"),
		Email:          formValue(form, "email"),
		Phone:          formValue(form, "phone"),
		Address:        formValue(form, "address"),
		LinkedIn:       formValue(form, "linkedIn"),
		Education:      formValue(form, "education"),
		Experience:     formValue(form, "experience"),
		TotalScore:     totalScore,
		Skills:         util.StringList(form.Value["skills"]),
		Certifications: util.StringList(form.Value["certifications"]),
		Tools:          util.StringList(form.Value["tools"]),
	}

	// The resume is optional; a missing file field is not an error.
	var resume *usecase.Attachment
	if fh, err := c.FormFile("resume"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to create candidate",
			}, err)
		}
		defer f.Close()
		resume = &usecase.Attachment{
			Name:     fh.Filename,
			MIMEType: fh.Header.Get(fiber.HeaderContentType),
			Content:  f,
		}
	}

	candidate, err := h.uc.Submit(c.Context(), sub, resume)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create candidate",
		}, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Candidate created successfully",
		"resumeLink": candidate.ResumeLink,
	})
}

func (h *CandidateHandler) List(c *fiber.Ctx) error {
	candidates, err := h.uc.List()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch candidates",
		}, err)
	}
	return c.JSON(candidates)
}

// GetByCandidateID resolves by the business candidateId and wraps the
// result in the success envelope.
func (h *CandidateHandler) GetByCandidateID(c *fiber.Ctx) error {
	candidate, err := h.uc.GetByCandidateID(c.Params("candidateId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Candidate not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch candidate",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidate retrieved successfully",
		Data:    candidate,
	})
}
