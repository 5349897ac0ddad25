package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/recruitflow/hiring-pipeline/internal/usecase"
	"github.com/recruitflow/hiring-pipeline/internal/util"
	"github.com/tidwall/gjson"
)

type ExportHandler struct {
	uc *usecase.ExportUsecase
}

func NewExportHandler(uc *usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func (h *ExportHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/candidateToSheet", h.CandidateToSheet)
	app.Post("/api/assessmentosheet", h.AssessmentToSheet)
	app.Post("/api/submitForm", h.SubmitForm)
}

func (h *ExportHandler) CandidateToSheet(c *fiber.Ctx) error {
	body := gjson.ParseBytes(c.Body())
	if err := h.uc.AppendCandidateSummary(c.Context(), body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to append candidate row",
		}, err)
	}
	return c.JSON(fiber.Map{"message": "Candidate row appended to sheet"})
}

func (h *ExportHandler) AssessmentToSheet(c *fiber.Ctx) error {
	body := gjson.ParseBytes(c.Body())
	if err := h.uc.AppendAssessmentProfile(c.Context(), body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to append assessment row",
		}, err)
	}
	return c.JSON(fiber.Map{"message": "Assessment row appended to sheet"})
}

func (h *ExportHandler) SubmitForm(c *fiber.Ctx) error {
	body := gjson.ParseBytes(c.Body())
	if err := h.uc.AppendSurveyResponse(c.Context(), body); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit form",
		}, err)
	}
	return c.JSON(fiber.Map{"message": "Form submitted successfully"})
}
