package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/recruitflow/hiring-pipeline/internal/usecase"
	"github.com/recruitflow/hiring-pipeline/internal/util"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

type EvaluationHandler struct {
	uc *usecase.EvaluationUsecase
}

func NewEvaluationHandler(uc *usecase.EvaluationUsecase) *EvaluationHandler {
	return &EvaluationHandler{uc: uc}
}

func (h *EvaluationHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/saveEvaluation", h.Save)
	app.Get("/api/getEvaluation/:candidateId", h.Get)
}

// Save validates candidateId and evaluationResults only. ScoresFactor is
// accepted as-is even when absent, although the stored shape expects it.
func (h *EvaluationHandler) Save(c *fiber.Ctx) error {
	body := c.Body()
	candidateID := gjson.GetBytes(body, "candidateId").String()
	results := gjson.GetBytes(body, "evaluationResults")
	// An explicit null counts as missing, same as an absent field.
	if candidateID == "" || !results.Exists() || results.Type == gjson.Null {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "candidateId and evaluationResults are required",
		})
	}

	scoresFactor := gjson.GetBytes(body, "ScoresFactor")
	if _, err := h.uc.Save(candidateID, results.Raw, scoresFactor.Raw); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to save evaluation",
		}, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Evaluation saved successfully",
	})
}

func (h *EvaluationHandler) Get(c *fiber.Ctx) error {
	evaluation, err := h.uc.Get(c.Params("candidateId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Evaluation not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch evaluation",
		}, err)
	}
	return c.JSON(evaluation)
}
