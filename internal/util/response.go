package util

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/recruitflow/hiring-pipeline/internal/config"
)

type SuccessResponseFormat struct {
	Code    int
	Message string
	Data    any
	Meta    any
}

type OrderedSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Meta    any    `json:"meta,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// SuccessResponse sends the standard success JSON envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	if params.Code == 0 {
		params.Code = fiber.StatusOK
	}
	response := OrderedSuccessResponse{
		Success: true,
		Message: params.Message,
		Data:    params.Data,
		Meta:    params.Meta,
	}
	return c.Status(params.Code).JSON(response)
}

// ErrorResponse sends the standard error JSON envelope. Underlying error
// detail is only serialized outside production; callers always get the
// generic message.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
	}
	if params.Details != nil {
		response.Details = params.Details
	}
	if config.LoadAppConfig().Env != "production" {
		if len(errs) > 0 && errs[0] != nil {
			response.DevMessage = errs[0].Error()
			response.Trace = string(debug.Stack())
		}

		if params.DevMessage != "" {
			response.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			response.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if params.Code == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(response)
}
