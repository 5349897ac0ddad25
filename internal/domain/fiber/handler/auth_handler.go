package handler

import (
	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/recruitflow/hiring-pipeline/internal/util"
)

// AuthHandler forwards /api/auth/* verbatim to the external identity
// service. Nothing auth-related lives in this process.
type AuthHandler struct {
	client     *resty.Client
	serviceURL string
}

func NewAuthHandler(serviceURL string) *AuthHandler {
	return &AuthHandler{
		client:     resty.New().SetBaseURL(serviceURL),
		serviceURL: serviceURL,
	}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.All("/api/auth/*", h.Proxy)
}

func (h *AuthHandler) Proxy(c *fiber.Ctx) error {
	if h.serviceURL == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "auth service unavailable",
		})
	}

	target := "/" + c.Params("*")
	if qs := string(c.Request().URI().QueryString()); qs != "" {
		target += "?" + qs
	}

	req := h.client.R().SetBody(c.Body())
	if ct := c.Get(fiber.HeaderContentType); ct != "" {
		req.SetHeader(fiber.HeaderContentType, ct)
	}

	resp, err := req.Execute(c.Method(), target)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "auth service unavailable",
		}, err)
	}

	if ct := resp.Header().Get(fiber.HeaderContentType); ct != "" {
		c.Set(fiber.HeaderContentType, ct)
	}
	return c.Status(resp.StatusCode()).Send(resp.Body())
}
