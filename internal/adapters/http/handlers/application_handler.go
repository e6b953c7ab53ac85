package handlers

import (
	"errors"
	"mime/multipart"

	"scholarhub/internal/core/services"
	"scholarhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles application submission and tracking
type ApplicationHandler struct {
	appService services.ApplicationWorkflow
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(appService services.ApplicationWorkflow) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// Apply handles application submission
// @Summary Submit application
// @Description Submit a scholarship application with optional document uploads
// @Tags Applications
// @Accept multipart/form-data
// @Produce json
// @Param data formData string true "JSON-encoded applicant payload with user_id and scheme_id"
// @Param photo formData file false "Applicant photo"
// @Param mark10 formData file false "Class 10 mark sheet"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /apply [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	data := c.FormValue("data")
	if data == "" {
		return response.BadRequest(c, "Application data is required")
	}

	files := map[string]*multipart.FileHeader{}
	for _, field := range services.DocumentFields {
		if fileHeader, err := c.FormFile(field); err == nil && fileHeader != nil {
			files[field] = fileHeader
		}
	}

	applicationID, err := h.appService.Apply(c.Context(), &services.ApplyInput{
		Data:  []byte(data),
		Files: files,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPayload):
			return response.BadRequest(c, "Application data must be valid JSON")
		case errors.Is(err, services.ErrMissingReference):
			return response.BadRequest(c, "user_id and scheme_id are required")
		default:
			return response.InternalServerError(c, "Failed to submit application")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"applicationId": applicationID,
	})
}

// MyApplications handles a user's application listing
// @Summary List my applications
// @Description List every application of a user, newest first
// @Tags Applications
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /my-applications/{userId} [get]
func (h *ApplicationHandler) MyApplications(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return response.BadRequest(c, "Invalid user id")
	}

	applications, err := h.appService.MyApplications(c.Context(), uint(userID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}

	return c.JSON(fiber.Map{
		"applications": applications,
	})
}

// Detail handles application detail lookup
// @Summary Get application
// @Description Get one application with scheme fields and documents
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Router /application/{id} [get]
func (h *ApplicationHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid application id")
	}

	detail, err := h.appService.Detail(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			return response.NotFound(c, "Application not found")
		default:
			return response.InternalServerError(c, "Failed to get application")
		}
	}

	return c.JSON(fiber.Map{
		"application": detail,
		"documents":   detail.Documents,
	})
}
