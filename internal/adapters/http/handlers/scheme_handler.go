package handlers

import (
	"errors"
	"strings"

	"scholarhub/internal/adapters/persistence/repositories"
	"scholarhub/internal/core/services"
	"scholarhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SchemeHandler handles scheme catalog endpoints
type SchemeHandler struct {
	schemeService *services.SchemeService
}

// NewSchemeHandler creates a new scheme handler
func NewSchemeHandler(schemeService *services.SchemeService) *SchemeHandler {
	return &SchemeHandler{schemeService: schemeService}
}

// List handles scheme catalog browsing
// @Summary List schemes
// @Description Browse the scholarship catalog with optional filters
// @Tags Schemes
// @Accept json
// @Produce json
// @Param q query string false "Free-text search on scheme and scholarship name"
// @Param academic_year query string false "Exact academic year"
// @Param type query string false "Exact scheme type"
// @Param category query string false "Comma-separated categories (match any)"
// @Param international query string false "Set to 1 for international-eligible only"
// @Success 200 {object} map[string]interface{}
// @Router /schemes [get]
func (h *SchemeHandler) List(c *fiber.Ctx) error {
	filter := &repositories.SchemeFilter{
		Query:         c.Query("q"),
		AcademicYear:  c.Query("academic_year"),
		Type:          c.Query("type"),
		International: c.Query("international") == "1",
	}

	if raw := c.Query("category"); raw != "" {
		for _, category := range strings.Split(raw, ",") {
			if category = strings.TrimSpace(category); category != "" {
				filter.Categories = append(filter.Categories, category)
			}
		}
	}

	schemes, err := h.schemeService.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to list schemes")
	}

	return c.JSON(fiber.Map{
		"schemes": schemes,
	})
}

// GetByID handles scheme lookup
// @Summary Get scheme
// @Description Get one scheme by id
// @Tags Schemes
// @Accept json
// @Produce json
// @Param id path int true "Scheme ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Router /schemes/{id} [get]
func (h *SchemeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid scheme id")
	}

	scheme, err := h.schemeService.GetByID(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSchemeNotFound):
			return response.NotFound(c, "Scheme not found")
		default:
			return response.InternalServerError(c, "Failed to get scheme")
		}
	}

	return c.JSON(fiber.Map{
		"scheme": scheme,
	})
}
