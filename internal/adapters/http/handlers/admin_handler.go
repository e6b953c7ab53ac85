package handlers

import (
	"scholarhub/internal/adapters/persistence/models"
	"scholarhub/internal/core/services"
	"scholarhub/internal/pkg/pagination"
	"scholarhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin review endpoints
type AdminHandler struct {
	appService services.ApplicationWorkflow
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(appService services.ApplicationWorkflow) *AdminHandler {
	return &AdminHandler{appService: appService}
}

// Stats handles the dashboard counters
// @Summary Admin stats
// @Description Total users, total schemes and pending application counts
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} services.AdminStats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.appService.Stats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute stats")
	}

	return c.JSON(stats)
}

// PendingApplications handles the admin review queue
// @Summary Pending applications
// @Description Pending applications in FIFO review order; page/limit opt into pagination
// @Tags Admin
// @Accept json
// @Produce json
// @Param page query int false "Page number (omit for the full list)"
// @Param limit query int false "Items per page"
// @Success 200 {object} map[string]interface{}
// @Router /admin/pending-applications [get]
func (h *AdminHandler) PendingApplications(c *fiber.Ctx) error {
	applications, err := h.appService.PendingApplications(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list pending applications")
	}

	// Full FIFO list by default; pagination is opt-in.
	if params := pagination.Optional(c); params != nil {
		total := int64(len(applications))
		start := params.Offset
		if start > len(applications) {
			start = len(applications)
		}
		end := start + params.Limit
		if end > len(applications) {
			end = len(applications)
		}
		return c.JSON(fiber.Map{
			"applications": applications[start:end],
			"meta":         pagination.GetMeta(params, total),
		})
	}

	return c.JSON(fiber.Map{
		"applications": applications,
	})
}

// Approve handles application approval
// @Summary Approve application
// @Description Set an application status to Approved
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/application/{id}/approve [post]
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	return h.setStatus(c, models.StatusApproved, "Application approved")
}

// Reject handles application rejection
// @Summary Reject application
// @Description Set an application status to Rejected
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} map[string]interface{}
// @Router /admin/application/{id}/reject [post]
func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	return h.setStatus(c, models.StatusRejected, "Application rejected")
}

// setStatus issues the unconditional status write. The operation
// succeeds whether or not the id matched a row; "updated" tells the
// caller which one happened.
func (h *AdminHandler) setStatus(c *fiber.Ctx, status, message string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid application id")
	}

	updated, err := h.appService.SetStatus(c.Context(), uint(id), status)
	if err != nil {
		return response.InternalServerError(c, "Failed to update application status")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"updated": updated,
	})
}
