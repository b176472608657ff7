package controllers

import (
	"log/slog"
	"net/http"

	"rallypoint/internal/delivery/http/helpers"
	"rallypoint/internal/domain"
)

// AdminController serves the dashboard stats.
type AdminController struct {
	Logger  *slog.Logger
	Service domain.StatsService
}

func NewAdminController(logger *slog.Logger, svc domain.StatsService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// StatsSuccessResponse is the success response envelope for GET /admin/stats (200).
type StatsSuccessResponse struct {
	Data  *domain.AdminStats `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// Stats godoc
// @Summary Admin dashboard counters
// @Description Returns total volunteers, pending volunteers, upcoming events, and the sum of approved hours. Counters are recomputed on every call.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.StatsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/stats [get]
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Collect(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}
