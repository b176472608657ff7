package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"rallypoint/internal/delivery/http/helpers"
	"rallypoint/internal/delivery/http/middleware"
	"rallypoint/internal/domain"
)

// HourLogController handles hour submission and the admin review queue.
type HourLogController struct {
	Logger  *slog.Logger
	Service domain.HourLogService
}

func NewHourLogController(logger *slog.Logger, svc domain.HourLogService) *HourLogController {
	return &HourLogController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitHoursRequest is the request body for POST /events/{eventID}/loghours.
type SubmitHoursRequest struct {
	Hours      float64   `json:"hours"`
	DateWorked time.Time `json:"date_worked"`
}

// Validate implements helpers.Validator.
func (s SubmitHoursRequest) Validate() []string {
	var errs []string
	if s.Hours <= 0 {
		errs = append(errs, "hours must be greater than zero")
	}
	if s.DateWorked.IsZero() {
		errs = append(errs, "date_worked is required")
	}
	return errs
}

// HourLogSuccessResponse is the success response envelope for POST /events/{eventID}/loghours (201).
type HourLogSuccessResponse struct {
	Data  *domain.HourLog   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// HourLogListSuccessResponse is the success response envelope for hour log list endpoints.
type HourLogListSuccessResponse struct {
	Data  []*domain.HourLog `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SubmitHours godoc
// @Summary Submit volunteered hours
// @Description Records hours against an event that has already started. The log is created pending and counts toward stats only once approved.
// @Tags hours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body SubmitHoursRequest true "Hours worked"
// @Success 201 {object} controllers.HourLogSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid hours, or the event has not started)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (account not approved)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/loghours [post]
func (c *HourLogController) SubmitHours(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !uuidRegex.MatchString(eventID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req SubmitHoursRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	log, err := c.Service.Submit(r.Context(), eventID, userID, req.Hours, req.DateWorked)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "hours must be greater than zero")
		case errors.Is(err, domain.ErrFutureEvent):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "event has not started yet")
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "account not approved")
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, log)
}

// MyHours godoc
// @Summary List my hour logs
// @Description Returns the authenticated volunteer's logs of every status, most recent date worked first.
// @Tags hours
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.HourLogListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/my-hours [get]
func (c *HourLogController) MyHours(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	logs, err := c.Service.ListMine(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	if logs == nil {
		logs = []*domain.HourLog{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, logs)
}

// PendingHours godoc
// @Summary List pending hour logs
// @Description Admin review queue: pending logs only, oldest submission first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.HourLogListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/pending-hours [get]
func (c *HourLogController) PendingHours(w http.ResponseWriter, r *http.Request) {
	logs, err := c.Service.ListPending(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	if logs == nil {
		logs = []*domain.HourLog{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, logs)
}

// SetHourLogStatusRequest is the request body for PUT /admin/hours/{logID}/status.
type SetHourLogStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements helpers.Validator.
func (s SetHourLogStatusRequest) Validate() []string {
	if s.Status != domain.HourLogApproved && s.Status != domain.HourLogRejected {
		return []string{"status must be approved or rejected"}
	}
	return nil
}

// SetHourLogStatus godoc
// @Summary Approve or reject an hour log
// @Description Overwrites the log's status. Re-reviewing an already decided log is allowed and simply overwrites the decision.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param logID path string true "Hour log ID (UUID)"
// @Param body body SetHourLogStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/hours/{logID}/status [put]
func (c *HourLogController) SetHourLogStatus(w http.ResponseWriter, r *http.Request) {
	logID := r.PathValue("logID")
	if !uuidRegex.MatchString(logID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid logID")
		return
	}
	var req SetHourLogStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SetStatus(r.Context(), logID, req.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "status must be approved or rejected")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "hour log not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "hour log updated"})
}
