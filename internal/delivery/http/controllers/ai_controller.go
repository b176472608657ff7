package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"rallypoint/internal/delivery/http/helpers"
	"rallypoint/internal/delivery/http/middleware"
	"rallypoint/internal/domain"
)

// AIController handles the generative-text helper endpoints.
type AIController struct {
	Logger  *slog.Logger
	Service domain.AIService
}

func NewAIController(logger *slog.Logger, svc domain.AIService) *AIController {
	return &AIController{
		Logger:  logger,
		Service: svc,
	}
}

// GenerateDescriptionRequest is the request body for POST /ai/generate.
type GenerateDescriptionRequest struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
}

// Validate implements helpers.Validator.
func (g GenerateDescriptionRequest) Validate() []string {
	if strings.TrimSpace(g.Title) == "" {
		return []string{"title is required"}
	}
	return nil
}

// GenerateDescriptionData is the data payload for POST /ai/generate.
type GenerateDescriptionData struct {
	Description string `json:"description"`
}

// GenerateDescriptionSuccessResponse is the success response envelope for POST /ai/generate (200).
type GenerateDescriptionSuccessResponse struct {
	Data  GenerateDescriptionData `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// GenerateDescription godoc
// @Summary Draft an event description
// @Description Asks the text generator for an event description from a title and optional keywords. Generator failures surface as 502.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GenerateDescriptionRequest true "Title and keywords"
// @Success 200 {object} controllers.GenerateDescriptionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 502 {object} helpers.APIResponse "error.code: internal_error (generator unavailable)"
// @Router /ai/generate [post]
func (c *AIController) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req GenerateDescriptionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	description, err := c.Service.GenerateDescription(r.Context(), req.Title, req.Keywords)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeInternalError, "text generation unavailable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GenerateDescriptionData{Description: description})
}

// ClassifyEventRequest is the request body for POST /ai/classify.
type ClassifyEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate implements helpers.Validator.
func (ce ClassifyEventRequest) Validate() []string {
	if strings.TrimSpace(ce.Title) == "" {
		return []string{"title is required"}
	}
	return nil
}

// ClassifyEventData is the data payload for POST /ai/classify.
type ClassifyEventData struct {
	Categories []string `json:"categories"`
}

// ClassifyEventSuccessResponse is the success response envelope for POST /ai/classify (200).
type ClassifyEventSuccessResponse struct {
	Data  ClassifyEventData `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ClassifyEvent godoc
// @Summary Suggest categories for an event
// @Description Asks the text generator to tag the event. Returns an empty list rather than failing when the generator is unavailable or its output cannot be parsed.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ClassifyEventRequest true "Title and description"
// @Success 200 {object} controllers.ClassifyEventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ai/classify [post]
func (c *AIController) ClassifyEvent(w http.ResponseWriter, r *http.Request) {
	var req ClassifyEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	categories, err := c.Service.ClassifyEvent(r.Context(), req.Title, req.Description)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ClassifyEventData{Categories: categories})
}

// RecommendationsSuccessResponse is the success response envelope for GET /ai/recommendations (200).
type RecommendationsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Recommendations godoc
// @Summary Recommend upcoming events for me
// @Description Matches the caller's skills against upcoming events via the text generator. Returns an empty list rather than failing when the generator is unavailable.
// @Tags ai
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.RecommendationsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ai/recommendations [get]
func (c *AIController) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	events, err := c.Service.RecommendEvents(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
