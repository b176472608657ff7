package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"rallypoint/internal/delivery/http/helpers"
	"rallypoint/internal/delivery/http/middleware"
	"rallypoint/internal/domain"
)

// MessageController handles user-to-admin support tickets.
type MessageController struct {
	Logger  *slog.Logger
	Service domain.SupportMessageService
}

func NewMessageController(logger *slog.Logger, svc domain.SupportMessageService) *MessageController {
	return &MessageController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateMessageRequest is the request body for POST /messages.
type CreateMessageRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate implements helpers.Validator.
func (c CreateMessageRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Subject) == "" {
		errs = append(errs, "subject is required")
	}
	if strings.TrimSpace(c.Body) == "" {
		errs = append(errs, "body is required")
	}
	return errs
}

// MessageSuccessResponse is the success response envelope for single-message endpoints.
type MessageSuccessResponse struct {
	Data  *domain.SupportMessage `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// MessageListSuccessResponse is the success response envelope for GET /messages/my (200).
type MessageListSuccessResponse struct {
	Data  []*domain.SupportMessage `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// AdminMessageListData is the data payload for the admin inbox, GET /messages.
type AdminMessageListData struct {
	Messages   []*domain.SupportMessageWithSender `json:"messages"`
	Pagination helpers.PaginationMeta             `json:"pagination"`
}

// AdminMessageListSuccessResponse is the success response envelope for the admin inbox, GET /messages (200).
type AdminMessageListSuccessResponse struct {
	Data  AdminMessageListData `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// CreateMessage godoc
// @Summary Send a support message
// @Description Opens a ticket to the admins. The message starts unread.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateMessageRequest true "Subject and body"
// @Success 201 {object} controllers.MessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /messages [post]
func (c *MessageController) CreateMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreateMessageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	msg, err := c.Service.Create(r.Context(), userID, req.Subject, req.Body)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, msg)
}

// MyMessages godoc
// @Summary List my support messages
// @Description Returns the authenticated user's messages, newest first, including any admin replies.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MessageListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /messages/my [get]
func (c *MessageController) MyMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	msgs, err := c.Service.ListMine(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	if msgs == nil {
		msgs = []*domain.SupportMessage{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msgs)
}

// ListMessages godoc
// @Summary List all support messages
// @Description Admin inbox: every user's messages with sender name and email, newest first, paginated.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.AdminMessageListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /messages [get]
func (c *MessageController) ListMessages(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	msgs, total, err := c.Service.ListAll(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	if msgs == nil {
		msgs = []*domain.SupportMessageWithSender{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AdminMessageListData{
		Messages:   msgs,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// MarkRead godoc
// @Summary Mark a support message as read
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param messageID path string true "Message ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /messages/{messageID}/read [put]
func (c *MessageController) MarkRead(w http.ResponseWriter, r *http.Request) {
	messageID := r.PathValue("messageID")
	if !uuidRegex.MatchString(messageID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid messageID")
		return
	}
	if err := c.Service.MarkRead(r.Context(), messageID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "message not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "marked as read"})
}

// ReplyRequest is the request body for PUT /messages/{messageID}/reply.
type ReplyRequest struct {
	ReplyText string `json:"reply_text"`
}

// Validate implements helpers.Validator.
func (rr ReplyRequest) Validate() []string {
	if strings.TrimSpace(rr.ReplyText) == "" {
		return []string{"reply_text is required"}
	}
	return nil
}

// Reply godoc
// @Summary Reply to a support message
// @Description Stores the reply text, stamps the reply time, and sets the status to replied. Replying again overwrites the previous reply.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param messageID path string true "Message ID (UUID)"
// @Param body body ReplyRequest true "Reply text"
// @Success 200 {object} controllers.MessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /messages/{messageID}/reply [put]
func (c *MessageController) Reply(w http.ResponseWriter, r *http.Request) {
	messageID := r.PathValue("messageID")
	if !uuidRegex.MatchString(messageID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid messageID")
		return
	}
	var req ReplyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	msg, err := c.Service.Reply(r.Context(), messageID, req.ReplyText)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "message not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msg)
}
