package handlers

import (
	"BrainDump/internal/middleware"
	"BrainDump/internal/model"
	"BrainDump/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ContentHandler обрабатывает CRUD над элементами коллекции.
// Все маршруты стоят за WithAuth: ID владельца берётся из контекста.
type ContentHandler struct {
	ContentService *service.ContentService
	Logger         *zap.SugaredLogger
	validate       *validator.Validate
}

// NewContentHandler создаёт хендлер контента.
func NewContentHandler(contentService *service.ContentService, logger *zap.SugaredLogger) *ContentHandler {
	return &ContentHandler{
		ContentService: contentService,
		Logger:         logger,
		validate:       validator.New(),
	}
}

// AddContentRequest — тело POST /content.
type AddContentRequest struct {
	Title string   `json:"title" validate:"required"`
	Link  string   `json:"link"`
	Text  string   `json:"text"`
	Type  string   `json:"type" validate:"required"`
	Tags  []string `json:"tags"`
}

// Add создаёт элемент для текущего пользователя.
func (h *ContentHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req AddContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("AddContent: invalid request body", "user_id", userID, "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		fields := []string{}
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
		}
		h.Logger.Warnw("AddContent: validation failed", "user_id", userID, "fields", fields)
		writeJSON(w, http.StatusBadRequest, validationResponse{Message: "Invalid input", Fields: fields})
		return
	}

	in := service.AddInput{Title: req.Title, Link: req.Link, Text: req.Text, Type: req.Type, Tags: req.Tags}
	if _, err := h.ContentService.Add(r.Context(), userID, in); err != nil {
		h.Logger.Errorw("AddContent: service error", "user_id", userID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to add content")
		return
	}

	writeMessage(w, http.StatusOK, "Content added")
}

// contentListResponse — ответ GET /content.
type contentListResponse struct {
	Content []model.Content `json:"content"`
}

// List возвращает все элементы текущего пользователя.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	items, err := h.ContentService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("ListContent: service error", "user_id", userID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch content")
		return
	}

	writeJSON(w, http.StatusOK, contentListResponse{Content: items})
}

// DeleteContentRequest — тело DELETE /content.
type DeleteContentRequest struct {
	ContentID string `json:"contentId" validate:"required"`
}

// Delete удаляет элемент текущего пользователя. Чужой ID не трогает
// чужую запись — для вызывающего это «не найдено».
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req DeleteContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("DeleteContent: invalid request body", "user_id", userID, "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.ContentID == "" {
		writeJSON(w, http.StatusBadRequest, validationResponse{Message: "Invalid input", Fields: []string{"ContentID"}})
		return
	}

	if err := h.ContentService.Delete(r.Context(), userID, req.ContentID); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			writeMessage(w, http.StatusNotFound, "Content not found")
			return
		}
		h.Logger.Errorw("DeleteContent: service error", "user_id", userID, "content_id", req.ContentID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to delete content")
		return
	}

	writeMessage(w, http.StatusOK, "Content deleted")
}
