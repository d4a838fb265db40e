package handlers

import (
	"BrainDump/internal/middleware"
	"BrainDump/internal/model"
	"BrainDump/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ShareHandler обрабатывает публикацию коллекции и анонимный просмотр.
type ShareHandler struct {
	ShareService *service.ShareService
	Logger       *zap.SugaredLogger
}

// NewShareHandler создаёт хендлер публичных ссылок.
func NewShareHandler(shareService *service.ShareService, logger *zap.SugaredLogger) *ShareHandler {
	return &ShareHandler{ShareService: shareService, Logger: logger}
}

// ShareRequest — тело POST /brain/share. Share — указатель, чтобы
// отличать отсутствующее поле от явного false.
type ShareRequest struct {
	Share *bool `json:"share"`
}

// hashResponse — ответ при включении публикации.
type hashResponse struct {
	Hash string `json:"hash"`
}

// Share включает или выключает публикацию коллекции текущего пользователя.
// Включение идемпотентно: повторный вызов возвращает прежний hash.
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Share == nil {
		h.Logger.Warnw("Share: invalid request body", "user_id", userID, "error", err)
		writeJSON(w, http.StatusBadRequest, validationResponse{Message: "Invalid input", Fields: []string{"Share"}})
		return
	}

	if *req.Share {
		hash, err := h.ShareService.Enable(r.Context(), userID)
		if err != nil {
			h.Logger.Errorw("Share: enable failed", "user_id", userID, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Error processing share request")
			return
		}
		writeJSON(w, http.StatusOK, hashResponse{Hash: hash})
		return
	}

	if err := h.ShareService.Disable(r.Context(), userID); err != nil {
		h.Logger.Errorw("Share: disable failed", "user_id", userID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Error processing share request")
		return
	}
	writeMessage(w, http.StatusOK, "Removed share link")
}

// sharedBrainResponse — анонимная read-only проекция коллекции.
type sharedBrainResponse struct {
	Username string          `json:"username"`
	Content  []model.Content `json:"content"`
}

// Resolve отдаёт коллекцию по публичному hash. Маршрут анонимный,
// WithAuth сюда не вешается.
func (h *ShareHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "shareLink")

	brain, err := h.ShareService.Resolve(r.Context(), hash)
	if err != nil {
		if errors.Is(err, service.ErrShareNotFound) {
			writeMessage(w, http.StatusNotFound, "Invalid share link")
			return
		}
		h.Logger.Errorw("Resolve: service error", "hash", hash, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Error accessing shared content")
		return
	}

	writeJSON(w, http.StatusOK, sharedBrainResponse{Username: brain.Username, Content: brain.Content})
}
