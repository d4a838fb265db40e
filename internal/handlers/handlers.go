package handlers

import (
	"BrainDump/internal/auth"
	"BrainDump/internal/config"
	"BrainDump/internal/middleware"
	"BrainDump/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	contentService *service.ContentService,
	shareService *service.ShareService,
	tokens *auth.TokenService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{config.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, tokens, logger)
	contentHandler := NewContentHandler(contentService, logger)
	shareHandler := NewShareHandler(shareService, logger)

	// Public routes: регистрация, вход и анонимный просмотр по публичной
	// ссылке. Auth-гейт сюда не заходит.
	r.Post("/api/v1/signup", userHandler.Signup)
	r.Post("/api/v1/signin", userHandler.Signin)
	r.Get("/api/v1/brain/{shareLink}", shareHandler.Resolve)

	// Authenticated routes: всё, что привязано к владельцу,
	// за строгим bearer-гейтом.
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(tokens))

		r.Post("/api/v1/content", contentHandler.Add)
		r.Get("/api/v1/content", contentHandler.List)
		r.Delete("/api/v1/content", contentHandler.Delete)

		r.Post("/api/v1/brain/share", shareHandler.Share)
	})

	return &Handler{Router: r}
}

// writeJSON сериализует ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// messageResponse — каркас для ответов вида {"message": ...}.
type messageResponse struct {
	Message string `json:"message"`
}

// writeMessage отдаёт структурированное сообщение. Для ошибок сюда
// попадает только текст для клиента, внутренние детали остаются в логах.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}
