package handlers

import (
	"BrainDump/internal/auth"
	"BrainDump/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию и вход.
type UserHandler struct {
	UserService *service.UserService
	Tokens      *auth.TokenService
	Logger      *zap.SugaredLogger
	validate    *validator.Validate
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(userService *service.UserService, tokens *auth.TokenService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{
		UserService: userService,
		Tokens:      tokens,
		Logger:      logger,
		validate:    validator.New(),
	}
}

// CredentialsRequest — тело signup и signin.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=4,max=20"`
	Password string `json:"password" validate:"required,min=4,max=20"`
}

// validationResponse перечисляет поля, не прошедшие проверку на границе.
type validationResponse struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields"`
}

// decodeCredentials разбирает и валидирует тело. При ошибке сам пишет
// 400 и возвращает false.
func (h *UserHandler) decodeCredentials(w http.ResponseWriter, r *http.Request, op string) (CredentialsRequest, bool) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw(op+": invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid input")
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		fields := []string{}
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
		}
		h.Logger.Warnw(op+": validation failed", "fields", fields)
		writeJSON(w, http.StatusBadRequest, validationResponse{Message: "Invalid input", Fields: fields})
		return req, false
	}
	return req, true
}

// Signup регистрирует пользователя.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r, "Signup")
	if !ok {
		return
	}

	if _, err := h.UserService.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			h.Logger.Warnw("Signup: username taken", "username", req.Username)
			writeMessage(w, http.StatusConflict, "Username already exists, try another.")
			return
		}
		h.Logger.Errorw("Signup: service error", "username", req.Username, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Logger.Infow("user signed up", "username", req.Username)
	writeMessage(w, http.StatusOK, "User signed up")
}

// tokenResponse — успешный ответ signin.
type tokenResponse struct {
	Token string `json:"token"`
}

// Signin проверяет учётные данные и выдаёт токен.
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r, "Signin")
	if !ok {
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrIncorrectCredentials) {
			h.Logger.Warnw("Signin: incorrect credentials", "username", req.Username)
			writeMessage(w, http.StatusForbidden, "Incorrect credentials")
			return
		}
		h.Logger.Errorw("Signin: service error", "username", req.Username, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		h.Logger.Errorw("Signin: issue token", "user_id", user.ID, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Logger.Infow("user signed in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
