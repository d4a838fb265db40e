package service

import (
	"BrainDump/internal/model"
	"BrainDump/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken возвращается при регистрации с занятым именем.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrIncorrectCredentials возвращается при неверной паре имя/пароль.
	ErrIncorrectCredentials = errors.New("incorrect credentials")
)

// UserService инкапсулирует регистрацию и вход.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
// Занятое имя — ErrUsernameTaken; частичного состояния не остаётся:
// запись либо вставлена целиком, либо нет.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{Username: username, Password: string(hash)})
	if err != nil {
		// Конкурентная регистрация того же имени: проверка выше прошла,
		// а вставка упёрлась в уникальный индекс. Перепроверяем и отдаём
		// тот же конфликт, что и при обычном повторе.
		if again, lookupErr := s.repo.GetUserByUsername(ctx, username); lookupErr == nil && again != nil {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login проверяет учётные данные и возвращает пользователя.
// Неизвестное имя и неверный пароль неразличимы для вызывающего.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncorrectCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrIncorrectCredentials
	}
	return user, nil
}
