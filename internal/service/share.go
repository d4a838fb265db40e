package service

import (
	"BrainDump/internal/model"
	"BrainDump/internal/repo"
	"context"
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrShareNotFound возвращается, когда hash не соответствует активной ссылке.
	ErrShareNotFound = errors.New("share link not found")
	// ErrLinkCreationFailed возвращается, когда создать ссылку не удалось
	// даже после повторных попыток.
	ErrLinkCreationFailed = errors.New("share link creation failed")
)

const (
	// Алфавит и длина публичного hash. 62^10 ≈ 8.4e17 вариантов —
	// случайное совпадение на реалистичной популяции пользователей
	// пренебрежимо, перебор неосуществим.
	hashAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	hashLength   = 10

	// Сколько раз перегенерировать hash при конфликте в БД.
	maxHashAttempts = 5
)

// ShareService управляет публичными ссылками: не более одной на
// пользователя, включение идемпотентно, выключение — идемпотентное
// удаление, разрешение hash доступно анониму.
type ShareService struct {
	links   repo.LinkRepository
	users   repo.UserRepository
	content repo.ContentRepository
	logger  *zap.SugaredLogger
}

func NewShareService(links repo.LinkRepository, users repo.UserRepository, content repo.ContentRepository, logger *zap.SugaredLogger) *ShareService {
	return &ShareService{links: links, users: users, content: content, logger: logger}
}

// newShareHash возвращает случайную строку фиксированной длины из
// алфавита [0-9A-Za-z]. Источник — crypto/rand внутри nanoid; от
// userID и времени hash не зависит.
func newShareHash() (string, error) {
	return gonanoid.Generate(hashAlphabet, hashLength)
}

// Enable включает публикацию коллекции пользователя и возвращает hash.
// Повторный вызов возвращает тот же hash, не создавая второй ссылки и
// не ротируя старую.
func (s *ShareService) Enable(ctx context.Context, userID int64) (string, error) {
	existing, err := s.links.GetByUserID(ctx, userID)
	if err == nil {
		return existing.Hash, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("lookup share link: %w", err)
	}

	for attempt := 0; attempt < maxHashAttempts; attempt++ {
		hash, err := newShareHash()
		if err != nil {
			return "", fmt.Errorf("generate share hash: %w", err)
		}

		created, err := s.links.CreateIfAbsent(ctx, &model.ShareLink{Hash: hash, UserID: userID})
		if err != nil {
			// Коллизия hash с чужой ссылкой: пробуем со свежим значением.
			s.logger.Warnw("share hash conflict, regenerating", "user_id", userID, "attempt", attempt+1, "error", err)
			continue
		}
		if created {
			s.logger.Infow("sharing enabled", "user_id", userID)
			return hash, nil
		}

		// Проиграли гонку конкурентному Enable того же пользователя —
		// ссылка уже есть, отдаём её hash.
		winner, err := s.links.GetByUserID(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("lookup share link after race: %w", err)
		}
		return winner.Hash, nil
	}

	return "", ErrLinkCreationFailed
}

// Disable выключает публикацию. Отсутствие ссылки — не ошибка.
func (s *ShareService) Disable(ctx context.Context, userID int64) error {
	deleted, err := s.links.DeleteByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete share link: %w", err)
	}
	if deleted > 0 {
		s.logger.Infow("sharing disabled", "user_id", userID)
	}
	return nil
}

// SharedBrain — read-only проекция опубликованной коллекции.
// Учётных полей владельца здесь нет и быть не должно.
type SharedBrain struct {
	Username string
	Content  []model.Content
}

// Resolve возвращает коллекцию по hash. Неизвестный hash и осиротевшая
// ссылка (владелец исчез) одинаково дают ErrShareNotFound: контракт
// для анонима — «не найдено», а не «данные повреждены».
func (s *ShareService) Resolve(ctx context.Context, hash string) (*SharedBrain, error) {
	link, err := s.links.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShareNotFound
		}
		return nil, fmt.Errorf("lookup share link: %w", err)
	}

	owner, err := s.users.GetUserByID(ctx, link.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warnw("share link without owner", "hash", hash, "user_id", link.UserID)
			return nil, ErrShareNotFound
		}
		return nil, fmt.Errorf("lookup link owner: %w", err)
	}

	items, err := s.content.ListByOwner(ctx, link.UserID)
	if err != nil {
		return nil, fmt.Errorf("list shared content: %w", err)
	}

	return &SharedBrain{Username: owner.Username, Content: items}, nil
}
