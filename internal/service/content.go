package service

import (
	"BrainDump/internal/model"
	"BrainDump/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrContentNotFound возвращается при удалении несуществующего
// (или чужого — для вызывающего это одно и то же) элемента.
var ErrContentNotFound = errors.New("content not found")

// ContentService инкапсулирует CRUD над элементами коллекции.
// Владелец всегда приходит параметром из проверенного токена,
// никогда — из тела запроса.
type ContentService struct {
	repo   repo.ContentRepository
	logger *zap.SugaredLogger
}

func NewContentService(r repo.ContentRepository, logger *zap.SugaredLogger) *ContentService {
	return &ContentService{repo: r, logger: logger}
}

// AddInput — поля нового элемента, уже провалидированные на границе.
type AddInput struct {
	Title string
	Link  string
	Text  string
	Type  string
	Tags  []string
}

// Add создаёт элемент с новым UUID и возвращает его.
func (s *ContentService) Add(ctx context.Context, userID int64, in AddInput) (*model.Content, error) {
	c := &model.Content{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  in.Title,
		Link:   in.Link,
		Text:   in.Text,
		Type:   in.Type,
		Tags:   in.Tags,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	s.logger.Infow("content added", "user_id", userID, "content_id", c.ID, "type", c.Type)
	return c, nil
}

// List возвращает все элементы пользователя.
func (s *ContentService) List(ctx context.Context, userID int64) ([]model.Content, error) {
	items, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return items, nil
}

// Delete удаляет элемент пользователя по ID. Чужой или несуществующий
// ID — ErrContentNotFound: подобранный идентификатор не трогает чужую
// запись и не выдаёт её существование.
func (s *ContentService) Delete(ctx context.Context, userID int64, contentID string) error {
	deleted, err := s.repo.DeleteByIDAndOwner(ctx, userID, contentID)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if deleted == 0 {
		return ErrContentNotFound
	}
	s.logger.Infow("content deleted", "user_id", userID, "content_id", contentID)
	return nil
}
