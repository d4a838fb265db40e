package repo

import (
	"BrainDump/internal/model"
	"context"

	"gorm.io/gorm"
)

// ContentRepository определяет контракт доступа к Content.
// Все операции принимают userID владельца: фильтр по владельцу — часть
// контракта хранилища, а не доброй воли вызывающего кода.
type ContentRepository interface {
	// Create вставляет новый элемент.
	Create(ctx context.Context, c *model.Content) error

	// ListByOwner возвращает все элементы пользователя.
	ListByOwner(ctx context.Context, userID int64) ([]model.Content, error)

	// DeleteByIDAndOwner удаляет элемент по ID, только если он принадлежит
	// userID. Возвращает число удалённых строк (0 — чужой или несуществующий ID).
	DeleteByIDAndOwner(ctx context.Context, userID int64, id string) (int64, error)
}

type contentRepo struct {
	db *gorm.DB
}

// NewContentRepository создаёт реализацию репозитория для Content.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepo{db: db}
}

func (r *contentRepo) Create(ctx context.Context, c *model.Content) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contentRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Content, error) {
	items := make([]model.Content, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentRepo) DeleteByIDAndOwner(ctx context.Context, userID int64, id string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Content{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
