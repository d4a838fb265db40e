package repo

import (
	"BrainDump/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkRepository определяет контракт доступа к ShareLink.
type LinkRepository interface {
	// CreateIfAbsent пытается создать ссылку. Если ссылка для этого
	// пользователя уже есть (в т.ч. создана конкурентным запросом),
	// ничего не делает и возвращает created=false без ошибки.
	// Конфликт по hash (коллизия генератора) возвращается как ошибка.
	CreateIfAbsent(ctx context.Context, link *model.ShareLink) (created bool, err error)

	// GetByUserID возвращает ссылку пользователя или gorm.ErrRecordNotFound.
	GetByUserID(ctx context.Context, userID int64) (*model.ShareLink, error)

	// GetByHash возвращает ссылку по hash или gorm.ErrRecordNotFound.
	GetByHash(ctx context.Context, hash string) (*model.ShareLink, error)

	// DeleteByUserID удаляет ссылку пользователя, если она есть.
	// Возвращает число удалённых строк.
	DeleteByUserID(ctx context.Context, userID int64) (int64, error)
}

type linkRepo struct {
	db *gorm.DB
}

// NewLinkRepository создаёт реализацию репозитория для ShareLink.
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepo{db: db}
}

// CreateIfAbsent создает ShareLink, если у пользователя её ещё нет.
// ON CONFLICT нацелен на user_id: проигравший гонку запрос получает
// RowsAffected=0, а не ошибку. Конфликт по первичному ключу hash
// остаётся ошибкой — её разбирает сервис.
func (r *linkRepo) CreateIfAbsent(ctx context.Context, link *model.ShareLink) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(link)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *linkRepo) GetByUserID(ctx context.Context, userID int64) (*model.ShareLink, error) {
	var l model.ShareLink
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *linkRepo) GetByHash(ctx context.Context, hash string) (*model.ShareLink, error) {
	var l model.ShareLink
	if err := r.db.WithContext(ctx).Where("hash = ?", hash).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *linkRepo) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ShareLink{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
