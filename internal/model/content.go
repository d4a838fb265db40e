package model

import "time"

// Content — серверная модель элемента коллекции пользователя (закладка или заметка).
type Content struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"userId"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title string `gorm:"not null" json:"title"`
	Link  string `json:"link"`
	Text  string `json:"text"`
	Type  string `json:"type"` // "link" | "note"

	Tags []string `gorm:"serializer:json" json:"tags"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
