package model

// ShareLink — публичная ссылка на коллекцию пользователя.
// Оба уникальных индекса несут инварианты: hash неугадываем и уникален
// во всей таблице, user_id уникален — не более одной ссылки на пользователя.
type ShareLink struct {
	Hash   string `gorm:"primaryKey" json:"hash"`
	UserID int64  `gorm:"uniqueIndex;not null" json:"userId"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
