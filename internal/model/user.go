package model

// User — серверная модель пользователя.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Password хранит bcrypt-хеш, в JSON никогда не отдаётся.
	Password string `gorm:"not null" json:"-"`
}
