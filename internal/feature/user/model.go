package user

import (
	"time"

	"go-gin-user-table/internal/domain"
)

type UserModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;size:64;not null"`
	Email    string `gorm:"size:255;not null;default:''"`
	IsAdmin  bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

func (m UserModel) ToDomain() domain.User {
	return domain.User{ID: m.ID, Username: m.Username, Email: m.Email, IsAdmin: m.IsAdmin}
}

func FromDomain(u domain.User) UserModel {
	return UserModel{ID: u.ID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin}
}
