package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string
	Image     string
	CreatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Id == "" {
		u.Id = uuid.NewString()
	}
	return nil
}

func GetUserById(id string) (User, error) {
	u := User{}
	err := Db.First(&u, "id = ?", id).Error
	return u, err
}

func GetUserByEmail(email string) (User, error) {
	u := User{}
	err := Db.First(&u, "email = ?", email).Error
	return u, err
}

func PersistUser(user *User) error {
	return Db.Create(user).Error
}
