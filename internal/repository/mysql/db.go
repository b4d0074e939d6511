package mysql

import (
	"errors"

	"Club_Community/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// 唯一键冲突统一翻译成 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Migrate 幂等建表/补列，只增不删
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Membership{},
		&model.Post{},
		&model.Comment{},
		&model.PostLike{},
		&model.Announcement{},
		&model.Event{},
		&model.EventRegistration{},
		&model.Payment{},
		&model.Album{},
		&model.Photo{},
		&model.BillingOutbox{},
	)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
