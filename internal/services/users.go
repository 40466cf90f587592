package services

import (
	"errors"

	"github.com/mdd-dev/mdd/db"
	"github.com/mdd-dev/mdd/internal/apperr"
	"github.com/mdd-dev/mdd/internal/models"
	"github.com/mdd-dev/mdd/internal/types"
	"gorm.io/gorm"
)

// GetUserByEmail resolves the account behind a token subject.
func GetUserByEmail(email string) (models.User, error) {
	var user models.User

	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperr.NotFound(types.MsgUserNotFound)
		}
		return models.User{}, err
	}

	return user, nil
}

// GetUserByEmailOrName resolves a login identifier. A miss is reported as
// invalid credentials, indistinguishable from a wrong password.
func GetUserByEmailOrName(identifier string) (models.User, error) {
	var user models.User

	if err := db.DB.Where("email = ? OR name = ?", identifier, identifier).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperr.InvalidCredentials(types.MsgInvalidCredentials)
		}
		return models.User{}, err
	}

	return user, nil
}

func CheckNameNotUsed(name string) error {
	var count int64

	if err := db.DB.Model(&models.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return apperr.Conflict(types.MsgNameAlreadyUsed)
	}

	return nil
}

func CheckEmailNotUsed(email string) error {
	var count int64

	if err := db.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return apperr.Conflict(types.MsgEmailAlreadyUsed)
	}

	return nil
}
