package services

import (
	"github.com/mdd-dev/mdd/db"
	"github.com/mdd-dev/mdd/internal/apperr"
	"github.com/mdd-dev/mdd/internal/auth"
	"github.com/mdd-dev/mdd/internal/models"
	"github.com/mdd-dev/mdd/internal/types"
)

// Register creates an account and returns a bearer token for it.
// Name uniqueness is checked before email uniqueness so the reported
// conflict is deterministic.
func Register(name, email, password string) (string, error) {
	if err := CheckNameNotUsed(name); err != nil {
		return "", err
	}

	if err := CheckEmailNotUsed(email); err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(password)

	if err != nil {
		return "", err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return "", err
	}

	return auth.GenerateJWT(user.Email)
}

// Login authenticates by email or name. An unknown identifier and a wrong
// password produce the same error, so accounts cannot be enumerated. The
// minted token is always keyed on the account email, whichever identifier
// matched.
func Login(identifier, password string) (string, error) {
	user, err := GetUserByEmailOrName(identifier)

	if err != nil {
		return "", err
	}

	if err := auth.ComparePasswordAndHash(password, user.Password); err != nil {
		return "", apperr.InvalidCredentials(types.MsgInvalidCredentials)
	}

	return auth.GenerateJWT(user.Email)
}

// Me returns the caller's profile with the topics they subscribe to.
func Me(email string) (types.UserResponse, error) {
	user, err := GetUserByEmail(email)

	if err != nil {
		return types.UserResponse{}, err
	}

	var subscriptions []models.Subscription

	if err := db.DB.Where("user_id = ?", user.ID).Find(&subscriptions).Error; err != nil {
		return types.UserResponse{}, err
	}

	topicIDs := make([]uint, 0, len(subscriptions))
	for _, sub := range subscriptions {
		topicIDs = append(topicIDs, sub.TopicID)
	}

	topics := make([]models.Topic, 0)

	if len(topicIDs) > 0 {
		if err := db.DB.Preload("Subscriptions").Find(&topics, topicIDs).Error; err != nil {
			return types.UserResponse{}, err
		}
	}

	return types.UserResponse{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Topics: topicDtosFor(topics, user.ID),
	}, nil
}

// UpdateAccount overwrites name, email and password. Uniqueness is
// re-checked only for fields that actually change; the password is always
// re-hashed. A fresh token is minted on the new email.
func UpdateAccount(email, newName, newEmail, newPassword string) (string, error) {
	user, err := GetUserByEmail(email)

	if err != nil {
		return "", err
	}

	if newEmail != user.Email {
		if err := CheckEmailNotUsed(newEmail); err != nil {
			return "", err
		}
	}

	if newName != user.Name {
		if err := CheckNameNotUsed(newName); err != nil {
			return "", err
		}
	}

	hash, err := auth.HashPassword(newPassword)

	if err != nil {
		return "", err
	}

	user.Name = newName
	user.Email = newEmail
	user.Password = hash

	if err := db.DB.Save(&user).Error; err != nil {
		return "", err
	}

	return auth.GenerateJWT(user.Email)
}
