package services

import (
	"errors"

	"goblog/internal/db"
	"goblog/internal/models"
	"goblog/internal/utils"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// RegisterUser creates a user and its profile in one transaction. Profile
// creation is an explicit part of this use case: every user has exactly one
// profile from the moment it exists.
func RegisterUser(username, password string) (*models.User, error) {
	var existing models.User
	if err := db.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: hash,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// AuthenticateUser checks credentials and returns the matching user.
func AuthenticateUser(username, password string) (*models.User, error) {
	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// SaveUser persists the user record and re-saves its profile alongside it.
func SaveUser(user *models.User) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		var profile models.Profile
		if err := tx.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(&models.Profile{UserID: user.ID}).Error
			}
			return err
		}
		return tx.Save(&profile).Error
	})
}

// UpdateBio saves a new biography on the user's profile.
func UpdateBio(userID uint, bio string) error {
	return db.DB.Model(&models.Profile{}).Where("user_id = ?", userID).Update("bio", bio).Error
}
