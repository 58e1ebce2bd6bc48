package services

import (
	"errors"
	"strings"
	"time"

	"github.com/tannerhall/hearth/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByUsername(username string) (models.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
	UpdateReminderSettings(userID uint, enabled bool, reminderTime string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

func (service *AuthService) Register(input RegisterInput) (models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	displayName := strings.TrimSpace(input.DisplayName)
	if username == "" || email == "" || input.Password == "" {
		return models.User{}, ErrInvalidInput
	}
	if displayName == "" {
		displayName = username
	}

	usernameTaken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if usernameTaken {
		return models.User{}, ErrUsernameTaken
	}

	emailTaken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if emailTaken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:        username,
		Email:           email,
		PasswordHash:    string(hash),
		DisplayName:     displayName,
		EnableReminders: true,
		ReminderTime:    models.DefaultReminderTime,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, err := service.users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, asNotFound(err)
	}
	return user, nil
}

// UpdateReminderSettings persists the user's reminder toggle and preferred
// reminder time, given as wall-clock "HH:MM".
func (service *AuthService) UpdateReminderSettings(userID uint, enabled bool, reminderTime string) error {
	reminderTime = strings.TrimSpace(reminderTime)
	if reminderTime == "" {
		reminderTime = models.DefaultReminderTime
	}
	if _, err := time.Parse("15:04", reminderTime); err != nil {
		return ErrInvalidInput
	}
	return service.users.UpdateReminderSettings(userID, enabled, reminderTime)
}
