package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Souley97/Kalpe-sante/internal/models"
)

// AuthService records self-declared identities. There is no password and no
// verification: the program trusts the name/role pair it is given.
type AuthService struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewAuthService(db *gorm.DB, log *logrus.Logger) *AuthService {
	return &AuthService{DB: db, Log: log}
}

type LoginDTO struct {
	Name  string
	Phone string
	Role  models.Role
}

// Login upserts the identity and returns it. The same name/role pair always
// maps to the same user row, so a returning visitor keeps their wallet.
func (s *AuthService) Login(data LoginDTO) (models.User, error) {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return models.User{}, &ValidationError{Field: "name", Reason: "is required"}
	}
	if !data.Role.Valid() {
		return models.User{}, &ValidationError{Field: "role", Reason: "is not one of citizen, beneficiary, agent, admin"}
	}

	var user models.User
	err := s.DB.Where("name = ? AND role = ?", name, data.Role).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Name: name, Phone: strings.TrimSpace(data.Phone), Role: data.Role}
		if err := s.DB.Create(&user).Error; err != nil {
			return models.User{}, err
		}
		s.Log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("New identity registered")
		return user, nil
	}
	if err != nil {
		return models.User{}, err
	}

	// Returning user: refresh the phone if one was supplied.
	if phone := strings.TrimSpace(data.Phone); phone != "" && phone != user.Phone {
		user.Phone = phone
		if err := s.DB.Model(&user).Update("phone", phone).Error; err != nil {
			return models.User{}, err
		}
	}
	return user, nil
}

// Me returns the stored identity for an id.
func (s *AuthService) Me(userID int) (models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
