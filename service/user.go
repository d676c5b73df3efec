package service

import (
	"errors"
	"fmt"

	"mozeh-api/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles accounts: registration, credential checks, profiles.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a CUSTOMER account. Role is never caller-controlled —
// admins and drivers are provisioned by the seed, not by self-registration.
func (s *UserService) Register(name, email, phone, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	var existing models.User
	if err := s.db.First(&existing, "email = ?", email).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(hash),
		Role:     models.RoleCustomer,
	}
	if err := s.db.Create(&user).Error; err != nil {
		logrus.WithError(err).Error("user create failed")
		return nil, err
	}
	return &user, nil
}

// Authenticate checks email+password. Unknown email and wrong password both
// return ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetByID loads a user or fails with ErrNotFound.
func (s *UserService) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

type UpdateProfileInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateProfile edits the user's own contact fields. Role and email are not
// editable here. Existing orders keep their checkout-time snapshots.
func (s *UserService) UpdateProfile(id string, in UpdateProfileInput) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Phone != "" {
		updates["phone"] = in.Phone
	}
	if in.Address != "" {
		updates["address"] = in.Address
	}
	if in.AvatarURL != "" {
		updates["avatar_url"] = in.AvatarURL
	}
	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// SetAvatar records a newly uploaded avatar URL and returns the previous one
// so the caller can clean up the old blob.
func (s *UserService) SetAvatar(id, url string) (*models.User, string, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	previous := user.AvatarURL
	if err := s.db.Model(user).Update("avatar_url", url).Error; err != nil {
		return nil, "", err
	}
	user.AvatarURL = url
	return user, previous, nil
}

// ListDrivers returns all users with the DRIVER role.
func (s *UserService) ListDrivers() ([]models.User, error) {
	var drivers []models.User
	err := s.db.Where("role = ?", models.RoleDriver).Find(&drivers).Error
	return drivers, err
}
