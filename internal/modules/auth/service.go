package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/pentaview/core/internal/models"
	sessionpkg "github.com/pentaview/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost is deliberately above the library default.
const bcryptCost = 12

// failedLoginDelay slows down credential guessing. It applies to every
// failed login, whether the email or the password was wrong, so timing does
// not reveal which accounts exist.
const failedLoginDelay = 3 * time.Second

var (
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials is intentionally identical for unknown email and
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	db *gorm.DB

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, sleep: time.Sleep}
}

// Register creates a new account. The display name falls back to the local
// part of the email address.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		name = email
		if at := strings.IndexByte(email, '@'); at > 0 {
			name = email[:at]
		}
	}

	u := models.UserModel{Email: email, Name: name, Password: string(hash)}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Login verifies credentials and issues a token bound to a fresh DB session.
func (s *Service) Login(dto *LoginDTO, ip, ua string) (string, *models.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.sleep(failedLoginDelay)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		s.sleep(failedLoginDelay)
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}

// SignOut revokes the session the token is bound to. Tokens without a
// session binding have nothing to revoke.
func (s *Service) SignOut(userID, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	return sessionpkg.Revoke(s.db, userID, sessionID)
}

// GetByID loads one account. Returns (nil, nil) when it does not exist.
func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
