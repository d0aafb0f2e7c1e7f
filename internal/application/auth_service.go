package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devasif/smart-task-management/internal/domain/entity"
	repo "github.com/devasif/smart-task-management/internal/domain/repository"
	"github.com/devasif/smart-task-management/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService covers signup, login and session verification.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
}

// Signup hashes the password and stores the user. The email must not be
// registered yet; the hash must succeed before anything is persisted.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (string, error) {
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return "", err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hash failed")
		}
		return "", err
	}
	u := &entity.User{Email: email, Password: hash, Name: name}
	return s.Users.Create(ctx, u)
}

// Login verifies credentials and issues a bearer token carrying the email.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Issue(u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Error("token issue failed")
		}
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, Email: u.Email, Name: u.Name}, nil
}

// Profile returns the name/email subset served by the session endpoint.
func (s *AuthService) Profile(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
