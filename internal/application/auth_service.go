package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	repo "github.com/devconnect/devconnect-api/internal/domain/repository"
	"github.com/devconnect/devconnect-api/pkg/helpers"
	"github.com/devconnect/devconnect-api/pkg/mailer"
	tpl "github.com/devconnect/devconnect-api/pkg/mailer/templates"
)

// Publisher enqueues email jobs. Satisfied by helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthService handles registration, login, and current-user lookup.
// Tokens are signed JWTs carrying the user id with a fixed expiry.
type AuthService struct {
	Users     repo.UserRepository
	JWT       *helpers.JWTManager
	Pub       Publisher
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, pub Publisher, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Pub: pub, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

// Register creates a User with a gravatar-derived avatar and a bcrypt
// password hash, then returns a signed token. The welcome email is queued
// best-effort and never blocks registration.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if existing, err := s.Users.GetByEmail(email); err == nil && existing != nil {
		return "", ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}

	u := &entity.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		AvatarURL: helpers.GravatarURL(email),
	}
	if err := s.Users.Create(u); err != nil {
		return "", err
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		return "", err
	}

	if s.Pub != nil {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: tpl.Welcome,
			Data:     map[string]any{"Name": u.Name, "Email": u.Email},
		}
		if pErr := s.Pub.PublishJSON(ctx, job); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("email", u.Email).Warn("welcome email enqueue failed")
		}
	}

	return token, nil
}

// Login verifies credentials and returns a token. The same error is
// returned for an unknown email and a wrong password so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil || u == nil {
		return "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	token, _, err := s.JWT.Generate(u.ID)
	return token, err
}

// UploadAvatar stores a custom avatar image in GCS and replaces the
// gravatar default on the account. Posts created earlier keep their
// snapshot of the old avatar.
func (s *AuthService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return "", ErrUserNotFound
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.AvatarURL = url
	if err := s.Users.Update(u); err != nil {
		return "", err
	}
	return url, nil
}

// CurrentUser resolves the authenticated user id to its account record.
// A stale token for a deleted account yields ErrUserNotFound.
func (s *AuthService) CurrentUser(userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
