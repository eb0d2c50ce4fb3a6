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

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
	repo "github.com/aditrahmn/contact-management-api/internal/domain/repository"
	"github.com/aditrahmn/contact-management-api/pkg/helpers"
	"github.com/aditrahmn/contact-management-api/pkg/mailer"
)

type UserService struct {
	Repo      repo.UserRepository
	Logger    *logrus.Logger
	Pub       *helpers.RabbitPublisher
	GCS       *storage.Client
	GCSBucket string
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, gcs *storage.Client, gcsBucket string) *UserService {
	return &UserService{Repo: r, Logger: logger, Pub: pub, GCS: gcs, GCSBucket: gcsBucket}
}

type RegisterInput struct {
	Username string
	Name     string
	Password string
}

// Register creates a new user. The duplicate-username check is deliberately a
// 400-class conflict, and the password never leaves this layer unhashed.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	n, err := s.Repo.CountByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrUserExists
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Username: in.Username, Name: in.Name, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.Logger.WithField("username", u.Username).Info("user registered")
	s.publishEmail(ctx, u.Username, "Welcome to Contact Management",
		"Hi "+u.Name+", your account is ready.")

	return u, nil
}

// Login checks credentials and rotates a fresh opaque session token.
// Unknown username and wrong password fail identically.
func (s *UserService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil || u == nil {
		return nil, ErrInvalidLogin
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidLogin
	}

	u.Token = helpers.NewSessionToken()
	if err := s.Repo.UpdateToken(ctx, u.Username, u.Token); err != nil {
		return nil, err
	}

	s.Logger.WithField("username", u.Username).Info("user logged in")
	s.publishEmail(ctx, u.Username, "New login to your account",
		"Hi "+u.Name+", a new login to your account just happened.")

	return u, nil
}

// UpdateUserInput carries nil for fields the caller did not send; empty
// strings are rejected at the binding layer and never reach here.
type UpdateUserInput struct {
	Name     *string
	Password *string
}

// Update applies only the provided fields; the password is re-hashed.
func (s *UserService) Update(ctx context.Context, user *entity.User, in UpdateUserInput) (*entity.User, error) {
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Logout clears the session token so the old credential no longer resolves.
func (s *UserService) Logout(ctx context.Context, user *entity.User) error {
	if err := s.Repo.UpdateToken(ctx, user.Username, ""); err != nil {
		return err
	}
	user.Token = ""
	s.Logger.WithField("username", user.Username).Info("user logged out")
	return nil
}

// UploadAvatar stores a profile image in GCS and saves its public URL.
func (s *UserService) UploadAvatar(ctx context.Context, user *entity.User, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", user.Username, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	user.AvatarURL = url
	if err := s.Repo.Update(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}

// publishEmail enqueues a notification; the queue is optional and failures
// never surface to the caller.
func (s *UserService) publishEmail(ctx context.Context, to, subject, text string) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{To: to, Subject: subject, Text: text}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("to", to).Warn("email publish failed")
	}
}
