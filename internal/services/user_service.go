package services

import (
	"fmt"

	"tweeter/internal/models"
	"tweeter/internal/repositories"
	"tweeter/internal/validation"

	"github.com/sirupsen/logrus"
)

// UserService handles registration and listing of users.
type UserService struct {
	userRepo  repositories.UserRepository
	validator *validation.Validator
	events    notifier
	log       logrus.FieldLogger
}

// NewUserService creates a new UserService. publisher may be nil, in which
// case no events are sent.
func NewUserService(userRepo repositories.UserRepository, publisher EventPublisher, logger logrus.FieldLogger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		validator: validation.New(),
		events:    notifier{publisher: publisher, log: logger},
		log:       logger,
	}
}

// Register validates the signup request and stores the user without its
// password. A *validation.Error is returned untouched when the request is
// invalid; nothing is stored in that case.
func (s *UserService) Register(req models.UserRegister) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user := req.User()
	user.UserID = canonicalID(user.UserID)

	if err := s.userRepo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.log.WithField("user_id", user.UserID).Info("user registered")
	s.events.notify(EventUserRegistered, user)
	return &user, nil
}

// ListUsers returns every stored user.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}
