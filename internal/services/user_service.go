package services

import (
	"context"
	"strings"

	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/db/repositories"
	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/models/dtos/requests"
	models "field-ministry/campo/internal/models/gorm"
)

type UserService struct {
	repo *repositories.UserRepository
}

func NewUserService(repo *repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// Upsert records the identity from a login. New users start as active
// members; existing users keep their name, role and activation.
func (s *UserService) Upsert(ctx context.Context, req *requests.UpsertUserReq) (*models.User, error) {
	user := &models.User{
		ID:              req.ID,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
		Name:            DisplayName(req.FirstName, req.LastName, req.Email),
		Role:            constants.RoleMember,
		IsActive:        true,
	}
	saved, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}
	logging.Info("User signed in", "user_id", saved.ID, "role", saved.Role)
	return saved, nil
}

func (s *UserService) Update(ctx context.Context, id string, req *requests.UpdateUserReq) (*models.User, error) {
	user, err := s.repo.Update(ctx, id, req.Updates())
	if err != nil {
		return nil, err
	}
	logging.Info("User updated", "user_id", id, "role", user.Role, "active", user.IsActive)
	return user, nil
}

func (s *UserService) Deactivate(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	logging.Info("User deactivated", "user_id", id)
	return nil
}

// DisplayName is "first last" when both are set, else the email, else a
// generic placeholder.
func DisplayName(firstName, lastName, email *string) string {
	first, last := deref(firstName), deref(lastName)
	if first != "" && last != "" {
		return first + " " + last
	}
	if e := deref(email); e != "" {
		return e
	}
	return constants.DefaultUserName
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
