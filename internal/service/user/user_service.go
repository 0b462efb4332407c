package user

import (
	"context"
	"fmt"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/repository"
	"github.com/betshield/betshield-backend/pkg/utils"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) SignUp(ctx context.Context, req entity.SignUpRequest) (*entity.User, error) {
	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role != entity.RoleAdmin {
		role = entity.RoleUser
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) SignIn(ctx context.Context, req entity.SignInRequest) (*entity.AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &entity.AuthResponse{User: user, Token: token}, nil
}

func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req entity.UpdateProfileRequest) (*entity.User, error) {
	user, err := s.Repo.UpdateProfile(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return user, nil
}

// GetSettings returns the stored preferences, or the defaults for a user who
// never saved any.
func (s *UserService) GetSettings(ctx context.Context, id uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.Repo.GetSettings(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		defaults := entity.DefaultUserSettings(id)
		return &defaults, nil
	}

	return settings, nil
}

// UpdateSettings merges the request into the current settings (defaults when
// none are stored yet) and upserts the result.
func (s *UserService) UpdateSettings(ctx context.Context, id uuid.UUID, req entity.UpdateSettingsRequest) (*entity.UserSettings, error) {
	settings, err := s.GetSettings(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.SpendingAlerts != nil {
		settings.SpendingAlerts = *req.SpendingAlerts
	}
	if req.AlertThreshold != nil {
		settings.AlertThreshold = *req.AlertThreshold
	}
	if req.Theme != nil {
		settings.Theme = *req.Theme
	}

	if err := s.Repo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}

// DeleteAccount removes the user; dependent rows go with the ON DELETE
// CASCADE constraints.
func (s *UserService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}

func (s *UserService) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.Repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
