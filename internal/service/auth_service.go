package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/PietroSRobusti/sus-para-todos/internal/auth"
	apperrors "github.com/PietroSRobusti/sus-para-todos/internal/errors"
	"github.com/PietroSRobusti/sus-para-todos/internal/model"
	"github.com/PietroSRobusti/sus-para-todos/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Email ou senha incorretos")
	// ErrWrongPassword is returned when the current password check fails on
	// a password change.
	ErrWrongPassword = errors.New("Senha atual incorreta")
)

// ProfileUpdate carries the optional profile changes. Role is deliberately
// absent: it can never be set through a request body.
type ProfileUpdate struct {
	Email           *string
	Phone           *string
	CurrentPassword string
	NewPassword     string
}

// AuthService handles registration, login and profile operations.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*model.User, error)
	ResetPassword(ctx context.Context, userID, newPassword string) error
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Register creates a new user with a hashed password and the default role.
// The caller is responsible for the strong-password policy check; uniqueness
// is enforced here so duplicates surface as a conflict, not a generic error.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// two concurrent registrations can both pass the pre-check; the
		// unique index decides, and the loser is still a conflict
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials. Unknown email and wrong password share the
// same error so neither leaks which one was wrong.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a password change and/or email/phone changes. The two
// writes are independent statements without cross-statement atomicity; a
// failure between them can leave the password applied and the email not.
func (s *authService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if update.NewPassword != "" {
		if !auth.VerifyPassword(update.CurrentPassword, user.PasswordHash) {
			return nil, ErrWrongPassword
		}
		passwordHash, err := auth.HashPassword(update.NewPassword)
		if err != nil {
			return nil, err
		}
		if err := s.users.UpdatePassword(ctx, userID, passwordHash); err != nil {
			return nil, fmt.Errorf("update password: %w", err)
		}
	}

	fields := map[string]interface{}{}
	if update.Email != nil && *update.Email != user.Email {
		taken, err := s.users.FindByEmail(ctx, *update.Email)
		if err == nil && taken != nil && taken.ID != userID {
			return nil, apperrors.ErrEmailInUse
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
		fields["email"] = *update.Email
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}

	if len(fields) == 0 {
		return user, nil
	}
	updated, err := s.users.UpdateProfile(ctx, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

// ResetPassword sets a new password for the forgot-password flow. The caller
// is responsible for the strong-password policy check.
func (s *authService) ResetPassword(ctx context.Context, userID, newPassword string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, passwordHash)
}
