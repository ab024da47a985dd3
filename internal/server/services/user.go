// Package services contains server-side business logic. This file implements
// UserService, which owns the user CRUD state machine: normalization and
// uniqueness of identity fields, credential derivation and rotation, and the
// mapping of failures onto the domain error taxonomy.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avoronov/usersvc/internal/common"
	"github.com/avoronov/usersvc/internal/logging"
	"github.com/avoronov/usersvc/internal/server/models"
	"github.com/avoronov/usersvc/internal/server/password"
	"github.com/avoronov/usersvc/internal/server/repositories/users"
)

// CreateUserInput carries the fields accepted on creation. Username and email
// are normalized before any store access.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
// Roles, id and creation time are immutable through this path.
type UpdateUserInput struct {
	Username  *string
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	IsActive  *bool
}

// ValidationResult is the outcome of a credential check. An unknown username,
// an inactive account and a wrong password all produce the same
// {IsValid: false} shape so callers cannot enumerate accounts.
type ValidationResult struct {
	IsValid bool
	User    *models.User
}

// UserService provides the user record operations. All durable state lives in
// the repository; the service is stateless between calls and returned records
// never carry the stored credential.
type UserService struct {
	repo   users.Repository
	logger logging.Logger
}

func NewUserService(repo users.Repository, logger logging.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger.With("module", "user_service"),
	}
}

// Create registers a new user. The advisory uniqueness pre-check prefers
// reporting a username collision when both fields collide; the storage unique
// constraints remain authoritative under concurrent creates and their
// violation surfaces as the same already-exists error.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {

	in.Username = normalize(in.Username)
	in.Email = normalize(in.Email)

	existing, err := s.repo.GetByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, s.internal(ctx, "create user", err)
	}
	if existing != nil {
		if existing.Username == in.Username {
			return nil, fmt.Errorf("username already exists: %w", common.ErrorAlreadyExists)
		}
		return nil, fmt.Errorf("email already exists: %w", common.ErrorAlreadyExists)
	}

	if len(in.Password) < password.MinLength {
		return nil, fmt.Errorf("password must be at least %d characters long: %w",
			password.MinLength, common.ErrorInvalidArgument)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, s.internal(ctx, "create user", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Roles:        []models.Role{models.RoleUser},
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, s.internal(ctx, "create user", err)
	}

	return created.Sanitized(), nil
}

// FindOne returns the active record with the given id. Absent and inactive
// records are deliberately indistinguishable.
func (s *UserService) FindOne(ctx context.Context, id string) (*models.User, error) {
	user, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// FindByUsername looks up by exact stored (normalized) username, with no
// activity filter.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("user with username %s: %w", username, common.ErrorNotFound)
		}
		return nil, s.internal(ctx, "find user by username", err)
	}
	return user.Sanitized(), nil
}

// FindByEmail looks up by exact stored (normalized) email, with no activity
// filter.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, common.ErrorNotFound)
		}
		return nil, s.internal(ctx, "find user by email", err)
	}
	return user.Sanitized(), nil
}

// FindAll returns every record, secrets stripped, in store iteration order.
func (s *UserService) FindAll(ctx context.Context) ([]*models.User, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.internal(ctx, "list users", err)
	}

	result := make([]*models.User, 0, len(all))
	for _, u := range all {
		result = append(result, u.Sanitized())
	}
	return result, nil
}

// Update merges the present fields of in into the record, rotating the
// credential when a password is supplied. It applies FindOne semantics first,
// so updates against absent or inactive ids fail with not-found. Changed
// identity fields are re-checked for uniqueness before the write.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {

	user, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Password != nil {
		if len(*in.Password) < password.MinLength {
			return nil, fmt.Errorf("password must be at least %d characters long: %w",
				password.MinLength, common.ErrorInvalidArgument)
		}
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, s.internal(ctx, "update user", err)
		}
		user.PasswordHash = hash
	}

	if in.Username != nil {
		username := normalize(*in.Username)
		if username != user.Username {
			if err := s.checkNotTaken(ctx, id, "username", func() (*models.User, error) {
				return s.repo.GetByUsername(ctx, username)
			}); err != nil {
				return nil, err
			}
			user.Username = username
		}
	}

	if in.Email != nil {
		email := normalize(*in.Email)
		if email != user.Email {
			if err := s.checkNotTaken(ctx, id, "email", func() (*models.User, error) {
				return s.repo.GetByEmail(ctx, email)
			}); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) || errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, s.internal(ctx, "update user", err)
	}

	return updated.Sanitized(), nil
}

// Remove permanently deletes the record. A second call on the same id fails
// with not-found.
func (s *UserService) Remove(ctx context.Context, id string) error {
	if _, err := s.getActive(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("user with id %s not found or inactive: %w", id, common.ErrorNotFound)
		}
		return s.internal(ctx, "delete user", err)
	}

	return nil
}

// ValidateCredentials checks a username/password pair. A credential mismatch
// is a normal result, not an error; only store failures are errors.
func (s *UserService) ValidateCredentials(ctx context.Context, username, plaintext string) (*ValidationResult, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &ValidationResult{IsValid: false}, nil
		}
		return nil, s.internal(ctx, "validate credentials", err)
	}

	if !user.IsActive {
		return &ValidationResult{IsValid: false}, nil
	}

	if !password.Verify(user.PasswordHash, plaintext) {
		return &ValidationResult{IsValid: false}, nil
	}

	return &ValidationResult{IsValid: true, User: user.Sanitized()}, nil
}

func (s *UserService) getActive(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("user with id %s not found or inactive: %w", id, common.ErrorNotFound)
		}
		return nil, s.internal(ctx, "find user", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("user with id %s not found or inactive: %w", id, common.ErrorNotFound)
	}
	return user, nil
}

func (s *UserService) checkNotTaken(ctx context.Context, selfID, field string, lookup func() (*models.User, error)) error {
	other, err := lookup()
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return s.internal(ctx, "update user", err)
	}
	if other.ID != selfID {
		return fmt.Errorf("%s already exists: %w", field, common.ErrorAlreadyExists)
	}
	return nil
}

// internal logs the full failure detail and returns the opaque internal
// error; domain failures never pass through here.
func (s *UserService) internal(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "unexpected failure", "op", op, "error", err.Error())
	return fmt.Errorf("failed to %s: %w", op, common.ErrorInternal)
}

// normalize lower-cases and trims an identity field. Applying it twice is a
// no-op.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
