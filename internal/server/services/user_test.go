package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avoronov/usersvc/internal/common"
	"github.com/avoronov/usersvc/internal/logging"
	"github.com/avoronov/usersvc/internal/server/models"
	"github.com/avoronov/usersvc/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// brokenRepo fails every operation, for exercising the internal-error path.
type brokenRepo struct{}

func (brokenRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, errBoom{}
}
func (brokenRepo) GetByID(context.Context, string) (*models.User, error)       { return nil, errBoom{} }
func (brokenRepo) GetByUsername(context.Context, string) (*models.User, error) { return nil, errBoom{} }
func (brokenRepo) GetByEmail(context.Context, string) (*models.User, error)    { return nil, errBoom{} }
func (brokenRepo) GetByUsernameOrEmail(context.Context, string, string) (*models.User, error) {
	return nil, errBoom{}
}
func (brokenRepo) GetAll(context.Context) ([]*models.User, error) { return nil, errBoom{} }
func (brokenRepo) Update(context.Context, *models.User) (*models.User, error) {
	return nil, errBoom{}
}
func (brokenRepo) Delete(context.Context, string) error { return errBoom{} }

func newService(t *testing.T) (*UserService, *users.InMemoryRepository) {
	t.Helper()
	repo := users.NewInMemoryRepository()
	return NewUserService(repo, nopLogger{}), repo
}

func createAlice(t *testing.T, s *UserService) *models.User {
	t.Helper()
	u, err := s.Create(context.Background(), CreateUserInput{
		Username: "Alice",
		Email:    "A@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return u
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestCreate_NormalizesAndDefaults(t *testing.T) {
	s, _ := newService(t)

	u, err := s.Create(context.Background(), CreateUserInput{
		Username:  "  Alice ",
		Email:     " A@X.Com ",
		Password:  "secret1",
		FirstName: "Alice",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, []models.Role{models.RoleUser}, u.Roles)
	assert.True(t, u.IsActive)
	assert.False(t, u.CreatedAt.IsZero())
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
	assert.Empty(t, u.PasswordHash, "returned record must not carry the credential")
}

func TestCreate_DuplicateUsername_CaseInsensitive(t *testing.T) {
	s, _ := newService(t)
	createAlice(t, s)

	_, err := s.Create(context.Background(), CreateUserInput{
		Username: "ALICE",
		Email:    "different@x.com",
		Password: "secret1",
	})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Contains(t, err.Error(), "username already exists")
}

func TestCreate_BothCollide_PrefersUsername(t *testing.T) {
	s, _ := newService(t)
	createAlice(t, s)

	_, err := s.Create(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Contains(t, err.Error(), "username already exists")
}

func TestCreate_DuplicateEmail(t *testing.T) {
	s, _ := newService(t)
	createAlice(t, s)

	_, err := s.Create(context.Background(), CreateUserInput{
		Username: "bob",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestCreate_ShortPassword_NoWrite(t *testing.T) {
	s, repo := newService(t)

	_, err := s.Create(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "abc",
	})
	require.ErrorIs(t, err, common.ErrorInvalidArgument)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "validation failure must not write to the store")
}

func TestCreate_StoreError_IsInternal(t *testing.T) {
	s := NewUserService(brokenRepo{}, nopLogger{})

	_, err := s.Create(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.ErrorIs(t, err, common.ErrorInternal)
	assert.NotContains(t, err.Error(), "boom", "internal detail must not leak to the caller")
}

func TestFindOne_ActiveOnly(t *testing.T) {
	s, _ := newService(t)
	created := createAlice(t, s)

	got, err := s.FindOne(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Empty(t, got.PasswordHash)

	_, err = s.Update(context.Background(), created.ID, UpdateUserInput{IsActive: boolptr(false)})
	require.NoError(t, err)

	_, err = s.FindOne(context.Background(), created.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, err.Error(), "not found or inactive")
}

func TestFindOne_Absent(t *testing.T) {
	s, _ := newService(t)

	_, err := s.FindOne(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindByUsernameAndEmail(t *testing.T) {
	s, _ := newService(t)
	createAlice(t, s)

	byUsername, err := s.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", byUsername.Username)
	assert.Empty(t, byUsername.PasswordHash)

	byEmail, err := s.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, byUsername.ID, byEmail.ID)

	_, err = s.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = s.FindByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindAll_StripsSecrets(t *testing.T) {
	s, _ := newService(t)
	createAlice(t, s)
	_, err := s.Create(context.Background(), CreateUserInput{
		Username: "bob", Email: "b@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	all, err := s.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, u := range all {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestUpdate_MergesPartialFields(t *testing.T) {
	s, _ := newService(t)
	created := createAlice(t, s)

	got, err := s.Update(context.Background(), created.ID, UpdateUserInput{
		FirstName: strptr("Alice"),
		LastName:  strptr("Liddell"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "Liddell", got.LastName)
	assert.Equal(t, "alice", got.Username, "absent fields stay untouched")
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Roles, got.Roles)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt) || got.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdate_RotatesCredential(t *testing.T) {
	s, _ := newService(t)
	created := createAlice(t, s)

	_, err := s.Update(context.Background(), created.ID, UpdateUserInput{
		Password: strptr("newsecret"),
	})
	require.NoError(t, err)

	res, err := s.ValidateCredentials(context.Background(), "alice", "newsecret")
	require.NoError(t, err)
	assert.True(t, res.IsValid)

	res, err = s.ValidateCredentials(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.False(t, res.IsValid)
}

func TestUpdate_ShortPassword(t *testing.T) {
	s, _ := newService(t)
	created := createAlice(t, s)

	_, err := s.Update(context.Background(), created.ID, UpdateUserInput{
		Password: strptr("abc"),
	})
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)
}

func TestUpdate_RechecksUniqueness(t *testing.T) {
	s, _ := newService(t)
	createAlice(t, s)
	bob, err := s.Create(context.Background(), CreateUserInput{
		Username: "bob", Email: "b@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = s.Update(context.Background(), bob.ID, UpdateUserInput{Email: strptr("A@x.com")})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Contains(t, err.Error(), "email already exists")

	_, err = s.Update(context.Background(), bob.ID, UpdateUserInput{Username: strptr("Alice")})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Contains(t, err.Error(), "username already exists")

	// setting a field to its current value is not a collision
	_, err = s.Update(context.Background(), bob.ID, UpdateUserInput{Username: strptr("BOB")})
	assert.NoError(t, err)
}

func TestUpdate_InactiveOrAbsent_NotFound(t *testing.T) {
	s, _ := newService(t)
	created := createAlice(t, s)

	_, err := s.Update(context.Background(), created.ID, UpdateUserInput{IsActive: boolptr(false)})
	require.NoError(t, err)

	_, err = s.Update(context.Background(), created.ID, UpdateUserInput{FirstName: strptr("x")})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Update(context.Background(), "no-such-id", UpdateUserInput{FirstName: strptr("x")})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRemove_ThenFindOne_NotFound(t *testing.T) {
	s, _ := newService(t)
	created := createAlice(t, s)

	require.NoError(t, s.Remove(context.Background(), created.ID))

	_, err := s.FindOne(context.Background(), created.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = s.Remove(context.Background(), created.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound, "second remove fails, not a no-op success")
}

func TestValidateCredentials_Shapes(t *testing.T) {
	s, _ := newService(t)
	created := createAlice(t, s)

	valid, err := s.ValidateCredentials(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.True(t, valid.IsValid)
	require.NotNil(t, valid.User)
	assert.Equal(t, created.ID, valid.User.ID)
	assert.Empty(t, valid.User.PasswordHash)

	wrong, err := s.ValidateCredentials(context.Background(), "alice", "wrong-password")
	require.NoError(t, err)
	assert.False(t, wrong.IsValid)
	assert.Nil(t, wrong.User)

	unknown, err := s.ValidateCredentials(context.Background(), "nonexistent-user", "anything")
	require.NoError(t, err)
	assert.Equal(t, wrong, unknown, "unknown user and wrong password must be indistinguishable")
}

func TestValidateCredentials_InactiveUser(t *testing.T) {
	s, _ := newService(t)
	created := createAlice(t, s)

	_, err := s.Update(context.Background(), created.ID, UpdateUserInput{IsActive: boolptr(false)})
	require.NoError(t, err)

	res, err := s.ValidateCredentials(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.False(t, res.IsValid)
}

func TestValidateCredentials_StoreError_IsInternal(t *testing.T) {
	s := NewUserService(brokenRepo{}, nopLogger{})

	_, err := s.ValidateCredentials(context.Background(), "alice", "secret1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorInternal))
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"  Alice ", "ALICE", "a@X.cOm  ", "plain"} {
		once := normalize(in)
		assert.Equal(t, once, normalize(once))
	}
}
