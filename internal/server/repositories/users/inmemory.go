package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/avoronov/usersvc/internal/common"
	"github.com/avoronov/usersvc/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used in tests. It enforces
// the same uniqueness rules the postgres schema does.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(user.Username, user.Email, ""); err != nil {
		return nil, err
	}

	user.ID = uuid.NewString()
	c := *user
	r.users[user.ID] = &c

	return user, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *user
	return &c, nil
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *InMemoryRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username || u.Email == email })
}

func (r *InMemoryRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		c := *u
		result = append(result, &c)
	}
	return result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	if err := r.checkUnique(user.Username, user.Email, user.ID); err != nil {
		return nil, err
	}

	c := *user
	r.users[user.ID] = &c

	return user, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *InMemoryRepository) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

// checkUnique mirrors the postgres unique indexes, excluding the record with
// the given id so updates do not collide with themselves.
func (r *InMemoryRepository) checkUnique(username, email, excludeID string) error {
	for _, u := range r.users {
		if u.ID == excludeID {
			continue
		}
		if u.Username == username {
			return fmt.Errorf("username already exists: %w", common.ErrorAlreadyExists)
		}
		if u.Email == email {
			return fmt.Errorf("email already exists: %w", common.ErrorAlreadyExists)
		}
	}
	return nil
}
