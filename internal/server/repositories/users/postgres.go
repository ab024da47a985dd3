package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avoronov/usersvc/internal/common"
	"github.com/avoronov/usersvc/internal/dbx"
	"github.com/avoronov/usersvc/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, username, email, password_hash, roles, first_name, last_name, is_active, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, username, email, password_hash, roles, first_name, last_name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 `

	user.ID = uuid.NewString()

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, joinRoles(user.Roles),
		nullable(user.FirstName), nullable(user.LastName), user.IsActive, user.CreatedAt, user.UpdatedAt)

	if err != nil {
		if e := translateUniqueViolation(err); e != nil {
			return nil, e
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, r.db, query, id)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, r.db, query, username)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, r.db, query, email)
}

func (r *PostgresRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2`
	return r.getOne(ctx, r.db, query, username, email)
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update rewrites the mutable columns and re-reads the row in the same
// transaction, so the returned record reflects exactly what was stored.
func (r *PostgresRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`UPDATE users
		 SET username = $2, email = $3, password_hash = $4, roles = $5,
		     first_name = $6, last_name = $7, is_active = $8, updated_at = $9
		 WHERE id = $1
		 `

	var updated *models.User

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		res, err := tx.ExecContext(ctx, query,
			user.ID, user.Username, user.Email, user.PasswordHash, joinRoles(user.Roles),
			nullable(user.FirstName), nullable(user.LastName), user.IsActive, user.UpdatedAt)

		if err != nil {
			if e := translateUniqueViolation(err); e != nil {
				return e
			}
			return fmt.Errorf("db error: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if affected == 0 {
			return common.ErrorNotFound
		}

		updated, err = r.getOne(ctx, tx, `SELECT `+userColumns+` FROM users WHERE id = $1`, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) getOne(ctx context.Context, db dbx.DBTX, query string, args ...any) (*models.User, error) {
	user, err := scanUser(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanUser(row scannable) (*models.User, error) {
	var (
		user      models.User
		roles     string
		firstName sql.NullString
		lastName  sql.NullString
	)

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &roles,
		&firstName, &lastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	user.Roles = splitRoles(roles)
	user.FirstName = firstName.String
	user.LastName = lastName.String

	return &user, nil
}

// translateUniqueViolation maps a postgres unique-constraint violation to the
// already-exists domain error naming the colliding field. The storage
// constraints are the authoritative uniqueness enforcement; the service's
// pre-check is only advisory under concurrent writes.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return fmt.Errorf("email already exists: %w", common.ErrorAlreadyExists)
	}
	return fmt.Errorf("username already exists: %w", common.ErrorAlreadyExists)
}

func joinRoles(roles []models.Role) string {
	return strings.Join(roles, ",")
}

func splitRoles(s string) []models.Role {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
