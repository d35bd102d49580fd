package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/postgres"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db Querier
}

func NewRepository(db Querier) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.HashedPassword,
		&u.IsActive,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func duplicateEmail(err error) error {
	if msg, ok := postgres.IsPgUniqueViolation(err); ok {
		return fmt.Errorf("%w: %s", user.ErrDuplicateEmail, msg)
	}
	return nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		id, req.FirstName, req.LastName, req.Email, req.HashedPassword,
	))
	if err != nil {
		if dErr := duplicateEmail(err); dErr != nil {
			return nil, dErr
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.UUID) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, id user.UUID, f user.Fields) (*user.UUID, error) {
	var updated uuid.UUID
	err := r.db.QueryRow(ctx, UpdateUserByID, f.FirstName, f.LastName, f.Email, id).Scan(&updated)
	if err != nil {
		if dErr := duplicateEmail(err); dErr != nil {
			return nil, dErr
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &updated, nil
}

func (r *Repository) DeleteUser(ctx context.Context, id user.UUID) (*user.UUID, error) {
	var deleted uuid.UUID
	if err := r.db.QueryRow(ctx, SoftDeleteUserByID, id).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return &deleted, nil
}
