package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	domain "user-account-api/internal/domain/user"
)

// memRepo keeps every row, active or not, so email uniqueness spans
// soft-deleted users just like the users_email_key constraint.
type memRepo struct {
	mu    sync.Mutex
	rows  map[uuid.UUID]*domain.User
	fail  error
	calls []string
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[uuid.UUID]*domain.User)}
}

func (r *memRepo) seed(u domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := u
	r.rows[u.ID] = &cp
}

func (r *memRepo) record(call string) error {
	r.calls = append(r.calls, call)
	return r.fail
}

func (r *memRepo) emailTaken(email string, except uuid.UUID) bool {
	for id, u := range r.rows {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}

func (r *memRepo) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("create"); err != nil {
		return nil, err
	}
	if r.emailTaken(u.Email, uuid.Nil) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, `duplicate key value violates unique constraint "users_email_key"`)
	}
	u.ID = uuid.New()
	u.IsActive = true
	cp := u
	r.rows[u.ID] = &cp
	return &u, nil
}

func (r *memRepo) active(id uuid.UUID) *domain.User {
	u, ok := r.rows[id]
	if !ok || !u.IsActive {
		return nil
	}
	return u
}

func (r *memRepo) FetchUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("fetch_by_id"); err != nil {
		return nil, err
	}
	u := r.active(id)
	if u == nil {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("fetch_by_email"); err != nil {
		return nil, err
	}
	for _, u := range r.rows {
		if u.IsActive && u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) UpdateUser(ctx context.Context, id domain.UUID, f domain.Fields) (*domain.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("update"); err != nil {
		return nil, err
	}
	u := r.active(id)
	if u == nil {
		return nil, nil
	}
	if f.Email != nil && r.emailTaken(*f.Email, id) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, `duplicate key value violates unique constraint "users_email_key"`)
	}
	if f.FirstName != nil {
		u.FirstName = *f.FirstName
	}
	if f.LastName != nil {
		u.LastName = *f.LastName
	}
	if f.Email != nil {
		u.Email = *f.Email
	}
	return &id, nil
}

func (r *memRepo) DeleteUser(ctx context.Context, id domain.UUID) (*domain.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("delete"); err != nil {
		return nil, err
	}
	u := r.active(id)
	if u == nil {
		return nil, nil
	}
	u.IsActive = false
	return &id, nil
}

// fakeUoW counts transactions and how each one ended.
type fakeUoW struct {
	repo      *memRepo
	commits   int
	rollbacks int
	beginErr  error
}

func (w *fakeUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, repo domain.Repository) error) error {
	if w.beginErr != nil {
		return w.beginErr
	}
	if err := fn(ctx, w.repo); err != nil {
		w.rollbacks++
		return err
	}
	w.commits++
	return nil
}

// plainHasher keeps tests fast; bcrypt is covered in its own package.
type plainHasher struct{ fail bool }

func (h plainHasher) Hash(password string) (string, error) {
	if h.fail {
		return "", errors.New("hash failed")
	}
	return "hashed:" + password, nil
}

func (h plainHasher) Verify(password, hash string) bool { return hash == "hashed:"+password }
