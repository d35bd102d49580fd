package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"user-account-api/internal/application/ports"
	domain "user-account-api/internal/domain/user"
)

type UserService struct {
	uow      domain.UnitOfWork
	hasher   ports.PasswordHasher
	mCounter *prometheus.CounterVec
}

func NewUserService(
	uow domain.UnitOfWork,
	hasher ports.PasswordHasher,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		uow:      uow,
		hasher:   hasher,
		mCounter: mCounter,
	}
}

func (us *UserService) CreateUser(ctx context.Context, p domain.CreateParams) (*domain.User, error) {
	if err := validateCreate(&p); err != nil {
		return nil, err
	}

	hash := domain.UnusableHash
	if p.Password != nil {
		var err error
		if hash, err = us.hasher.Hash(*p.Password); err != nil {
			return nil, err
		}
	}

	var created *domain.User
	err := us.uow.WithinTx(ctx, func(ctx context.Context, repo domain.Repository) error {
		var err error
		created, err = repo.CreateUser(ctx, domain.User{
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			Email:          p.Email,
			HashedPassword: hash,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	us.inc("user_created_total")

	return created, nil
}

func (us *UserService) GetUser(ctx context.Context, id domain.UUID) (*domain.User, error) {
	var u *domain.User
	err := us.uow.WithinTx(ctx, func(ctx context.Context, repo domain.Repository) error {
		var err error
		u, err = repo.FetchUserByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	return u, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id domain.UUID, f domain.Fields) (domain.UUID, error) {
	if err := validateUpdate(&f); err != nil {
		return domain.UUID{}, err
	}

	var updated *domain.UUID
	err := us.uow.WithinTx(ctx, func(ctx context.Context, repo domain.Repository) error {
		u, err := repo.FetchUserByID(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrNotFound
		}

		updated, err = repo.UpdateUser(ctx, id, f)
		return err
	})
	if err != nil {
		return domain.UUID{}, err
	}
	// lost a race with a concurrent delete
	if updated == nil {
		return domain.UUID{}, ErrNotFound
	}

	us.inc("user_updated_total")

	return *updated, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.UUID) (domain.UUID, error) {
	var deleted *domain.UUID
	err := us.uow.WithinTx(ctx, func(ctx context.Context, repo domain.Repository) error {
		var err error
		deleted, err = repo.DeleteUser(ctx, id)
		return err
	})
	if err != nil {
		return domain.UUID{}, fmt.Errorf("delete user %s: %w", id, err)
	}
	if deleted == nil {
		return domain.UUID{}, ErrNotFound
	}

	us.inc("user_deleted_total")

	return *deleted, nil
}

func (us *UserService) inc(label string) {
	if us.mCounter != nil {
		us.mCounter.WithLabelValues(label).Inc()
	}
}
