package sqlite

import (
	"context"

	"github.com/SscSPs/procedure_control_app/internal/apperrors"
	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procedure_control_app/internal/core/ports/repositories"
	"github.com/SscSPs/procedure_control_app/internal/models"
)

type SqliteUserRepository struct {
	store *Store
}

func newSqliteUserRepository(store *Store) portsrepo.UserRepository {
	return &SqliteUserRepository{store: store}
}

// Ensure SqliteUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*SqliteUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Role:         string(d.Role),
		AuditFields: models.AuditFields{
			CreatedAt:      d.CreatedAt,
			CreatedBy:      d.CreatedBy,
			LastModifiedAt: d.LastModifiedAt,
			LastModifiedBy: d.LastModifiedBy,
		},
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         domain.Role(m.Role),
		AuditFields: domain.AuditFields{
			CreatedAt:      m.CreatedAt,
			CreatedBy:      m.CreatedBy,
			LastModifiedAt: m.LastModifiedAt,
			LastModifiedBy: m.LastModifiedBy,
		},
	}
}

func (r *SqliteUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	r.store.view(func() {
		out = make([]domain.User, len(r.store.users))
		for i, m := range r.store.users {
			out[i] = toDomainUser(m)
		}
	})
	return out, nil
}

func (r *SqliteUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var found *domain.User
	r.store.view(func() {
		for i := range r.store.users {
			if r.store.users[i].UserID == userID {
				d := toDomainUser(r.store.users[i])
				found = &d
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (r *SqliteUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var found *domain.User
	r.store.view(func() {
		for i := range r.store.users {
			if r.store.users[i].Username == username {
				d := toDomainUser(r.store.users[i])
				found = &d
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (r *SqliteUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	return r.store.update(func() error {
		for i := range r.store.users {
			if r.store.users[i].UserID == m.UserID {
				return apperrors.ErrDuplicate
			}
		}
		r.store.users = append(r.store.users, m)
		return nil
	})
}

func (r *SqliteUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	return r.store.update(func() error {
		for i := range r.store.users {
			if r.store.users[i].UserID == m.UserID {
				r.store.users[i] = m
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

func (r *SqliteUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return r.store.update(func() error {
		for i := range r.store.users {
			if r.store.users[i].UserID == userID {
				r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}
