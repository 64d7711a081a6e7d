package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"vyoma/domain"
)

// fileUser is the on-disk shape of a user record. A separate struct is needed
// because domain.User never serializes its password hash.
type fileUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	FullName     string    `json:"fullName"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type fileDocument struct {
	Users []fileUser `json:"users"`
}

// userFileRepository is a single-process credential store persisted as one
// JSON document. Every mutation rewrites the file under the lock, via a
// temp file and rename so a crash never leaves a half-written store.
type userFileRepository struct {
	mu    sync.Mutex
	path  string
	users []fileUser
}

func NewFileUserRepository(path string) (domain.UserRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	r := &userFileRepository{path: path}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *userFileRepository) load() error {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	r.users = doc.Users
	return nil
}

func (r *userFileRepository) persist() error {
	data, err := json.MarshalIndent(fileDocument{Users: r.users}, "", "  ")
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

func (r *userFileRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == email {
			return toDomainUser(r.users[i]), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userFileRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			return toDomainUser(r.users[i]), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userFileRepository) CreateUser(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}

	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users = append(r.users, toFileUser(user))
	return r.persist()
}

func (r *userFileRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			r.users[i] = toFileUser(user)
			return r.persist()
		}
	}
	return domain.ErrNotFound
}

func toDomainUser(u fileUser) *domain.User {
	return &domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.PasswordHash,
		FullName:  u.FullName,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toFileUser(u *domain.User) fileUser {
	return fileUser{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.Password,
		FullName:     u.FullName,
		Username:     u.Username,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
