package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vyoma/domain"
)

func newTestFileRepo(t *testing.T) (domain.UserRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.json")
	repo, err := NewFileUserRepository(path)
	require.NoError(t, err)
	return repo, path
}

func TestFileStoreCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestFileRepo(t)

	user := &domain.User{
		Email:    "e@x.com",
		Password: "hash",
		FullName: "Test User",
		Username: "tester",
	}
	require.NoError(t, repo.CreateUser(ctx, user))
	require.NotEmpty(t, user.ID)
	require.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "e@x.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
	require.Equal(t, "hash", byEmail.Password)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "e@x.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileStoreDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestFileRepo(t)

	require.NoError(t, repo.CreateUser(ctx, &domain.User{Email: "e@x.com", Password: "h1"}))

	err := repo.CreateUser(ctx, &domain.User{Email: "e@x.com", Password: "h2"})
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)

	// Exactly one record for that email survives.
	user, err := repo.FindByEmail(ctx, "e@x.com")
	require.NoError(t, err)
	require.Equal(t, "h1", user.Password)
}

func TestFileStoreEmailExactMatch(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestFileRepo(t)

	require.NoError(t, repo.CreateUser(ctx, &domain.User{Email: "E@x.com", Password: "h"}))

	_, err := repo.FindByEmail(ctx, "e@x.com")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileStoreUpdateAdvancesTimestamp(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestFileRepo(t)

	user := &domain.User{Email: "e@x.com", Password: "h", FullName: "Before"}
	require.NoError(t, repo.CreateUser(ctx, user))
	created := user.UpdatedAt

	time.Sleep(5 * time.Millisecond)

	user.FullName = "After"
	require.NoError(t, repo.UpdateUser(ctx, user))
	require.True(t, user.UpdatedAt.After(created))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "After", stored.FullName)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestFileRepo(t)

	user := &domain.User{Email: "e@x.com", Password: "hash", Username: "tester"}
	require.NoError(t, repo.CreateUser(ctx, user))

	reopened, err := NewFileUserRepository(path)
	require.NoError(t, err)

	stored, err := reopened.FindByEmail(ctx, "e@x.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, stored.ID)
	require.Equal(t, "hash", stored.Password)
	require.Equal(t, "tester", stored.Username)
}

func TestFileStoreUpdateMissingUser(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestFileRepo(t)

	err := repo.UpdateUser(ctx, &domain.User{ID: "nope", Email: "e@x.com"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
