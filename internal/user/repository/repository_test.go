package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonshop/commerce-core/internal/storage"
	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

func newTestRepo(t *testing.T) *FileUserRepository {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	repo, err := NewFileUserRepository(store)
	require.NoError(t, err)
	return repo
}

func seedUser(t *testing.T, repo *FileUserRepository, name, email string) domain.User {
	t.Helper()
	u := domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.RoleCustomer,
		Active:       true,
	}
	require.NoError(t, repo.Create(&u))
	return u
}

func TestCreateEnforcesUniqueEmail(t *testing.T) {
	repo := newTestRepo(t)
	seedUser(t, repo, "Ana", "ana@example.com")

	dup := domain.User{Name: "Other", Email: "ANA@example.com", PasswordHash: "hash"}
	err := repo.Create(&dup)

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "email")

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFindByEmailIsCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)
	created := seedUser(t, repo, "Ana", "Ana@Example.com")

	found, err := repo.FindByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateAllowsKeepingOwnEmail(t *testing.T) {
	repo := newTestRepo(t)
	created := seedUser(t, repo, "Ana", "ana@example.com")
	seedUser(t, repo, "Bruno", "bruno@example.com")

	created.Name = "Ana Souza"
	assert.NoError(t, repo.Update(&created))

	created.Email = "bruno@example.com"
	err := repo.Update(&created)
	_, ok := validation.AsErrors(err)
	assert.True(t, ok, "cannot take another user's email")
}

func TestFindWithFiltersByRoleAndSearch(t *testing.T) {
	repo := newTestRepo(t)
	seedUser(t, repo, "Ana Souza", "ana@example.com")
	bruno := seedUser(t, repo, "Bruno Lima", "bruno@example.com")
	bruno.Role = domain.RoleAdmin
	require.NoError(t, repo.Update(&bruno))

	items, meta, err := repo.FindWithFilters(domain.UserFilter{Role: domain.RoleAdmin}, 1, 10, "name", "asc")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bruno Lima", items[0].Name)
	assert.Equal(t, 1, meta.Total)

	items, _, err = repo.FindWithFilters(domain.UserFilter{Search: "souza"}, 1, 10, "name", "asc")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ana Souza", items[0].Name)
}

func TestStatsCountsRolesAndFlags(t *testing.T) {
	repo := newTestRepo(t)
	seedUser(t, repo, "Ana", "ana@example.com")
	admin := seedUser(t, repo, "Bruno", "bruno@example.com")
	admin.Role = domain.RoleAdmin
	admin.EmailVerified = true
	require.NoError(t, repo.Update(&admin))
	inactive := seedUser(t, repo, "Carla", "carla@example.com")
	inactive.Active = false
	require.NoError(t, repo.Update(&inactive))

	stats, err := repo.Stats()

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.CustomerCount)
	assert.Equal(t, int64(1), stats.AdminCount)
	assert.Equal(t, int64(2), stats.ActiveUsers)
	assert.Equal(t, int64(1), stats.VerifiedUsers)
	assert.Equal(t, int64(3), stats.NewThisMonth)
}
