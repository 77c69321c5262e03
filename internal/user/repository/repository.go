package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/neonshop/commerce-core/internal/query"
	"github.com/neonshop/commerce-core/internal/storage"
	"github.com/neonshop/commerce-core/internal/user/domain"
	"github.com/neonshop/commerce-core/internal/validation"
)

const userCollection = "users"

// User list sorting. Unknown sort fields fall back to the default
// instead of failing the request.
const (
	defaultUserSort    = "created_at"
	defaultUserSortDir = query.Desc
)

var userSortFields = map[string]bool{
	"name":          true,
	"email":         true,
	"role":          true,
	"last_login_at": true,
	"created_at":    true,
	"updated_at":    true,
}

func userSortKey(u domain.User, field string) any {
	switch field {
	case "name":
		return u.Name
	case "email":
		return u.Email
	case "role":
		return u.Role
	case "last_login_at":
		if u.LastLoginAt == nil {
			return time.Unix(0, 0).UTC()
		}
		return *u.LastLoginAt
	case "created_at":
		return u.CreatedAt
	case "updated_at":
		return u.UpdatedAt
	default:
		return ""
	}
}

// FileUserRepository keeps the whole user collection in memory and
// writes it back through the store on every mutation. The mutex is the
// single-writer lock over the backing document.
type FileUserRepository struct {
	mu    sync.Mutex
	store storage.Store
	users []domain.User
}

// NewFileUserRepository loads the user collection eagerly.
func NewFileUserRepository(store storage.Store) (*FileUserRepository, error) {
	r := &FileUserRepository{store: store}
	if err := store.Load(userCollection, &r.users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return r, nil
}

func (r *FileUserRepository) nextID() uint {
	var max uint
	for _, u := range r.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func (r *FileUserRepository) persist() error {
	return r.store.Save(userCollection, r.users)
}

// emailTaken reports whether email is already used by a user other than
// exceptID. Comparison is case-insensitive.
func (r *FileUserRepository) emailTaken(email string, exceptID uint) bool {
	for _, u := range r.users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// Create validates the user, enforces email uniqueness, assigns the
// next id and persists.
func (r *FileUserRepository) Create(user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(user.Email, 0) {
		return validation.Errors{"email": "is already registered"}
	}

	now := time.Now().UTC()
	user.ID = r.nextID()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users = append(r.users, *user)
	if err := r.persist(); err != nil {
		r.users = r.users[:len(r.users)-1]
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// FindByID returns a copy of the user with the given id.
func (r *FileUserRepository) FindByID(id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user %d", storage.ErrNotFound, id)
}

// FindByEmail returns a copy of the user with the given email. The
// lookup is case-insensitive.
func (r *FileUserRepository) FindByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user %q", storage.ErrNotFound, email)
}

// FindWithFilters applies the filter, sorts and paginates.
func (r *FileUserRepository) FindWithFilters(filter domain.UserFilter, page, limit int, sortField, sortDirection string) ([]domain.User, query.Pagination, error) {
	if err := filter.Validate(); err != nil {
		return nil, query.Pagination{}, err
	}

	r.mu.Lock()
	matched := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Matches(u) {
			matched = append(matched, u)
		}
	}
	r.mu.Unlock()

	if !userSortFields[sortField] {
		sortField = defaultUserSort
		sortDirection = defaultUserSortDir
	}
	query.Sort(matched, sortField, sortDirection, userSortKey)

	items, pagination := query.Paginate(matched, page, limit)
	return items, pagination, nil
}

// Update replaces the stored user, preserving CreatedAt.
func (r *FileUserRepository) Update(user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(user.Email, user.ID) {
		return validation.Errors{"email": "is already registered"}
	}

	for i := range r.users {
		if r.users[i].ID == user.ID {
			user.CreatedAt = r.users[i].CreatedAt
			user.UpdatedAt = time.Now().UTC()

			previous := r.users[i]
			r.users[i] = *user
			if err := r.persist(); err != nil {
				r.users[i] = previous
				return fmt.Errorf("failed to save users: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: user %d", storage.ErrNotFound, user.ID)
}

// Delete removes the user with the given id.
func (r *FileUserRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			previous := r.users
			r.users = append(append([]domain.User{}, r.users[:i]...), r.users[i+1:]...)
			if err := r.persist(); err != nil {
				r.users = previous
				return fmt.Errorf("failed to save users: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: user %d", storage.ErrNotFound, id)
}

// Count returns the total number of users.
func (r *FileUserRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// CountByRole returns the number of users holding the given role.
func (r *FileUserRepository) CountByRole(role string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// Stats summarizes the user base in one pass.
func (r *FileUserRepository) Stats() (*domain.UserStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats := &domain.UserStats{}
	for _, u := range r.users {
		stats.TotalUsers++
		switch u.Role {
		case domain.RoleCustomer:
			stats.CustomerCount++
		case domain.RoleManager:
			stats.ManagerCount++
		case domain.RoleAdmin:
			stats.AdminCount++
		}
		if u.Active {
			stats.ActiveUsers++
		}
		if u.EmailVerified {
			stats.VerifiedUsers++
		}
		if !u.CreatedAt.Before(monthStart) {
			stats.NewThisMonth++
		}
	}
	return stats, nil
}
