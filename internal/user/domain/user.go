package domain

import (
	"strings"
	"time"

	"github.com/neonshop/commerce-core/internal/query"
	"github.com/neonshop/commerce-core/internal/validation"
)

// Roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleManager  = "manager"
)

var validRoles = map[string]bool{
	RoleCustomer: true,
	RoleAdmin:    true,
	RoleManager:  true,
}

// IsValidRole reports whether role is a known role.
func IsValidRole(role string) bool { return validRoles[role] }

// UserAddress is one of a user's saved addresses. At most one address is
// flagged primary.
type UserAddress struct {
	ID           string `json:"id"`
	Label        string `json:"label,omitempty"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipcode"`
	Primary      bool   `json:"primary"`
}

// Validate checks the address's required fields.
func (a UserAddress) Validate() error {
	verrs := validation.Errors{}
	required := map[string]string{
		"street":       a.Street,
		"number":       a.Number,
		"neighborhood": a.Neighborhood,
		"city":         a.City,
		"state":        a.State,
		"zipcode":      a.ZipCode,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			verrs.Add(field, "is required")
		}
	}
	return verrs.Err()
}

// DefaultPreferences are the baseline settings a user's stored
// preferences are merged over.
func DefaultPreferences() map[string]any {
	return map[string]any{
		"newsletter":    false,
		"notifications": true,
		"language":      "pt-BR",
		"currency":      "BRL",
	}
}

// User represents an account. PasswordHash is a salted bcrypt hash; the
// plain text never reaches the repository.
type User struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`

	Phone     string     `json:"phone,omitempty"`
	CPF       string     `json:"cpf,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`

	Role          string `json:"role"`
	Active        bool   `json:"active"`
	EmailVerified bool   `json:"email_verified"`

	EmailVerificationToken string         `json:"email_verification_token,omitempty"`
	PasswordResetToken     string         `json:"password_reset_token,omitempty"`
	PasswordResetExpires   *time.Time     `json:"password_reset_expires,omitempty"`
	Addresses              []UserAddress  `json:"addresses,omitempty"`
	Preferences            map[string]any `json:"preferences,omitempty"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// CanResetPassword reports whether token matches an unexpired reset
// token.
func (u *User) CanResetPassword(token string, now time.Time) bool {
	if u.PasswordResetToken == "" || token == "" {
		return false
	}
	if u.PasswordResetToken != token {
		return false
	}
	return u.PasswordResetExpires != nil && now.Before(*u.PasswordResetExpires)
}

// MergedPreferences overlays the user's stored preferences on the
// defaults.
func (u *User) MergedPreferences() map[string]any {
	merged := DefaultPreferences()
	for k, v := range u.Preferences {
		merged[k] = v
	}
	return merged
}

// PrimaryAddress returns the address flagged primary, or nil.
func (u *User) PrimaryAddress() *UserAddress {
	for i := range u.Addresses {
		if u.Addresses[i].Primary {
			return &u.Addresses[i]
		}
	}
	return nil
}

// SetPrimaryAddress flags one address primary and clears the flag on
// every other address.
func (u *User) SetPrimaryAddress(addressID string) error {
	found := false
	for i := range u.Addresses {
		if u.Addresses[i].ID == addressID {
			found = true
		}
	}
	if !found {
		return validation.Errors{"address_id": "unknown address " + addressID}
	}
	for i := range u.Addresses {
		u.Addresses[i].Primary = u.Addresses[i].ID == addressID
	}
	return nil
}

// Validate checks the user's own invariants, reporting every invalid
// field at once.
func (u *User) Validate() error {
	verrs := validation.Errors{}

	if strings.TrimSpace(u.Name) == "" {
		verrs.Add("name", "is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		verrs.Add("email", "is required")
	} else if !strings.Contains(u.Email, "@") {
		verrs.Add("email", "is not a valid email address")
	}
	if u.PasswordHash == "" {
		verrs.Add("password", "is required")
	}
	if u.Role != "" && !IsValidRole(u.Role) {
		verrs.Add("role", "unknown role "+u.Role)
	}
	if u.CPF != "" && !ValidateCPF(u.CPF) {
		verrs.Add("cpf", "is not a valid CPF")
	}

	primaries := 0
	for _, a := range u.Addresses {
		if a.Primary {
			primaries++
		}
	}
	if primaries > 1 {
		verrs.Add("addresses", "at most one address can be primary")
	}

	return verrs.Err()
}

// UserFilter carries the recognized list predicates. Zero values are
// no-ops; all supplied predicates must hold (logical AND).
type UserFilter struct {
	Role        string
	Active      *bool
	Verified    *bool
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// Validate rejects logically inconsistent filters before they reach the
// matching pass.
func (f UserFilter) Validate() error {
	verrs := validation.Errors{}
	if f.Role != "" && !IsValidRole(f.Role) {
		verrs.Add("role", "unknown role "+f.Role)
	}
	if f.CreatedFrom != nil && f.CreatedTo != nil && f.CreatedFrom.After(*f.CreatedTo) {
		verrs.Add("created_from", "cannot be after created_to")
	}
	return verrs.Err()
}

// Matches reports whether the user satisfies every supplied predicate.
func (f UserFilter) Matches(u User) bool {
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	if f.Active != nil && u.Active != *f.Active {
		return false
	}
	if f.Verified != nil && u.EmailVerified != *f.Verified {
		return false
	}
	if f.Search != "" &&
		!query.ContainsFold(u.Name, f.Search) &&
		!query.ContainsFold(u.Email, f.Search) {
		return false
	}
	if !query.InDateRange(u.CreatedAt, f.CreatedFrom, f.CreatedTo) {
		return false
	}
	return true
}

// UserStats summarizes the user base.
type UserStats struct {
	TotalUsers    int64 `json:"total_users"`
	CustomerCount int64 `json:"customer_count"`
	ManagerCount  int64 `json:"manager_count"`
	AdminCount    int64 `json:"admin_count"`
	ActiveUsers   int64 `json:"active_users"`
	VerifiedUsers int64 `json:"verified_users"`
	NewThisMonth  int64 `json:"new_this_month"`
}

// UserRepository defines the contract for user data access.
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	FindWithFilters(filter UserFilter, page, limit int, sortField, sortDirection string) ([]User, query.Pagination, error)
	Update(user *User) error
	Delete(id uint) error
	Count() (int64, error)
	CountByRole(role string) (int64, error)
	Stats() (*UserStats, error)
}
