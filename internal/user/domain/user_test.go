package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonshop/commerce-core/internal/validation"
)

func TestUserValidateReportsEveryInvalidField(t *testing.T) {
	u := User{
		Name:  " ",
		Email: "not-an-email",
		CPF:   "123",
		Role:  "wizard",
	}

	err := u.Validate()

	verrs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "password")
	assert.Contains(t, verrs, "cpf")
	assert.Contains(t, verrs, "role")
}

func TestUserValidateRejectsTwoPrimaryAddresses(t *testing.T) {
	u := User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "x",
		Addresses: []UserAddress{
			{ID: "a", Primary: true},
			{ID: "b", Primary: true},
		},
	}

	verrs, ok := validation.AsErrors(u.Validate())
	require.True(t, ok)
	assert.Contains(t, verrs, "addresses")
}

func TestMergedPreferencesOverlayDefaults(t *testing.T) {
	u := User{Preferences: map[string]any{
		"newsletter": true,
		"theme":      "dark",
	}}

	merged := u.MergedPreferences()

	assert.Equal(t, true, merged["newsletter"])
	assert.Equal(t, "dark", merged["theme"])
	assert.Equal(t, true, merged["notifications"])
	assert.Equal(t, "pt-BR", merged["language"])
	assert.Equal(t, "BRL", merged["currency"])
}

func TestSetPrimaryAddressDemotesOthers(t *testing.T) {
	u := User{Addresses: []UserAddress{
		{ID: "home", Primary: true},
		{ID: "work"},
	}}

	require.NoError(t, u.SetPrimaryAddress("work"))

	assert.False(t, u.Addresses[0].Primary)
	assert.True(t, u.Addresses[1].Primary)
	require.NotNil(t, u.PrimaryAddress())
	assert.Equal(t, "work", u.PrimaryAddress().ID)

	err := u.SetPrimaryAddress("nowhere")
	_, ok := validation.AsErrors(err)
	assert.True(t, ok)
}

func TestCanResetPassword(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	u := User{PasswordResetToken: "tok", PasswordResetExpires: &future}
	assert.True(t, u.CanResetPassword("tok", now))
	assert.False(t, u.CanResetPassword("other", now))
	assert.False(t, u.CanResetPassword("", now))

	u.PasswordResetExpires = &past
	assert.False(t, u.CanResetPassword("tok", now), "expired token")

	u = User{}
	assert.False(t, u.CanResetPassword("tok", now))
}

func TestUserFilterMatches(t *testing.T) {
	active := true
	u := User{
		Name:      "Ana Souza",
		Email:     "ana@example.com",
		Role:      RoleCustomer,
		Active:    true,
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	f := UserFilter{Role: RoleCustomer, Active: &active, Search: "souza"}
	assert.True(t, f.Matches(u))

	f.Search = "ana@example"
	assert.True(t, f.Matches(u), "email is searchable")

	f.Role = RoleAdmin
	assert.False(t, f.Matches(u))
}
