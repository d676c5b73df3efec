package service

import (
	"testing"

	"mozeh-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	t.Run("creates customer with hashed password", func(t *testing.T) {
		user, err := users.Register("Alice", "alice@mozeh.local", "0990000001", "secret123")
		require.NoError(t, err)
		assert.Equal(t, models.RoleCustomer, user.Role)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "secret123", user.Password)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := users.Register("Alice Again", "alice@mozeh.local", "0990000002", "secret456")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := users.Register("", "bob@mozeh.local", "", "secret123")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	_, err := users.Register("Alice", "alice@mozeh.local", "0990000001", "secret123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := users.Authenticate("alice@mozeh.local", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "alice@mozeh.local", user.Email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, wrongPass := users.Authenticate("alice@mozeh.local", "nope")
		_, unknown := users.Authenticate("ghost@mozeh.local", "nope")
		assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
		assert.ErrorIs(t, unknown, ErrInvalidCredentials)
		assert.Equal(t, wrongPass.Error(), unknown.Error())
	})
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	user, err := users.Register("Alice", "alice@mozeh.local", "0990000001", "secret123")
	require.NoError(t, err)

	updated, err := users.UpdateProfile(user.ID, UpdateProfileInput{
		Name:    "Alice Updated",
		Address: "New street 5",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", updated.Name)
	assert.Equal(t, "New street 5", updated.Address)
	// untouched fields keep their values
	assert.Equal(t, "0990000001", updated.Phone)
	assert.Equal(t, models.RoleCustomer, updated.Role)

	_, err = users.UpdateProfile("missing", UpdateProfileInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAvatar(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	user, err := users.Register("Alice", "alice@mozeh.local", "0990000001", "secret123")
	require.NoError(t, err)

	updated, previous, err := users.SetAvatar(user.ID, "/uploads/avatars/1.png")
	require.NoError(t, err)
	assert.Empty(t, previous)
	assert.Equal(t, "/uploads/avatars/1.png", updated.AvatarURL)

	_, previous, err = users.SetAvatar(user.ID, "/uploads/avatars/2.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/1.png", previous)
}

func TestListDrivers(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	createUser(t, db, "Customer", "c@mozeh.local", models.RoleCustomer)
	createUser(t, db, "Driver One", "d1@mozeh.local", models.RoleDriver)
	createUser(t, db, "Driver Two", "d2@mozeh.local", models.RoleDriver)
	createUser(t, db, "Admin", "a@mozeh.local", models.RoleAdmin)

	drivers, err := users.ListDrivers()
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	for _, d := range drivers {
		assert.Equal(t, models.RoleDriver, d.Role)
	}
}
