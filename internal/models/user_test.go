package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSetPassword(t *testing.T) {
	u := &User{Name: "Maria", Email: "maria@example.com"}
	require.NoError(t, u.SetPassword("s3cret"))

	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

// The hash never leaves the server in a serialized user.
func TestUserJSONOmitsPasswordHash(t *testing.T) {
	u := &User{Name: "Maria", Email: "maria@example.com"}
	require.NoError(t, u.SetPassword("s3cret"))

	payload, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), u.PasswordHash)
	assert.NotContains(t, string(payload), "password")
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RolePatient))
	assert.True(t, IsValidRole(RoleDoctor))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.False(t, IsValidRole(Role("superuser")))
	assert.False(t, IsValidRole(Role("")))
}
