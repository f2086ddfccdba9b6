package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdomain "github.com/HealthHubServices/healthhub-api/internal/domain/user"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

func TestUsers(t *testing.T) {
	a := models.User{Name: "Maria Santos", Email: "maria@example.com", Role: models.RolePatient, Status: "active"}
	a.ID = "u1"
	b := models.User{Name: "John Doe", Email: "john@clinic.org", Role: models.RoleDoctor, Status: "pending"}
	b.ID = "u2"
	c := models.User{Name: "Ana Admin", Email: "ana@clinic.org", Role: models.RoleAdmin, Status: "active"}
	c.ID = "u3"

	in := []models.User{a, b, c}

	out := Users(in, UserFilter{Role: models.RoleDoctor})
	require.Len(t, out, 1)
	assert.Equal(t, "u2", out[0].ID)

	out = Users(in, UserFilter{Status: userdomain.StatusActive})
	require.Len(t, out, 2)
	assert.Equal(t, "u1", out[0].ID)
	assert.Equal(t, "u3", out[1].ID)

	out = Users(in, UserFilter{Search: "clinic.org"})
	require.Len(t, out, 2)

	out = Users(in, UserFilter{Role: models.RolePatient, Search: "doe"})
	assert.Empty(t, out)
}

func TestMatchAny(t *testing.T) {
	assert.True(t, matchAny("", "anything"))
	assert.True(t, matchAny("  ", "anything"))
	assert.True(t, matchAny("OKA", "Dr. Amara Okafor"))
	assert.False(t, matchAny("zzz", "Dr. Amara Okafor", "check-up"))
}
