package snapshot

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HealthHubServices/healthhub-api/internal/models"
)

func TestDecode(t *testing.T) {
	log := zerolog.Nop()

	out := Decode[models.User](log, KeyUsers, []byte(`[{"name":"Maria","email":"maria@example.com"}]`))
	require.Len(t, out, 1)
	assert.Equal(t, "Maria", out[0].Name)
}

// A corrupt payload falls back to an empty collection instead of failing.
func TestDecodeCorruptPayload(t *testing.T) {
	log := zerolog.Nop()

	out := Decode[models.User](log, KeyUsers, []byte(`{"not":"a list"`))
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestDecodeEmptyPayload(t *testing.T) {
	out := Decode[models.Appointment](zerolog.Nop(), KeyAppointments, nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// A nil mirror and a mirror without a client are both inert.
func TestMirrorNilSafety(t *testing.T) {
	ctx := context.Background()

	var m *Mirror
	m.Write(ctx, KeyOrders, []models.Order{})
	assert.Empty(t, Load[models.Order](ctx, m, KeyOrders))

	m = New(nil, zerolog.Nop())
	m.Write(ctx, KeyOrders, []models.Order{})
	assert.Nil(t, m.Raw(ctx, KeyOrders))
	assert.Empty(t, Load[models.Order](ctx, m, KeyOrders))
}
