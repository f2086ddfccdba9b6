package snapshot

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Fixed keys, one serialized collection per entity type.
const (
	KeyAppointments  = "healthhub:appointments"
	KeyOrders        = "healthhub:orders"
	KeyUsers         = "healthhub:users"
	KeyPrescriptions = "healthhub:prescriptions"
)

// Mirror re-serializes a full collection to redis after every store
// mutation, so any page within the session observes the same state. It is
// best-effort: a failed write is logged, never surfaced to the caller.
type Mirror struct {
	rdb *redis.Client
	log zerolog.Logger
}

// New returns a Mirror. A nil client disables mirroring, which is what the
// in-memory test wiring uses.
func New(rdb *redis.Client, log zerolog.Logger) *Mirror {
	return &Mirror{rdb: rdb, log: log}
}

func (m *Mirror) Write(ctx context.Context, key string, collection any) {
	if m == nil || m.rdb == nil {
		return
	}

	payload, err := json.Marshal(collection)
	if err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("snapshot encode failed")
		return
	}

	if err := m.rdb.Set(ctx, key, payload, 0).Err(); err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("snapshot write failed")
	}
}

// Raw returns the stored payload for a key, or nil when absent.
func (m *Mirror) Raw(ctx context.Context, key string) []byte {
	if m == nil || m.rdb == nil {
		return nil
	}

	payload, err := m.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			m.log.Warn().Err(err).Str("key", key).Msg("snapshot read failed")
		}
		return nil
	}
	return payload
}

// Load reads one collection back. Missing keys and corrupt payloads both
// yield an empty collection; corruption is logged, never fatal.
func Load[T any](ctx context.Context, m *Mirror, key string) []T {
	if m == nil {
		return []T{}
	}
	return Decode[T](m.log, key, m.Raw(ctx, key))
}

// Decode unmarshals a snapshot payload, falling back to an empty collection
// on malformed JSON.
func Decode[T any](log zerolog.Logger, key string, payload []byte) []T {
	if len(payload) == 0 {
		return []T{}
	}

	var out []T
	if err := json.Unmarshal(payload, &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("snapshot corrupt, starting empty")
		return []T{}
	}
	return out
}
