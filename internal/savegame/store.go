// Package savegame persists world snapshots. Saves are JSON blobs keyed by
// ULID, so the newest save is also the last one in key order.
package savegame

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"raywizard/internal/config"
	"raywizard/internal/engine"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when a save does not exist.
var ErrNotFound = errors.New("save not found")

// Store keeps snapshots.
type Store interface {
	// Save stores s and returns its new ID.
	Save(ctx context.Context, s *engine.Snapshot) (string, error)
	Load(ctx context.Context, id string) (*engine.Snapshot, error)
	// Latest returns the ID of the most recent save.
	Latest(ctx context.Context) (string, error)
	Delete(ctx context.Context, id string) error
	io.Closer
}

// Open connects the backend named in cfg. The "none" backend returns a
// nil Store and no error.
func Open(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (Store, error) {
	switch cfg.SaveBackend {
	case config.SaveNone:
		return nil, nil
	case config.SaveBolt:
		return OpenBolt(cfg.DataDir, log)
	case config.SaveRedis:
		return OpenRedis(ctx, cfg.RedisAddr, log)
	}
	return nil, fmt.Errorf("savegame: unknown backend %q", cfg.SaveBackend)
}

// ids mints monotonic ULIDs.
type ids struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
}

func newIDs(now func() time.Time) *ids {
	if now == nil {
		now = time.Now
	}
	return &ids{now: now, entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ids) next() (ulid.ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(g.now()), g.entropy)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("savegame: mint id: %w", err)
	}
	return id, nil
}

// parseID validates a save ID.
func parseID(id string) (ulid.ULID, error) {
	u, err := ulid.Parse(id)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("%w: bad id %q", ErrNotFound, id)
	}
	return u, nil
}

func encode(s *engine.Snapshot) ([]byte, error) {
	if s == nil {
		return nil, errors.New("savegame: nil snapshot")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("savegame: encode: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*engine.Snapshot, error) {
	var s engine.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("savegame: decode: %w", err)
	}
	return &s, nil
}
