package savegame

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"raywizard/internal/engine"

	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

// BoltFile is the database file inside the data directory.
const BoltFile = "saves.db"

var savesBucket = []byte("saves")

// BoltStore keeps saves in a local bbolt file.
type BoltStore struct {
	db  *bolt.DB
	ids *ids
	log logrus.FieldLogger
}

var _ Store = (*BoltStore)(nil)

// OpenBolt opens (creating if needed) dir/saves.db.
func OpenBolt(dir string, log logrus.FieldLogger) (*BoltStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("savegame: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, BoltFile)
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("savegame: open %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(savesBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("savegame: create bucket: %w", err)
	}
	return &BoltStore{db: db, ids: newIDs(nil), log: log.WithField("store", "bolt")}, nil
}

func (s *BoltStore) Save(ctx context.Context, snap *engine.Snapshot) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := encode(snap)
	if err != nil {
		return "", err
	}
	id, err := s.ids.next()
	if err != nil {
		return "", err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(savesBucket).Put([]byte(id.String()), data)
	})
	if err != nil {
		return "", fmt.Errorf("savegame: put: %w", err)
	}
	s.log.WithFields(logrus.Fields{"id": id.String(), "bytes": len(data)}).Debug("saved")
	return id.String(), nil
}

func (s *BoltStore) Load(ctx context.Context, id string) (*engine.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := parseID(id); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		// bbolt values are only valid inside the transaction
		if v := tx.Bucket(savesBucket).Get([]byte(id)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("savegame: get: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return decode(data)
}

func (s *BoltStore) Latest(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var id string
	err := s.db.View(func(tx *bolt.Tx) error {
		if k, _ := tx.Bucket(savesBucket).Cursor().Last(); k != nil {
			id = string(k)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("savegame: scan: %w", err)
	}
	if id == "" {
		return "", ErrNotFound
	}
	return id, nil
}

func (s *BoltStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := parseID(id); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(savesBucket)
		if b.Get([]byte(id)) == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return b.Delete([]byte(id))
	})
}

// Close releases the database file.
func (s *BoltStore) Close() error { return s.db.Close() }
