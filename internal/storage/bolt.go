package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	bolt "go.etcd.io/bbolt"
)

const boltFileName = "mymusic.bolt"

var bucketSettings = []byte("settings")

// BoltStore persists settings in a BoltDB bucket. It is selected over the
// SQLite backend via the storage.backend config key.
type BoltStore struct {
	db *bolt.DB
}

// Verify BoltStore implements Store at compile time.
var _ Store = (*BoltStore)(nil)

// OpenBolt opens (creating if necessary) a Bolt-backed store at path.
// An empty path uses the default per-user location.
func OpenBolt(path string) (*BoltStore, error) {
	var err error
	if path == "" {
		path, err = xdg.DataFile(filepath.Join(appName, boltFileName))
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSettings)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(key string) (string, bool, error) {
	var value string
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSettings).Get([]byte(key)); v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	return value, found, err
}

func (s *BoltStore) Set(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSettings).Put([]byte(key), []byte(value))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
