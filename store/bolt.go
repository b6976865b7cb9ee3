package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/hourglass/internal/models"
	"github.com/ayoisaiah/hourglass/internal/osutil"
)

const sessionBucket = "sessions"

// Bolt stores the history in a BoltDB file, one key per session. Keys are
// big-endian positions so that cursor order matches save order.
type Bolt struct {
	db *bolt.DB
}

// NewBolt opens (or creates) the database at path and locks it.
func NewBolt(path string) (*Bolt, error) {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		path,
		osutil.DBPermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errHourglassRunning
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Bolt{db: db}, nil
}

func positionKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))

	return key
}

func (b *Bolt) Load() (models.History, error) {
	h := models.History{}

	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(_, v []byte) error {
			var sess models.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				return ErrMalformedData.Wrap(err)
			}

			h = append(h, sess)

			return nil
		})
	})
	if err != nil {
		return models.History{}, err
	}

	return h, nil
}

// Flush replaces the session bucket within a single transaction.
func (b *Bolt) Flush(h models.History) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(sessionBucket))
		if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}

		bucket, err := tx.CreateBucket([]byte(sessionBucket))
		if err != nil {
			return err
		}

		for i := range h {
			v, err := json.Marshal(h[i])
			if err != nil {
				return err
			}

			err = bucket.Put(positionKey(i), v)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errFlush.Wrap(err)
	}

	return nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
