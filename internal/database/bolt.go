// Package database contains storage for leaderboard snapshots.
package database

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const openTimeout = 5 * time.Second

// BoltKVStore provides simple kv store interface based on boltdb.
// Safe for concurrent use.
type BoltKVStore struct {
	db         *bbolt.DB
	bucketName []byte
}

// NewBoltKVStore opens (or creates) database file and makes sure bucket exists.
func NewBoltKVStore(dbPath string, bucketName string) (*BoltKVStore, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating database bucket: %w", err)
	}

	return &BoltKVStore{
		db:         db,
		bucketName: []byte(bucketName),
	}, nil
}

// ReadKey returns data saved for given key. Returns nil if there's no data stored.
func (s *BoltKVStore) ReadKey(key []byte) ([]byte, error) {
	var data []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		// Values returned by bolt are valid only for the transaction lifetime.
		if v := tx.Bucket(s.bucketName).Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading from db: %w", err)
	}

	return data, nil
}

// UpdateKey stores given data under given key.
func (s *BoltKVStore) UpdateKey(key []byte, data []byte) error {
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucketName).Put(key, data)
	}); err != nil {
		return fmt.Errorf("writing to db: %w", err)
	}

	return nil
}

// DeleteKey removes given key. Deleting missing key is not an error.
func (s *BoltKVStore) DeleteKey(key []byte) error {
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucketName).Delete(key)
	}); err != nil {
		return fmt.Errorf("deleting from db: %w", err)
	}

	return nil
}

// ForEach calls fn for every stored pair in key order.
// Key and data passed to fn are valid only until fn returns.
// fn must not modify the store.
func (s *BoltKVStore) ForEach(fn func(key []byte, data []byte) error) error {
	if err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucketName).ForEach(fn)
	}); err != nil {
		return fmt.Errorf("iterating db: %w", err)
	}

	return nil
}

// Close closes database.
func (s *BoltKVStore) Close() error {
	return s.db.Close()
}
