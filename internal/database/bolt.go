// Package database provides data persistence using BoltDB.
package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	dbFileMode = 0600
	dbDirMode  = 0755

	defaultDBFile = "data.db"
)

var titleBucket = []byte("anilist_titles")

// TitleCache is a cached AniList lookup. Only metadata is persisted; resolved
// host identifiers are re-computed on every request.
type TitleCache struct {
	AniListID string    `json:"anilist_id"`
	Title     string    `json:"title"`
	Synonyms  []string  `json:"synonyms"`
	CreatedAt time.Time `json:"created_at"`
}

// Database defines the interface for data persistence operations.
type Database interface {
	// GetCachedTitle retrieves a cached AniList lookup; nil when absent.
	GetCachedTitle(anilistID string) (*TitleCache, error)
	// StoreTitle stores an AniList lookup result.
	StoreTitle(cache *TitleCache) error
	// Close closes the database connection
	Close() error
}

// BoltDB implements the Database interface using BoltDB.
type BoltDB struct {
	db *bolt.DB
}

// NewBolt creates a new BoltDB database instance.
// If dbPath is empty, uses the default database file in current directory.
func NewBolt(dbPath string) (*BoltDB, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, dbFileMode, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(titleBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// Close closes the database connection.
func (b *BoltDB) Close() error {
	return b.db.Close()
}

// GetCachedTitle retrieves a cached AniList lookup by ID.
// Returns nil if not found, without error.
func (b *BoltDB) GetCachedTitle(anilistID string) (*TitleCache, error) {
	var cache *TitleCache
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(titleBucket).Get([]byte(anilistID))
		if data == nil {
			return nil
		}
		var tc TitleCache
		if err := json.Unmarshal(data, &tc); err != nil {
			return fmt.Errorf("failed to decode cached title: %w", err)
		}
		cache = &tc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cache, nil
}

// StoreTitle stores an AniList lookup result.
func (b *BoltDB) StoreTitle(cache *TitleCache) error {
	if cache == nil || cache.AniListID == "" {
		return fmt.Errorf("title cache requires an AniList ID")
	}
	if cache.CreatedAt.IsZero() {
		cache.CreatedAt = time.Now()
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("failed to encode title cache: %w", err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(titleBucket).Put([]byte(cache.AniListID), data)
	})
}
