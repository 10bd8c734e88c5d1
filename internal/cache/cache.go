// Package cache provides the persisted local key-value mirror of the
// remote ledger. The cache is advisory: it is a best-effort fallback and
// write-through mirror, never the sole source of truth while the
// authoritative store is reachable.
package cache

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wealthguard/internal/logger"
)

// Cache key namespace.
const (
	// StateKey addresses the full profile blob (assets, history, budget).
	StateKey = "wealthguard_state"

	spendingKeyPrefix = "wealthguard_spending_"
)

// SpendingKey returns the cache key for the transaction snapshot of the
// given range filter.
func SpendingKey(rangeKind string) string {
	return spendingKeyPrefix + rangeKind
}

// Store is the key-value contract consumed by the synchronization
// engines. Reads that fail for any reason report a miss; writes are
// fire-and-forget. Last-writer-wins is acceptable because the cache is
// advisory, not authoritative.
type Store interface {
	Read(key string) ([]byte, bool)
	Write(key string, value []byte)
}

// entry is a single cached JSON blob.
type entry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

// TableName overrides GORM's default pluralization.
func (entry) TableName() string { return "cache_entries" }

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *gorm.DB
}

// Open opens (or creates) the cache database at path and migrates the
// entries table. Use ":memory:" for an in-memory cache.
func Open(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Read returns the blob stored under key, or a miss if the key is absent
// or the cache is unavailable.
func (s *SQLiteStore) Read(key string) ([]byte, bool) {
	var e entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		return nil, false
	}
	return e.Value, true
}

// Write stores value under key. Failures are logged and swallowed: an
// unavailable cache degrades to a cache-miss on the next read.
func (s *SQLiteStore) Write(key string, value []byte) {
	e := entry{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.db.Save(&e).Error; err != nil {
		logger.Get().Warnw("cache write failed", "key", key, "error", err)
	}
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
