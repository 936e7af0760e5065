package kv

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is the GORM model backing the sqlite binding: one row per key.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

// TableName keeps the table name stable regardless of GORM pluralization.
func (Entry) TableName() string { return "kv_entries" }

// SQLite is a Binding backed by a single-table sqlite database.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database at path and migrates the
// kv_entries table. Use ":memory:" for an ephemeral database.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite store: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get returns the value stored under key, or ok=false if absent.
func (s *SQLite) Get(key string) ([]byte, bool, error) {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return entry.Value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *SQLite) Set(key string, value []byte) error {
	entry := Entry{Key: key, Value: value}
	return s.db.Save(&entry).Error
}

// Close releases the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
