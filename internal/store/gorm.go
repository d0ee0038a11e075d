package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is the one-row-per-key table backing GormStore.
type Snapshot struct {
	Key       string `gorm:"primaryKey;size:255"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// GormStore stores snapshots in a SQL database through GORM.
// Production runs it on Postgres; tests run it on in-memory SQLite.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a SnapshotStore backed by the given GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load implements SnapshotStore.
func (s *GormStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var snap Snapshot
	err := s.db.WithContext(ctx).First(&snap, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return snap.Data, true, nil
}

// Save implements SnapshotStore. The whole payload is overwritten; the
// single-key upsert is as atomic as the underlying database makes it.
func (s *GormStore) Save(ctx context.Context, key string, data []byte) error {
	snap := Snapshot{Key: key, Data: data, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&snap).Error
}
