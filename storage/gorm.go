package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord is one persisted key-value pair.
type KVRecord struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVRecord) TableName() string {
	return "kv_records"
}

// GormStore persists key-value pairs in the database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(key string) (string, bool, error) {
	var rec KVRecord
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return rec.Value, true, nil
}

func (s *GormStore) Save(key, value string) error {
	rec := KVRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}
