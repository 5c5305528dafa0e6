package storage

import (
	"errors"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecord is the row shape for the SQL-backed blob store.
type KVRecord struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     []byte    `gorm:"type:longblob" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName keeps the table name stable across gorm naming strategies.
func (KVRecord) TableName() string { return "kv_records" }

// SQLStore persists blobs in a MySQL table through gorm, for deployments
// where the companion service is shared between devices.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore connects to MySQL and migrates the blob table.
func NewSQLStore(dsn string) (*SQLStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(key string) ([]byte, bool, error) {
	var rec KVRecord
	err := s.db.First(&rec, "`key` = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return rec.Value, true, nil
}

func (s *SQLStore) Put(key string, value []byte) error {
	rec := KVRecord{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}

func (s *SQLStore) Delete(key string) error {
	return s.db.Delete(&KVRecord{}, "`key` = ?", key).Error
}
