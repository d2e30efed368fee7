package store

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"go.uber.org/zap"

	"fridgekeeper/internal/models"
)

// The two independent persisted records.
const (
	keyConfiguration = "fridge:config"
	keyInventory     = "fridge:inventory"
)

// Record is one persisted key-value entry. Values are whole JSON
// documents, always written wholesale.
type Record struct {
	Key   string `gorm:"primary_key"`
	Value string `gorm:"type:text"`
}

// Store is the durable mirror of the fridge configuration and the food
// inventory. Loads are fail-soft: missing or unreadable data is treated
// the same as never-written data.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open opens (creating if needed) the store at the given path.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.AutoMigrate(&Record{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) put(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	rec := Record{Key: key}
	if err := s.db.Where(Record{Key: key}).Assign(Record{Value: string(data)}).FirstOrCreate(&rec).Error; err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// get reads and decodes one record. Any failure reports false; callers
// fall back to their absent value.
func (s *Store) get(key string, out interface{}) bool {
	var rec Record
	if err := s.db.Where("key = ?", key).First(&rec).Error; err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			s.log.Warn("record read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		s.log.Warn("discarding unreadable record", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// LoadConfiguration returns the persisted fridge configuration, or nil if
// none exists or the record cannot be read.
func (s *Store) LoadConfiguration() *models.FridgeConfiguration {
	var cfg models.FridgeConfiguration
	if !s.get(keyConfiguration, &cfg) {
		return nil
	}
	return &cfg
}

// SaveConfiguration overwrites the persisted configuration.
func (s *Store) SaveConfiguration(cfg *models.FridgeConfiguration) error {
	return s.put(keyConfiguration, cfg)
}

// ClearConfiguration removes the configuration record entirely.
func (s *Store) ClearConfiguration() error {
	if err := s.db.Where("key = ?", keyConfiguration).Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("clear %s: %w", keyConfiguration, err)
	}
	return nil
}

// LoadInventory returns the persisted inventory. Missing or unreadable
// data yields an empty list, never an error.
func (s *Store) LoadInventory() []models.FoodItem {
	var items []models.FoodItem
	if !s.get(keyInventory, &items) || items == nil {
		return []models.FoodItem{}
	}
	return items
}

// SaveInventory overwrites the persisted inventory with the whole list.
func (s *Store) SaveInventory(items []models.FoodItem) error {
	if items == nil {
		items = []models.FoodItem{}
	}
	return s.put(keyInventory, items)
}
