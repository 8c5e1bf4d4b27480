package store

import (
	"encoding/json"
	"fmt"

	"github.com/ramasheshasai/Calorie-Builder/internal/model"
)

// StorageKey identifies the single diary document in the key-value
// substrate. Kept from the original data so existing documents load.
const StorageKey = "food_diary_app"

// Repository is the typed persistence surface for the aggregator:
// whole-document load and save, nothing incremental.
type Repository interface {
	Load() (model.DiaryStore, error)
	Save(model.DiaryStore) error
}

// KVRepository serializes the DiaryStore as one JSON document under
// StorageKey in any KV substrate.
type KVRepository struct {
	KV  KV
	Key string
}

func NewRepository(kv KV) *KVRepository {
	return &KVRepository{KV: kv, Key: StorageKey}
}

// Load reads the full document. An absent key yields a zero-valued
// store, not an error.
func (r *KVRepository) Load() (model.DiaryStore, error) {
	raw, ok, err := r.KV.Get(r.Key)
	if err != nil {
		return model.DiaryStore{}, err
	}
	if !ok {
		return model.DiaryStore{}, nil
	}
	var s model.DiaryStore
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return model.DiaryStore{}, fmt.Errorf("%w: decode diary document: %v", ErrPersistence, err)
	}
	return s, nil
}

// Save writes the full document back, replacing whatever was stored.
func (r *KVRepository) Save(s model.DiaryStore) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: encode diary document: %v", ErrPersistence, err)
	}
	return r.KV.Set(r.Key, string(raw))
}
