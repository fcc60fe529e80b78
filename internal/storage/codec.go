package storage

import (
	"encoding/json"
	"fmt"

	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/model"
)

// ItemsKey is the fixed key the collection is stored under.
const ItemsKey = "savedItems"

// EncodeItems serializes the collection as a JSON array of item records.
// A nil collection encodes as an empty array. Records DecodeItems would
// reject are refused here so a save never replaces good data with a
// corrupt blob.
func EncodeItems(items []model.Item) ([]byte, error) {
	if items == nil {
		items = []model.Item{}
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("failed to encode items: record %d: %w", i, err)
		}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}
	return data, nil
}

// DecodeItems parses a collection written by EncodeItems. Any record that
// breaks an item invariant makes the whole blob corrupt.
func DecodeItems(data []byte) ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrDatabaseCorrupted, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: collection is null", common.ErrDatabaseCorrupted)
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", common.ErrDatabaseCorrupted, i, err)
		}
	}
	return items, nil
}
