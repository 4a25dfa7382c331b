package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/walavie/walavie-site/pkg/cache"
)

// sequence hands out ids for one record kind. The mutex is held across the
// cache write so an id is only consumed once its record is stored.
type sequence struct {
	mu   sync.Mutex
	last int
}

// resume moves the sequence past the highest id stored under prefix
func (s *sequence) resume(ctx context.Context, c cache.Cache, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	results, err := c.GetByPattern(ctx, prefix+"*")
	if err != nil {
		return err
	}

	for key := range results {
		id, err := strconv.Atoi(strings.TrimPrefix(key, prefix))
		if err != nil {
			continue
		}
		if id > s.last {
			s.last = id
		}
	}
	return nil
}

// next runs store with the next id and advances the sequence only if store succeeds
func (s *sequence) next(store func(id int) error) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.last + 1
	if err := store(id); err != nil {
		return 0, err
	}
	s.last = id
	return id, nil
}

func recordKey(prefix string, id int) string {
	return prefix + strconv.Itoa(id)
}

func decodeValue(val interface{}, out interface{}) error {
	var data []byte
	switch v := val.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unexpected cache value type %T", val)
	}
	return json.Unmarshal(data, out)
}

// getRecord loads and decodes one record. A cache miss yields (nil, nil).
func getRecord[T any](ctx context.Context, c cache.Cache, key, entityType string) (*T, error) {
	val, err := c.Get(ctx, key)
	if err != nil {
		if cache.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s from cache: %w", entityType, err)
	}

	var record T
	if err := decodeValue(val, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", entityType, err)
	}
	return &record, nil
}

func putRecord(ctx context.Context, c cache.Cache, key string, record interface{}, entityType string) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", entityType, err)
	}

	if err := c.Set(ctx, key, string(data), cache.NoExpiration); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", entityType, err)
	}
	return nil
}

// listRecords returns every record stored under prefix ordered by id. A
// record that fails to decode fails the whole listing, as it does in getRecord.
func listRecords[T any](
	ctx context.Context, c cache.Cache, prefix, entityType string, idOf func(T) int,
) ([]T, error) {
	results, err := c.GetByPattern(ctx, prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", entityType, err)
	}

	records := make([]T, 0, len(results))
	for key, val := range results {
		var record T
		if err := decodeValue(val, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s %s: %w", entityType, key, err)
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return idOf(records[i]) < idOf(records[j])
	})
	return records, nil
}
