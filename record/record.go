// Package record persists best score/distance high-water marks.
package record

import (
	"fmt"
	"log"
	"strconv"

	"github.com/quasilyte/gdata/v2"
)

const recordsObject = "records"

// Store reads and writes integer records through a gdata manager. The manager
// may be nil, in which case the store degrades to memory-only: reads return
// what was written this session and nothing survives the process.
type Store struct {
	m     *gdata.Manager
	cache map[string]int
}

// Open creates a store backed by the platform data directory for appName.
// Failure to open the backing storage is not fatal; the game just won't
// remember records across runs.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("record: open storage: %v (records won't persist)", err)
		m = nil
	}
	return &Store{m: m, cache: make(map[string]int)}
}

// NewMemory returns a store with no backing storage. Used in tests.
func NewMemory() *Store {
	return &Store{cache: make(map[string]int)}
}

// Best returns the stored record for key, or 0 when absent or unreadable.
func (s *Store) Best(key string) int {
	if v, ok := s.cache[key]; ok {
		return v
	}
	if s.m == nil || !s.m.ObjectPropExists(recordsObject, key) {
		return 0
	}
	data, err := s.m.LoadObjectProp(recordsObject, key)
	if err != nil {
		log.Printf("record: load %s: %v", key, err)
		return 0
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		log.Printf("record: corrupt value for %s: %v", key, err)
		return 0
	}
	s.cache[key] = v
	return v
}

// SetBest stores a new record for key.
func (s *Store) SetBest(key string, v int) error {
	s.cache[key] = v
	if s.m == nil {
		return nil
	}
	if err := s.m.SaveObjectProp(recordsObject, key, []byte(strconv.Itoa(v))); err != nil {
		return fmt.Errorf("record: save %s: %w", key, err)
	}
	return nil
}
