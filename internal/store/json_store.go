package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// DirStore keeps each saved map as one JSON file in a directory.
type DirStore struct {
	dir   string
	mutex sync.RWMutex
}

// NewDirStore opens a directory store, creating the directory if needed.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %v", err)
	}
	return &DirStore{dir: dir}, nil
}

// Save writes the map to <dir>/<name>.json, replacing any previous save.
func (s *DirStore) Save(m *SavedMap) error {
	if err := validName(m.Name); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal map %q: %v", m.Name, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	return os.WriteFile(s.path(m.Name), data, 0o644)
}

// Load reads the named map back from disk.
func (s *DirStore) Load(name string) (*SavedMap, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	data, err := os.ReadFile(s.path(name))
	s.mutex.RUnlock()
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("map %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read map %q: %v", name, err)
	}

	var m SavedMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal map %q: %v", name, err)
	}
	return &m, nil
}

// List returns the saved map names in sorted order.
func (s *DirStore) List() ([]string, error) {
	s.mutex.RLock()
	entries, err := os.ReadDir(s.dir)
	s.mutex.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory: %v", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op for the directory store.
func (s *DirStore) Close() error { return nil }

func (s *DirStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
