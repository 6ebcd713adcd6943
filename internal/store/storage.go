// Package store persists generated maps by name, either as JSON files in a
// directory or as rows in PostgreSQL.
package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"terramap/internal/terrain"
)

// Store is the persistence interface shared by the file and database
// backends.
type Store interface {
	Save(m *SavedMap) error
	Load(name string) (*SavedMap, error)
	List() ([]string, error)
	Close() error
}

// SavedMap is the serialized form of a generated map. The configuration is
// kept in full so the map can be regenerated and checked against its
// fingerprint.
type SavedMap struct {
	Name        string            `json:"name"`
	Config      terrain.Config    `json:"config"`
	Fingerprint string            `json:"fingerprint"`
	SavedAt     time.Time         `json:"saved_at"`
	Elevation   []float64         `json:"elevation"`
	Layers      map[string][]byte `json:"layers"`
	Rivers      []RiverPath       `json:"rivers"`
	Cities      []Point           `json:"cities"`
	Warnings    []string          `json:"warnings"`
}

// Point is one map cell position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RiverPath is one traced river: its id and ordered course.
type RiverPath struct {
	ID   int     `json:"id"`
	Path []Point `json:"path"`
}

// Snapshot converts a generated terrain into its saved form.
func Snapshot(t *terrain.Terrain, name string) *SavedMap {
	m := &SavedMap{
		Name:        name,
		Config:      t.Config(),
		Fingerprint: strconv.FormatUint(t.Fingerprint(), 16),
		SavedAt:     time.Now().UTC(),
		Elevation:   append([]float64(nil), t.Heightmap().Cells()...),
		Layers:      make(map[string][]byte, 5),
	}
	for _, l := range t.Layers() {
		cells := l.Category.Cells()
		m.Layers[l.Kind.String()] = append([]byte(nil), cells...)
	}
	for _, r := range t.Rivers() {
		rp := RiverPath{ID: int(r.ID), Path: make([]Point, len(r.Path))}
		for i, pt := range r.Path {
			rp.Path[i] = Point{X: pt.X, Y: pt.Y}
		}
		m.Rivers = append(m.Rivers, rp)
	}
	for _, c := range t.Cities() {
		m.Cities = append(m.Cities, Point{X: c.X, Y: c.Y})
	}
	for _, w := range t.Warnings() {
		m.Warnings = append(m.Warnings, w.Error())
	}
	return m
}

// Verify regenerates the map from its saved configuration and reports
// whether the fingerprints still match.
func (m *SavedMap) Verify() error {
	t, err := terrain.GenerateWithConfig(m.Config)
	if err != nil {
		return err
	}
	if got := strconv.FormatUint(t.Fingerprint(), 16); got != m.Fingerprint {
		return fmt.Errorf("map %q: fingerprint %s does not match regeneration %s", m.Name, m.Fingerprint, got)
	}
	return nil
}

// validName rejects names that would escape the store's namespace.
func validName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid map name %q", name)
	}
	return nil
}
