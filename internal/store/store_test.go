package store

import (
	"os"
	"slices"
	"strings"
	"testing"

	"terramap/internal/terrain"
)

func testSnapshot(t *testing.T, name string) *SavedMap {
	t.Helper()
	tr, err := terrain.Generate(42, 16)
	if err != nil {
		t.Fatal(err)
	}
	return Snapshot(tr, name)
}

func TestSnapshotShape(t *testing.T) {
	m := testSnapshot(t, "island")
	if m.Config.Seed != 42 || m.Config.Dim != 16 {
		t.Fatalf("config = %+v", m.Config)
	}
	if len(m.Elevation) != 16*16 {
		t.Fatalf("elevation has %d cells", len(m.Elevation))
	}
	if len(m.Layers) != 5 {
		t.Fatalf("want 5 layer grids, got %d", len(m.Layers))
	}
	for _, kind := range []string{"sea", "river", "biome", "city", "road"} {
		if len(m.Layers[kind]) != 16*16 {
			t.Fatalf("%s grid has %d cells", kind, len(m.Layers[kind]))
		}
	}
	if m.Fingerprint == "" {
		t.Fatal("snapshot missing fingerprint")
	}
}

func TestSnapshotVerify(t *testing.T) {
	m := testSnapshot(t, "island")
	if err := m.Verify(); err != nil {
		t.Fatalf("fresh snapshot should verify: %v", err)
	}
	m.Fingerprint = "deadbeef"
	if err := m.Verify(); err == nil {
		t.Fatal("tampered fingerprint should fail verification")
	}
}

func TestDirStoreRoundTrip(t *testing.T) {
	s, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	saved := testSnapshot(t, "island")
	if err := s.Save(saved); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.Load("island")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != saved.Name || loaded.Config != saved.Config {
		t.Fatalf("loaded config = %+v, want %+v", loaded.Config, saved.Config)
	}
	if loaded.Fingerprint != saved.Fingerprint {
		t.Fatal("fingerprint changed across the round trip")
	}
	if !slices.Equal(loaded.Elevation, saved.Elevation) {
		t.Fatal("elevations changed across the round trip")
	}
	for kind, cells := range saved.Layers {
		if !slices.Equal(loaded.Layers[kind], cells) {
			t.Fatalf("%s grid changed across the round trip", kind)
		}
	}
	if err := loaded.Verify(); err != nil {
		t.Fatalf("loaded map should verify: %v", err)
	}
}

func TestDirStoreListAndOverwrite(t *testing.T) {
	s, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b", "a"} {
		if err := s.Save(testSnapshot(t, name)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Save(testSnapshot(t, "a")); err != nil {
		t.Fatalf("overwriting a save should succeed: %v", err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(names, []string{"a", "b"}) {
		t.Fatalf("names = %v, want [a b]", names)
	}
}

func TestDirStoreMissingMap(t *testing.T) {
	s, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load("atlantis"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("missing map error = %v", err)
	}
}

func TestStoreRejectsBadNames(t *testing.T) {
	s, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"", "../escape", "a/b", `a\b`} {
		m := testSnapshot(t, name)
		if err := s.Save(m); err == nil {
			t.Fatalf("name %q should be rejected", name)
		}
		if _, err := s.Load(name); err == nil {
			t.Fatalf("loading name %q should be rejected", name)
		}
	}
}

// TestPostgresStore needs a reachable database; point TERRAMAP_TEST_DSN at
// one to run it.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TERRAMAP_TEST_DSN")
	if dsn == "" {
		t.Skip("TERRAMAP_TEST_DSN not set")
	}
	s, err := NewPostgresStore(dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	saved := testSnapshot(t, "pgtest")
	if err := s.Save(saved); err != nil {
		t.Fatal(err)
	}
	loaded, err := s.Load("pgtest")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Fingerprint != saved.Fingerprint {
		t.Fatal("fingerprint changed across the database round trip")
	}
	names, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(names, "pgtest") {
		t.Fatalf("names = %v, want pgtest present", names)
	}
}
