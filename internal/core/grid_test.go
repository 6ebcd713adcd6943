package core

import "testing"

func TestByteGridAccess(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(2, 1, 7)
	if got := g.At(2, 1); got != 7 {
		t.Fatalf("At(2,1) = %d, want 7", got)
	}
	if got := g.Cells()[g.Index(2, 1)]; got != 7 {
		t.Fatalf("Cells()[Index(2,1)] = %d, want 7", got)
	}
	if g.Count(7) != 1 || g.Count(0) != 11 {
		t.Fatalf("Count mismatch: %d sevens, %d zeros", g.Count(7), g.Count(0))
	}
}

func TestByteGridInBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false},
		{0, 3, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.x, tc.y); got != tc.want {
			t.Fatalf("InBounds(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestByteGridCloneIndependent(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Fill(3)
	c := g.Clone()
	c.Set(0, 0, 9)
	if g.At(0, 0) != 3 {
		t.Fatalf("clone write leaked into original")
	}
	if c.At(1, 1) != 3 {
		t.Fatalf("clone did not copy values")
	}
}

func TestFloatGridAccess(t *testing.T) {
	g := NewFloatGrid(3, 3)
	g.Set(1, 2, 0.5)
	if got := g.At(1, 2); got != 0.5 {
		t.Fatalf("At(1,2) = %v, want 0.5", got)
	}
	c := g.Clone()
	c.Set(1, 2, 0.25)
	if g.At(1, 2) != 0.5 {
		t.Fatalf("clone write leaked into original")
	}
}

func TestGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("got %dx%d, want 1x1", g.W, g.H)
	}
}
