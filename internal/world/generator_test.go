package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"pgregory.net/rapid"
)

func TestGenerateReproducibility(t *testing.T) {
	seed := int64(12345)
	ctx := context.Background()

	m1, rooms1, err := Generate(ctx, DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	m2, rooms2, err := Generate(ctx, DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(rooms1) != len(rooms2) {
		t.Fatalf("Room count mismatch: %d != %d", len(rooms1), len(rooms2))
	}
	for i := range rooms1 {
		if rooms1[i] != rooms2[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, rooms1[i], rooms2[i])
		}
	}
	for y := 0; y < m1.Height; y++ {
		for x := 0; x < m1.Width; x++ {
			if m1.Tiles[y][x] != m2.Tiles[y][x] {
				t.Errorf("Tile mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	ctx := context.Background()

	_, rooms1, err := Generate(ctx, DefaultWidth, DefaultHeight, rand.New(rand.NewSource(12345)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	_, rooms2, err := Generate(ctx, DefaultWidth, DefaultHeight, rand.New(rand.NewSource(54321)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	identical := len(rooms1) == len(rooms2)
	if identical {
		for i := range rooms1 {
			if rooms1[i] != rooms2[i] {
				identical = false
				break
			}
		}
	}
	if identical {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

// TestGenerateProperties checks the structural invariants of generation over
// many seeds: room interiors fully carved, no two accepted rooms overlapping
// (inclusive-edge rule), and every floor tile reachable from the first
// room's center.
func TestGenerateProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		m, rooms, err := Generate(context.Background(), DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		for i, room := range rooms {
			for y := room.Y1 + 1; y < room.Y2; y++ {
				for x := room.X1 + 1; x < room.X2; x++ {
					if m.IsBlocked(x, y) {
						t.Fatalf("room %d interior blocked at (%d,%d)", i, x, y)
					}
				}
			}
			for j := i + 1; j < len(rooms); j++ {
				if room.Intersects(rooms[j]) {
					t.Fatalf("rooms %d and %d overlap", i, j)
				}
			}
		}

		// Corridors connect successive rooms, so the whole floor must be one
		// connected component containing the player start.
		start := rooms[0].Center()
		reachable := floodFill(m, start)
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if !m.Tiles[y][x].Blocked && !reachable[Point{X: x, Y: y}] {
					t.Fatalf("floor tile (%d,%d) unreachable from start", x, y)
				}
			}
		}
	})
}

func TestGenerateNoRoomFits(t *testing.T) {
	// A grid smaller than the minimum room size can never accept a room.
	_, _, err := Generate(context.Background(), RoomMinSize-1, RoomMinSize-1, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoRooms) {
		t.Fatalf("expected ErrNoRooms, got %v", err)
	}
}

func TestRectIntersectsInclusiveEdges(t *testing.T) {
	a := NewRect(0, 0, 5, 5)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", NewRect(0, 0, 5, 5), true},
		{"touching right edge", NewRect(5, 0, 5, 5), true},
		{"touching corner", NewRect(5, 5, 3, 3), true},
		{"one apart", NewRect(6, 0, 5, 5), false},
		{"fully separate", NewRect(20, 20, 4, 4), false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Intersects(a); got != tt.want {
			t.Errorf("%s (reversed): Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func floodFill(m *Map, start Point) map[Point]bool {
	seen := map[Point]bool{start: true}
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if !seen[n] && !m.IsBlocked(n.X, n.Y) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}
