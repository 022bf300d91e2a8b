package world

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hollowdeep/internal/telemetry"
)

const (
	// MaxRoomAttempts bounds how many candidate rooms generation samples.
	MaxRoomAttempts = 30
	// Room dimensions, inclusive.
	RoomMinSize = 6
	RoomMaxSize = 10
)

// ErrNoRooms is returned when every candidate room was rejected. Callers
// must retry with fresh randomness or abort; a dungeon without rooms has no
// defined player start or stairs position.
var ErrNoRooms = errors.New("world: generation accepted no rooms")

// Generate builds a dungeon layout: up to MaxRoomAttempts randomly sized and
// placed rooms, each rejected if it intersects an accepted room, each carved
// and connected to the previously accepted room by an L-shaped corridor.
//
// The returned rooms are in acceptance order. The first room's center is the
// player start; the last room's center is where the stairs belong. Monster
// and item placement is the caller's concern so the grid stays free of
// entity knowledge.
func Generate(ctx context.Context, width, height int, rng *rand.Rand) (*Map, []Rect, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	m := NewMap(width, height)
	var rooms []Rect

	for i := 0; i < MaxRoomAttempts; i++ {
		w := RoomMinSize + rng.Intn(RoomMaxSize-RoomMinSize+1)
		h := RoomMinSize + rng.Intn(RoomMaxSize-RoomMinSize+1)
		if w >= width || h >= height {
			continue
		}
		x := rng.Intn(width - w)
		y := rng.Intn(height - h)

		room := NewRect(x, y, w, h)

		rejected := false
		for _, other := range rooms {
			if room.Intersects(other) {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}

		m.carveRoom(room)

		if len(rooms) > 0 {
			prev := rooms[len(rooms)-1].Center()
			cur := room.Center()
			if rng.Intn(2) == 0 {
				m.carveHorizontalTunnel(prev.X, cur.X, prev.Y)
				m.carveVerticalTunnel(prev.Y, cur.Y, cur.X)
			} else {
				m.carveVerticalTunnel(prev.Y, cur.Y, prev.X)
				m.carveHorizontalTunnel(prev.X, cur.X, cur.Y)
			}
		}

		rooms = append(rooms, room)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int64("dungeon.generation_us", time.Since(startTime).Microseconds()),
	)

	if len(rooms) == 0 {
		return nil, nil, ErrNoRooms
	}
	return m, rooms, nil
}

// carveRoom floors the room interior, leaving a one-tile wall margin on the
// rectangle's own edges.
func (m *Map) carveRoom(room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			m.carveFloor(x, y)
		}
	}
}

// carveHorizontalTunnel floors the inclusive range between x1 and x2 at row y.
func (m *Map) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.carveFloor(x, y)
	}
}

// carveVerticalTunnel floors the inclusive range between y1 and y2 at column x.
func (m *Map) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.carveFloor(x, y)
	}
}
