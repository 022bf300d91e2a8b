// Package persist saves and loads the game to a JSON file.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/game"
)

// DefaultPath is the well-known save file name.
const DefaultPath = "savegame.json"

// ErrNoSavedGame is returned by Load when no usable save exists. It covers
// both a missing file and a corrupt one: either way there is nothing to
// continue, and the caller offers a new game instead of failing.
var ErrNoSavedGame = errors.New("persist: no saved game")

// SaveGame is the single serialized unit: the live entity list, the player
// handle into it, and the game state aggregate.
type SaveGame struct {
	PlayerID uuid.UUID        `json:"playerId"`
	Entities []*entity.Entity `json:"entities"`
	Game     *game.State      `json:"game"`
}

// Save writes the save file, replacing any previous one. The write goes
// through a temp file and rename so a failed save never truncates an
// existing good save.
func Save(path string, sg *SaveGame) error {
	data, err := json.MarshalIndent(sg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing save file: %w", err)
	}
	return nil
}

// Load reads the save file. A missing or corrupt file yields ErrNoSavedGame
// (wrapped with detail), which the caller treats as "no saved game", never
// as a crash.
func Load(path string) (*SaveGame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSavedGame, path)
		}
		return nil, fmt.Errorf("reading save file: %w", err)
	}

	var sg SaveGame
	if err := json.Unmarshal(data, &sg); err != nil {
		return nil, fmt.Errorf("%w: corrupt save file: %v", ErrNoSavedGame, err)
	}
	if sg.Game == nil || len(sg.Entities) == 0 {
		return nil, fmt.Errorf("%w: save file incomplete", ErrNoSavedGame)
	}
	return &sg, nil
}
