package persist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/game"
	"github.com/samdwyer/hollowdeep/internal/world"
)

func sampleSave() *SaveGame {
	player := entity.New(5, 7, '@', "Player", "#FFFFFF", true)
	player.Alive = true
	player.Level = 2
	player.Fighter = entity.NewFighter(120, 2, 3, 180, entity.DeathPlayer)

	orc := entity.New(9, 7, 'o', "Orc", "#3F7F3F", true)
	orc.Alive = true
	orc.Fighter = entity.NewFighter(20, 0, 4, 35, entity.DeathMonster)
	orc.AI = entity.BasicAI()

	m := world.NewMap(12, 12)
	*m.At(5, 7) = world.FloorTile()
	m.MarkExplored(5, 7)

	kind := entity.ItemKind("healing_potion")
	potion := entity.New(0, 0, '!', "Healing Potion", "#7F00FF", false)
	potion.Item = &kind

	log := game.NewMessageLog()
	log.Add("Welcome stranger!", "#FF0000")

	return &SaveGame{
		PlayerID: player.ID,
		Entities: []*entity.Entity{player, orc},
		Game: &game.State{
			Map:          m,
			Log:          log,
			Inventory:    []*entity.Entity{potion},
			DungeonLevel: 3,
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	saved := sampleSave()

	require.NoError(t, Save(path, saved))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, saved.PlayerID, loaded.PlayerID)
	require.Len(t, loaded.Entities, 2)

	player := loaded.Entities[0]
	assert.Equal(t, 5, player.X)
	assert.Equal(t, 7, player.Y)
	assert.Equal(t, '@', player.Glyph)
	assert.Equal(t, 2, player.Level)
	require.NotNil(t, player.Fighter)
	assert.Equal(t, 120, player.Fighter.BaseMaxHP)
	assert.Equal(t, 180, player.Fighter.XP)
	assert.Equal(t, entity.DeathPlayer, player.Fighter.Death)

	orc := loaded.Entities[1]
	require.NotNil(t, orc.AI)
	assert.Equal(t, entity.AIBasic, orc.AI.Kind)

	assert.Equal(t, 3, loaded.Game.DungeonLevel)
	assert.True(t, loaded.Game.Map.At(5, 7).Explored)
	assert.False(t, loaded.Game.Map.At(5, 7).Blocked)
	assert.True(t, loaded.Game.Map.At(0, 0).Blocked)
	require.Len(t, loaded.Game.Inventory, 1)
	require.NotNil(t, loaded.Game.Inventory[0].Item)
	assert.Equal(t, entity.ItemKind("healing_potion"), *loaded.Game.Inventory[0].Item)
	require.Equal(t, 1, loaded.Game.Log.Len())
	assert.Equal(t, "Welcome stranger!", loaded.Game.Log.Messages[0].Text)
}

func TestSaveReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	first := sampleSave()
	require.NoError(t, Save(path, first))

	second := sampleSave()
	second.Game.DungeonLevel = 9
	require.NoError(t, Save(path, second))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.Game.DungeonLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrNoSavedGame)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoSavedGame)
}

func TestLoadIncompleteSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoSavedGame)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
