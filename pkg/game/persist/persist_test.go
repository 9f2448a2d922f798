package persist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/config"
	"spacemerc/pkg/game/state"
)

func samplePlayer() state.Player {
	p := state.NewPlayer()
	p.Position = world.Pt(3, 11)
	p.Direction = world.West
	p.Stats[state.Armor] = 25
	p.Stats[state.CurrentHP] = 17
	p.Money = 123_456
	p.DamageVibes = true
	return p
}

func sampleMission() *state.Mission {
	m := state.NewMission(state.Assassinate)
	m.Location = state.Spaceport
	m.PrimaryNPC = state.Beast
	m.Grid.Fill(world.CellEmpty)
	m.Grid.SetCellType(world.Pt(4, 4), world.DefaultCellDurability)
	m.Grid.SetCellType(world.Pt(9, 2), 13)
	m.Entrance = world.Pt(0, 7)
	m.EntranceDirection = world.West
	m.Objective = world.Pt(12, 3)
	m.Quota = 15
	m.Kills = 4
	m.Reward = 6000
	m.NPCs[1] = state.NPC{Position: world.Pt(5, 5), Kind: state.AlienOfficer, Power: 12, HP: 60}
	return m
}

func TestPlayerRoundTrip(t *testing.T) {
	p := samplePlayer()
	data := EncodePlayer(&p)
	require.Len(t, data, PlayerBlobSize)
	assert.Equal(t, 23, PlayerBlobSize)

	got, err := DecodePlayer(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPlayerLayoutIsLittleEndian(t *testing.T) {
	p := samplePlayer()
	data := EncodePlayer(&p)
	assert.Equal(t, []byte{3, 0, 11, 0}, data[:4])
	assert.Equal(t, byte(1), data[len(data)-1])
}

func TestMissionRoundTrip(t *testing.T) {
	m := sampleMission()
	data := EncodeMission(m)
	require.Len(t, data, MissionBlobSize)

	got, err := DecodeMission(data)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestDecodeRejectsBadBlobs(t *testing.T) {
	_, err := DecodePlayer([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrShortBlob)

	_, err = DecodeMission(nil)
	assert.ErrorIs(t, err, ErrShortBlob)

	p := samplePlayer()
	data := EncodePlayer(&p)
	data[4] = 9 // direction
	_, err = DecodePlayer(data)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestMissionRoundTripAtQuotaLimit(t *testing.T) {
	m := sampleMission()
	m.Quota = config.MaxQuota
	m.Kills = config.MaxQuota + state.MaxNPCs - 1
	m.Reward = state.MaxMoney

	got, err := DecodeMission(EncodeMission(m))
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestDecodeRejectsOutOfRangeValues(t *testing.T) {
	t.Run("money past the cap", func(t *testing.T) {
		p := samplePlayer()
		p.Money = state.MaxMoney + 1
		_, err := DecodePlayer(EncodePlayer(&p))
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	tests := []struct {
		name    string
		corrupt func(m *state.Mission)
	}{
		{"cell below human", func(m *state.Mission) { m.Grid.SetCellType(world.Pt(2, 2), world.CellHuman-1) }},
		{"primary npc kind", func(m *state.Mission) { m.PrimaryNPC = state.NPCKind(state.NumNPCKinds) }},
		{"primary npc none", func(m *state.Mission) { m.PrimaryNPC = state.NPCNone }},
		{"negative reward", func(m *state.Mission) { m.Reward = -1 }},
		{"reward past the cap", func(m *state.Mission) { m.Reward = state.MaxMoney + 1 }},
		{"negative quota", func(m *state.Mission) { m.Quota = -1 }},
		{"negative kills", func(m *state.Mission) { m.Kills = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sampleMission()
			tt.corrupt(m)
			_, err := DecodeMission(EncodeMission(m))
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return map[string]Store{
		"file":   fileStore,
		"memory": NewMemoryStore(),
	}
}

func TestStores(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.LoadPlayer()
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = store.LoadMission()
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.SavePlayer([]byte("player")))
			require.NoError(t, store.SaveMission([]byte("mission")))

			data, err := store.LoadPlayer()
			require.NoError(t, err)
			assert.Equal(t, []byte("player"), data)

			require.NoError(t, store.ClearMission())
			require.NoError(t, store.ClearMission())
			_, err = store.LoadMission()
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func newSession(t *testing.T) *state.Session {
	t.Helper()
	return state.NewSession(config.Default(), rand.New(rand.NewSource(1)), zaptest.NewLogger(t))
}

func TestSaverRestore(t *testing.T) {
	store := NewMemoryStore()
	saver := Saver{Store: store}

	s := newSession(t)
	assert.True(t, saver.Restore(s), "empty store is a first run")
	assert.Equal(t, state.NewPlayer(), s.Player)

	s.Player = samplePlayer()
	s.Mission = sampleMission()
	require.NoError(t, saver.Persist(s))

	restored := newSession(t)
	assert.False(t, saver.Restore(restored))
	assert.Equal(t, s.Player, restored.Player)
	assert.Equal(t, s.Mission, restored.Mission)

	s.Mission = nil
	require.NoError(t, saver.Persist(s))
	_, err := store.LoadMission()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaverRestoreDiscardsCorruptMission(t *testing.T) {
	store := NewMemoryStore()
	p := samplePlayer()
	require.NoError(t, store.SavePlayer(EncodePlayer(&p)))
	require.NoError(t, store.SaveMission([]byte("garbage")))

	s := newSession(t)
	assert.False(t, Saver{Store: store}.Restore(s))
	assert.Nil(t, s.Mission)
	assert.Equal(t, p, s.Player)
}
