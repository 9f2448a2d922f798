// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/state"
)

// npcSymbols are indexed by NPC kind.
var npcSymbols = [state.NumNPCKinds]rune{'m', 'o', 'b', 'r', 's', 'e', 'O'}

// cellSymbol returns the single-character symbol for a cell (no player or
// NPC overlay).
func cellSymbol(m *state.Mission, p world.Point) rune {
	c := m.CellType(p)
	switch {
	case p == m.Entrance:
		return 'E'
	case c == world.CellHuman:
		return 'H'
	case c == world.CellItem:
		return 'i'
	case c == world.CellEmpty:
		return '.'
	case c >= world.DefaultCellDurability:
		return '#'
	default:
		return '+'
	}
}

// writeMapGrid writes the grid row by row with the player as an arrow and
// NPCs as their kind's letter.
func writeMapGrid(b *strings.Builder, s *state.Session) {
	m := s.Mission
	for y := 0; y < world.GridHeight; y++ {
		for x := 0; x < world.GridWidth; x++ {
			p := world.Pt(x, y)
			if p == s.Player.Position {
				b.WriteRune(playerArrow(s.Player.Direction))
				continue
			}
			if slot, ok := m.NPCAt(p); ok {
				b.WriteRune(npcSymbols[m.NPCs[slot].Kind])
				continue
			}
			b.WriteRune(cellSymbol(m, p))
		}
		b.WriteByte('\n')
	}
}

func playerArrow(d world.Direction) rune {
	switch d {
	case world.North:
		return '^'
	case world.South:
		return 'v'
	case world.East:
		return '>'
	default:
		return '<'
	}
}

// MissionDump renders the current mission as a plain-text report: metadata,
// legend, map and NPC slots. Without a mission it says so.
func MissionDump(s *state.Session) string {
	var b strings.Builder
	m := s.Mission
	fmt.Fprintln(&b, "=== MISSION DUMP ===")
	if m == nil {
		fmt.Fprintln(&b, "no mission in progress")
		return b.String()
	}

	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "kind: %s\n", m.Kind)
	fmt.Fprintf(&b, "location: %s\n", m.Location)
	fmt.Fprintf(&b, "primary_npc: %s\n", m.PrimaryNPC)
	fmt.Fprintf(&b, "quota: %d\n", m.Quota)
	fmt.Fprintf(&b, "kills: %d\n", m.Kills)
	fmt.Fprintf(&b, "reward: %d\n", m.Reward)
	fmt.Fprintf(&b, "completed: %v\n", m.Completed)
	fmt.Fprintf(&b, "entrance: %s facing %s\n", m.Entrance, m.EntranceDirection)
	fmt.Fprintf(&b, "objective: %s\n", m.Objective)
	fmt.Fprintf(&b, "player: %s facing %s\n", s.Player.Position, s.Player.Direction)
	fmt.Fprintf(&b, "player_hp: %d/%d\n", s.Player.Stats[state.CurrentHP], s.Player.Stats[state.MaxHP])
	fmt.Fprintf(&b, "player_energy: %d/%d\n", s.Player.Stats[state.CurrentEnergy], s.Player.Stats[state.MaxEnergy])
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Legend ---")
	fmt.Fprintln(&b, ". = empty  # = wall  + = damaged wall  E = entrance  i = item  H = human  ^>v< = player  m o b r s e O = monstrosity ooze beast robot soldier elite officer")
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Map (x right, y down) ---")
	writeMapGrid(&b, s)
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- NPC slots ---")
	for i, n := range m.NPCs {
		if !n.Active() {
			fmt.Fprintf(&b, "  slot: %d empty\n", i)
			continue
		}
		fmt.Fprintf(&b, "  slot: %d kind: %s position: %s hp: %d power: %d\n", i, n.Kind, n.Position, n.HP, n.Power)
	}
	return b.String()
}

// CopyMissionDump puts MissionDump on the system clipboard.
func CopyMissionDump(s *state.Session) error {
	if err := clipboard.WriteAll(MissionDump(s)); err != nil {
		return fmt.Errorf("copying mission dump: %w", err)
	}
	return nil
}
