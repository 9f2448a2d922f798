// Package narration builds the text pages shown between missions: briefings,
// summaries, help and the first-run intro. Every string goes through gotext so
// a locale catalogue can replace the English msgids.
package narration

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	"spacemerc/pkg/engine/input"
	"spacemerc/pkg/game/state"
)

// Kind identifies a narration page.
type Kind int

const (
	KindBriefing Kind = iota
	KindDeath
	KindAccomplished
	KindFailed
	KindControls
	KindAbout
	KindIntro
)

// Page is one screen of narration. Text may carry MONEY{}, PLACE{}, FOE{} and
// KEY{} markup.
type Page struct {
	Kind Kind
	Text string
}

// ForEvent returns the page narrating a lifecycle event.
func ForEvent(ev state.Event) Page {
	switch ev.Kind {
	case state.EventMissionStarted:
		return Page{Kind: KindBriefing, Text: Briefing(ev.Mission)}
	case state.EventPlayerDied:
		return Page{Kind: KindDeath, Text: Death()}
	default:
		kind := KindFailed
		if ev.Mission.Completed {
			kind = KindAccomplished
		}
		return Page{Kind: kind, Text: Conclusion(ev.Mission)}
	}
}

// Briefing describes a mission's objective, location and reward.
func Briefing(m state.MissionSummary) string {
	switch m.Kind {
	case state.Retaliate:
		return gotext.Get("One of our PLACE{%s} has been overrun by FOE{%s}: kill all %d for MONEY{$%d}",
			LocationName(m.Location, true), FoeName(m.PrimaryNPC, true), m.Quota, m.Reward)
	case state.Obliterate:
		return gotext.Get("Eliminate all %d Fim from this PLACE{%s} for MONEY{$%d}",
			m.Quota, LocationName(m.Location, false), m.Reward)
	case state.Expropriate:
		return gotext.Get("Steal a data storage device from this Fim PLACE{%s} for MONEY{$%d}",
			LocationName(m.Location, false), m.Reward)
	case state.Extricate:
		return gotext.Get("Rescue one of our officers from this Fim PLACE{prison} to receive MONEY{$%d}",
			m.Reward)
	default:
		return gotext.Get("Neutralize the leader of this Fim PLACE{%s} for MONEY{$%d}",
			LocationName(m.Location, false), m.Reward)
	}
}

// Death is shown after the player falls.
func Death() string {
	return gotext.Get("You fell in battle, but your body was found and resuscitated. Soldier on!")
}

// Conclusion summarises a finished mission. Failed missions pay nothing.
func Conclusion(m state.MissionSummary) string {
	title := gotext.Get("Mission Incomplete")
	var reward int32
	if m.Completed {
		title = gotext.Get("Mission Complete")
		reward = m.Reward
	}
	return title + "\n\n" +
		gotext.Get("Kills: %d", m.Kills) + "\n" +
		gotext.Get("Enemies Remaining: %d", m.Remaining()) + "\n" +
		gotext.Get("Reward: MONEY{$%d}", reward)
}

var controlActions = []struct {
	label  string
	action input.Action
}{
	{"Forward", input.ActionUp},
	{"Back", input.ActionDown},
	{"Turn Left", input.ActionLeft},
	{"Turn Right", input.ActionRight},
	{"Shoot", input.ActionSelect},
	{"Menu", input.ActionBack},
}

// Controls lists the key bindings for every gameplay action.
func Controls() string {
	byAction := input.GetBindingsByAction()
	lines := make([]string, 0, len(controlActions))
	for _, c := range controlActions {
		keys := make([]string, 0, len(byAction[c.action]))
		for _, code := range byAction[c.action] {
			if strings.HasPrefix(code, "gamepad_") {
				continue
			}
			keys = append(keys, "KEY{"+code+"}")
		}
		lines = append(lines, gotext.Get(c.label)+": "+strings.Join(keys, " "))
	}
	return strings.Join(lines, "\n")
}

// About credits the game.
func About() string {
	return gotext.Get("SpaceMerc was designed and programmed by David C. Drake:\n\ndavidcdrake.com")
}

// Intro returns the three first-run pages in order.
func Intro() []Page {
	return []Page{
		{Kind: KindIntro, Text: gotext.Get("Humankind is at war with a hostile alien race known as the Fim.")},
		{Kind: KindIntro, Text: gotext.Get("As an elite interstellar mercenary, your skills are in high demand.")},
		{Kind: KindIntro, Text: gotext.Get("Fame and fortune await as you risk life and limb for humanity's future!")},
	}
}

var locationNames = map[state.LocationKind][2]string{
	state.Colony:       {"colony", "colonies"},
	state.City:         {"city", "cities"},
	state.Factory:      {"factory", "factories"},
	state.Laboratory:   {"laboratory", "laboratories"},
	state.Base:         {"base", "bases"},
	state.Mine:         {"mine", "mines"},
	state.Starship:     {"starship", "starships"},
	state.Spaceport:    {"spaceport", "spaceports"},
	state.SpaceStation: {"space station", "space stations"},
}

// LocationName returns the singular or plural name of a location kind.
func LocationName(l state.LocationKind, plural bool) string {
	names, ok := locationNames[l]
	if !ok {
		names = locationNames[state.Colony]
	}
	return gotext.GetN(names[0], names[1], count(plural))
}

// FoeName returns the name used for a mission's primary NPC kind. The aliens
// are always "the Fim".
func FoeName(k state.NPCKind, plural bool) string {
	switch {
	case k.IsAlien():
		return gotext.Get("the Fim")
	case k == state.Robot:
		return gotext.GetN("robot", "robots", count(plural))
	default:
		return gotext.GetN("creature", "creatures", count(plural))
	}
}

var npcNames = map[state.NPCKind]string{
	state.FloatingMonstrosity: "floating monstrosity",
	state.Ooze:                "ooze",
	state.Beast:               "beast",
	state.Robot:               "robot",
	state.AlienSoldier:        "Fim soldier",
	state.AlienElite:          "Fim elite",
	state.AlienOfficer:        "Fim officer",
}

// NPCName names a single NPC of kind k in combat messages.
func NPCName(k state.NPCKind) string {
	name, ok := npcNames[k]
	if !ok {
		name = "creature"
	}
	return gotext.Get(name)
}

func count(plural bool) int {
	if plural {
		return 2
	}
	return 1
}
