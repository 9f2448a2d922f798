package state

// EventKind identifies a lifecycle transition the frontends narrate.
type EventKind int

const (
	EventMissionStarted EventKind = iota
	EventMissionConcluded
	EventPlayerDied
)

func (k EventKind) String() string {
	switch k {
	case EventMissionStarted:
		return "MissionStarted"
	case EventMissionConcluded:
		return "MissionConcluded"
	case EventPlayerDied:
		return "PlayerDied"
	default:
		return "Unknown"
	}
}

// Event is queued on the session by the core and drained by its host.
type Event struct {
	Kind    EventKind
	Mission MissionSummary
}

// Emit queues an event.
func (s *Session) Emit(kind EventKind, summary MissionSummary) {
	s.events = append(s.events, Event{Kind: kind, Mission: summary})
}

// DrainEvents returns and clears the queued events, oldest first.
func (s *Session) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}
