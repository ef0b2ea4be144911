package component

// GameMode is the top-level state gating which systems run.
type GameMode int

const (
	ModeOverworld GameMode = iota
	ModeCombat
)

func (m GameMode) String() string {
	switch m {
	case ModeOverworld:
		return "overworld"
	case ModeCombat:
		return "combat"
	default:
		return "unknown"
	}
}

// ModeChangeRequest asks the game loop to switch modes at the end of the
// tick. Only the latest request of a tick is honored.
type ModeChangeRequest struct {
	Mode GameMode
}

var ModeChangeRequestComponent = NewComponent[ModeChangeRequest]()
