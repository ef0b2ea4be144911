package component

type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// Player holds the overworld movement state. Active is false while a screen
// fade runs; JustMoved is set only on frames where a move was committed.
type Player struct {
	Speed      float64 // tiles per second
	HitboxSize float64 // fraction of a tile
	Facing     Facing
	Active     bool
	JustMoved  bool
}

var PlayerComponent = NewComponent[Player]()
