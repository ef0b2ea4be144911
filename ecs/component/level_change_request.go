package component

// LevelChangeRequest is a one-shot request emitted by gameplay systems (the
// screen fade) to ask the outer game loop to swap the current map.
//
// This keeps systems independent: systems only emit data; the Game loop owns
// IO/world reinitialization.
type LevelChangeRequest struct {
	Door Door
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
