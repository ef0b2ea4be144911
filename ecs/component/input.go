package component

// Input stores per-frame input state. Held fields are true while a key is
// down; Pressed fields only on the frame the key went down.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	LeftPressed  bool
	RightPressed bool
	UpPressed    bool
	DownPressed  bool

	Confirm bool
	Pause   bool
	Debug   bool
	Copy    bool
}

var InputComponent = NewComponent[Input]()
