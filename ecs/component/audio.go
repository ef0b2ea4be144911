package component

// AudioRequest is a one-shot request to play a named clip.
type AudioRequest struct {
	Clip string
}

var AudioRequestComponent = NewComponent[AudioRequest]()
