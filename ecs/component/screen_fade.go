package component

type FadePayloadKind int

const (
	FadeEnterCombat FadePayloadKind = iota
	FadeExitDoor
)

// FadePayload is what a fade emits once the screen is fully black.
type FadePayload struct {
	Kind FadePayloadKind
	Door Door // FadeExitDoor only
}

// ScreenFade holds the state of one running fade. Alpha ramps 0 -> 1 over the
// first half of Duration and back to 0 over the second half.
type ScreenFade struct {
	Alpha    float64
	Elapsed  float64
	Duration float64
	Sent     bool
	Payload  FadePayload
}

var ScreenFadeComponent = NewComponent[ScreenFade]()
