package component

// ScreenSpace marks renderable entities drawn relative to the screen center
// instead of the camera. Units and axes match Transform.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
