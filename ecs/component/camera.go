package component

type Camera struct {
	Zoom   float64
	Follow bool
}

var CameraComponent = NewComponent[Camera]()
