package component

// Transform is a world-space position. X and Y locate the center of the
// entity with y pointing up; Z orders drawing (higher is drawn later). Child
// transforms are relative to their parent.
type Transform struct {
	X      float64
	Y      float64
	Z      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
