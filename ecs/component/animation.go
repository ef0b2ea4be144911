package component

// AnimatedSprite cycles the glyph of a Sprite through the frames of the
// current facing while the owner is moving.
type AnimatedSprite struct {
	Frames       map[Facing][]int
	Frame        int
	Timer        float64
	FrameSeconds float64
}

var AnimatedSpriteComponent = NewComponent[AnimatedSprite]()
