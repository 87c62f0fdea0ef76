package component

// Wall is a static segment of the arena in the horizontal plane.
type Wall struct {
	AX, AY    float64
	BX, BY    float64
	Thickness float64
}

var WallComponent = NewComponent[Wall]()
