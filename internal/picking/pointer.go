package picking

// Pointer is a pointer position normalized to [-1, 1] on both axes, +Y up.
// The zero value is the screen center.
type Pointer struct {
	X, Y float32
}

// PointerFromScreen converts window pixel coordinates into a normalized pointer.
// Positions outside the window are clamped to its edge.
func PointerFromScreen(px, py float32, width, height int) Pointer {
	if width <= 0 || height <= 0 {
		return Pointer{}
	}
	return Pointer{
		X: clamp(px/float32(width)*2-1, -1, 1),
		Y: clamp(-(py/float32(height))*2+1, -1, 1),
	}
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
