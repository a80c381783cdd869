package common

// Base logical screen size shared by the window setup and the UI.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
