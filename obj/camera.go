package obj

import (
	"math"

	"github.com/milk9111/mazewalker/common"
)

// Camera maps between screen and world coordinates and supports
// gamepad-driven panning, clamped to the world bounds.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and
// initial zoom, centered on the screen-sized region at the origin.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom}
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetWorldBounds sets the world pixel dimensions for clamping.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// CenterOn places the camera center at the given world coordinate,
// snapped to the pixel grid and clamped to world bounds.
func (c *Camera) CenterOn(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.settle()
}

// Pan shifts the camera center by the given world-space delta. Used for
// gamepad-axis panning each tick.
func (c *Camera) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c.PosX += dx
	c.PosY += dy
	c.settle()
}

func (c *Camera) settle() {
	// snap to 1/zoom grid so source texels land on integer screen pixels
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}

	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	if c.worldW > 0 {
		if c.worldW < viewW {
			c.PosX = c.worldW / 2.0
		} else {
			c.PosX = common.Clamp(c.PosX, viewW/2.0, c.worldW-viewW/2.0)
		}
	}
	if c.worldH > 0 {
		if c.worldH < viewH {
			c.PosY = c.worldH / 2.0
		} else {
			c.PosY = common.Clamp(c.PosY, viewH/2.0, c.worldH-viewH/2.0)
		}
	}
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// ScreenToWorld converts a screen pixel position to world space. The
// game uses it to turn cursor presses into world-space click events.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	vx, vy := c.ViewTopLeft()
	return vx + float64(sx)/c.zoom, vy + float64(sy)/c.zoom
}
