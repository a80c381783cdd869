package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// Player is the click-driven agent. X/Y is its world position in
// pixels (tile center); the navigation follower is the only thing that
// moves it.
type Player struct {
	X float64
	Y float64

	size int
	img  *ebiten.Image
}

// NewPlayer places the player at the given world position. size is the
// drawn square's edge in pixels, normally a bit under the tile size.
func NewPlayer(x, y float64, size int) *Player {
	img := ebiten.NewImage(size, size)
	img.Fill(colornames.Gold)
	return &Player{X: x, Y: y, size: size, img: img}
}

// Position implements nav.Agent.
func (p *Player) Position() (float64, float64) {
	return p.X, p.Y
}

// MoveTo implements nav.Agent.
func (p *Player) MoveTo(x, y float64) {
	p.X, p.Y = x, y
}

// Draw renders the player centered on its world position, offset by the
// camera's view top-left.
func (p *Player) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	op := &ebiten.DrawImageOptions{}
	half := float64(p.size) / 2.0
	op.GeoM.Translate(p.X-half-camX, p.Y-half-camY)
	op.GeoM.Scale(zoom, zoom)
	screen.DrawImage(p.img, op)
}

// Tint recolors the player square, used for the caught flash.
func (p *Player) Tint(c color.Color) {
	p.img.Fill(c)
}
