package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/mazewalker/common"
	"github.com/milk9111/mazewalker/enemy"
	"github.com/milk9111/mazewalker/levels"
	"github.com/milk9111/mazewalker/maze"
	"github.com/milk9111/mazewalker/nav"
	"github.com/milk9111/mazewalker/obj"
)

type gameState int

const (
	statePlaying gameState = iota
	stateWon
	stateLost
)

// stepEvery is how many frames pass between simulation ticks. Each tick
// moves walking agents exactly one tile.
const stepEvery = 8

// enemyStepEvery is the enemy's tick cadence; slower than the player so
// a clean route always escapes.
const enemyStepEvery = 10

type Game struct {
	debug     bool
	levelPath string // non-empty when the level was loaded from disk

	frames int
	state  gameState

	maze      *maze.Map
	player    *obj.Player
	navigator *nav.Navigator
	chaser    *enemy.Enemy
	brain     *enemy.Brain

	camera *obj.Camera
	input  *obj.Input

	paused  bool
	pauseUI *ebitenui.UI
	watcher *levels.Watcher

	face ebtext.Face

	wallImg  *ebiten.Image
	floorImg *ebiten.Image
	exitImg  *ebiten.Image
	pathImg  *ebiten.Image
	enemyImg *ebiten.Image
}

// NewGame loads the named level and assembles the game world. levelName
// is an embedded level name, or a path to a YAML file on disk; disk
// levels are watched for changes in debug mode.
func NewGame(levelName string, debug bool) (*Game, error) {
	g := &Game{debug: debug}

	spec, err := resolveLevel(levelName)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(levelName); statErr == nil {
		g.levelPath = levelName
	}

	brain, err := enemy.NewBrain()
	if err != nil {
		return nil, err
	}
	g.brain = brain

	g.camera = obj.NewCamera(common.BaseWidth, common.BaseHeight, 1)
	g.input = obj.NewInput(g.camera)
	g.pauseUI = NewPauseUI(g)
	g.face = ebtext.NewGoXFace(basicfont.Face7x13)

	if err := g.loadLevel(spec); err != nil {
		return nil, err
	}

	if g.debug && g.levelPath != "" {
		w, err := levels.NewWatcher(g.levelPath)
		if err != nil {
			log.Printf("level watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func resolveLevel(name string) (*levels.Spec, error) {
	if _, err := os.Stat(name); err == nil {
		return levels.LoadFile(name)
	}
	return levels.Load(name)
}

// loadLevel (re)builds all level-dependent state. Also used by the
// reset key and the debug file watcher.
func (g *Game) loadLevel(spec *levels.Spec) error {
	m, err := maze.FromSpec(spec)
	if err != nil {
		return err
	}
	g.maze = m

	px, py := m.WorldAt(m.Spawn)
	g.player = obj.NewPlayer(px, py, m.TileSize*3/4)
	g.navigator = nav.NewNavigator(m, g.player)

	g.chaser = nil
	if m.HasEnemy {
		ex, ey := m.WorldAt(m.EnemySpawn)
		g.chaser = enemy.New(g.brain, ex, ey)
	}

	worldW, worldH := m.PixelSize()
	g.camera.SetWorldBounds(worldW, worldH)
	g.camera.CenterOn(float64(worldW)/2.0, float64(worldH)/2.0)

	g.buildTileImages(m.TileSize)
	g.state = statePlaying
	g.frames = 0
	return nil
}

func (g *Game) buildTileImages(tileSize int) {
	g.wallImg = ebiten.NewImage(tileSize, tileSize)
	g.wallImg.Fill(colornames.Midnightblue)
	g.floorImg = ebiten.NewImage(tileSize, tileSize)
	g.floorImg.Fill(colornames.Lightslategray)
	g.exitImg = ebiten.NewImage(tileSize, tileSize)
	g.exitImg.Fill(colornames.Mediumseagreen)
	g.pathImg = ebiten.NewImage(tileSize/4, tileSize/4)
	g.pathImg.Fill(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x90})
	g.enemyImg = ebiten.NewImage(tileSize*3/4, tileSize*3/4)
	g.enemyImg.Fill(colornames.Crimson)
}

func (g *Game) Update() error {
	if g.paused {
		g.pauseUI.Update()
		g.input.Update()
		if g.input.PausePressed {
			g.paused = false
		}
		return nil
	}

	g.frames++
	g.input.Update()
	g.pollWatcher()

	if g.input.PausePressed {
		g.paused = true
		return nil
	}
	if g.input.ResetPressed {
		g.reload()
		return nil
	}

	g.camera.Pan(g.input.PanX, g.input.PanY)

	if g.state != statePlaying {
		return nil
	}

	if g.input.MouseLeftPressed {
		g.navigator.HandleClick(nav.ClickEvent{
			X:      g.input.MouseWorldX,
			Y:      g.input.MouseWorldY,
			Button: nav.ButtonLeft,
		})
	}

	if g.frames%stepEvery == 0 {
		g.navigator.Tick()
		if g.maze.HasExit && g.maze.TileAt(g.player.X, g.player.Y) == g.maze.Exit {
			g.state = stateWon
		}
	}

	if g.chaser != nil && g.frames%enemyStepEvery == 0 {
		g.chaser.Tick(g.maze, g.player.X, g.player.Y)
		if g.maze.TileAt(g.chaser.X, g.chaser.Y) == g.maze.TileAt(g.player.X, g.player.Y) {
			g.state = stateLost
			g.player.Tint(colornames.Darkred)
			g.navigator.Cancel()
		}
	}

	return nil
}

// pollWatcher drains pending level-file events without blocking the
// tick.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("level changed: %s", path)
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("level watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload() {
	var (
		spec *levels.Spec
		err  error
	)
	if g.levelPath != "" {
		spec, err = levels.LoadFile(g.levelPath)
	} else {
		spec, err = levels.Load(g.maze.Name)
	}
	if err != nil {
		log.Printf("reload level: %v", err)
		return
	}
	if err := g.loadLevel(spec); err != nil {
		log.Printf("reload level: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Coral)

	camX, camY := g.camera.ViewTopLeft()
	zoom := g.camera.Zoom()
	ts := float64(g.maze.TileSize)

	for y := 0; y < g.maze.Height; y++ {
		for x := 0; x < g.maze.Width; x++ {
			t := maze.Tile{X: x, Y: y}
			img := g.wallImg
			if g.maze.IsTilePassable(t) {
				img = g.floorImg
				if g.maze.HasExit && t == g.maze.Exit {
					img = g.exitImg
				}
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(t.X)*ts-camX, float64(t.Y)*ts-camY)
			op.GeoM.Scale(zoom, zoom)
			screen.DrawImage(img, op)
		}
	}

	if g.debug {
		g.drawPendingPath(screen, camX, camY, zoom)
	}

	if g.chaser != nil {
		op := &ebiten.DrawImageOptions{}
		half := ts * 3 / 8
		op.GeoM.Translate(g.chaser.X-half-camX, g.chaser.Y-half-camY)
		op.GeoM.Scale(zoom, zoom)
		screen.DrawImage(g.enemyImg, op)
	}

	g.player.Draw(screen, camX, camY, zoom)
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) drawPendingPath(screen *ebiten.Image, camX, camY, zoom float64) {
	ts := float64(g.maze.TileSize)
	for _, t := range g.navigator.Pending() {
		wx, wy := g.maze.WorldAt(t)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(wx-ts/8-camX, wy-ts/8-camY)
		op.GeoM.Scale(zoom, zoom)
		screen.DrawImage(g.pathImg, op)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	label := fmt.Sprintf("%s: click a floor tile to walk", g.maze.Name)
	switch g.state {
	case stateWon:
		label = "You made it out! Press R to play again"
	case stateLost:
		label = "Caught! Press R to try again"
	default:
		if g.chaser != nil && g.chaser.State() == enemy.StateChase {
			label = fmt.Sprintf("%s: it has seen you, run!", g.maze.Name)
		}
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 30)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, label, g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
