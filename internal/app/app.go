//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegrid/internal/render"
	"lifegrid/pkg/sims/life"
	"lifegrid/internal/ui"
)

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	tps      int
	paused   bool
	tickOnce bool
	seed     int64
	pattern  string
}

// New constructs a Game for the provided simulation.
func New(sim *life.Life, cfg *Config) *Game {
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Width(), sim.Height()),
		hud:      ui.NewHUD(sim.Width(), sim.Height(), cfg.Scale),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		tps:      cfg.TPS,
		seed:     cfg.Seed,
		pattern:  cfg.Pattern,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	// the pattern was validated when the config was loaded
	_ = Seed(g.sim, g.pattern, seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.pattern = ""
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// clicks outside the board are ignored
		_ = g.sim.Toggle(y/g.scale, x/g.scale)
	}
	g.hud.Update()

	if !g.paused || g.tickOnce {
		g.sim.Tick()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, ui.Status{
		Generation: g.sim.Generation(),
		Population: g.sim.Population(),
		Cells:      g.sim.Width() * g.sim.Height(),
		Paused:     g.paused,
		TPS:        g.tps,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.Width() * g.scale, g.sim.Height() * g.scale
}
