//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/matter"
	"mad-sand/internal/render"
	"mad-sand/internal/sims/sand"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var kindKeys = map[ebiten.Key]matter.Kind{
	ebiten.KeyDigit1: matter.Empty,
	ebiten.KeyDigit2: matter.Sand,
	ebiten.KeyDigit3: matter.Wood,
}

// Game adapts a sand simulation to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep
	log     *slog.Logger

	scale  int
	cursor *core.Point
	onHUD  bool
}

// New constructs a Game for the provided simulation.
func New(sim *sand.Simulator, cfg *Config, log *slog.Logger) *Game {
	size := sim.Size()
	session := NewSession(sim, cfg, log)
	g := &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(size, cfg.Scale),
		clock:   core.NewFixedStep(cfg.SimRate),
		log:     session.log,
		scale:   cfg.Scale,
	}
	if cfg.Panel > 0 {
		g.hud = ui.NewHUD(session, "Sand Controls", cfg.Panel)
	}
	return g
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.overlay.Update()

	size := g.session.Sim().Size()
	if g.hud != nil {
		g.onHUD = g.hud.Update(size.W*g.scale, g.session.Status())
	}
	g.handlePointer(size)

	g.session.Advance(g.clock.Ticks())
	return nil
}

func (g *Game) handleKeys() {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := time.Now().UnixNano()
		g.log.Info("reseeding", "seed", seed)
		s.Reset(seed)
	}
	for key, kind := range kindKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.SelectKind(kind)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		s.AdjustRadius(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		s.AdjustRadius(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		s.AdjustSubSteps(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		s.AdjustSubSteps(1)
	}
}

func (g *Game) handlePointer(size core.Size) {
	mx, my := ebiten.CursorPosition()
	p, ok := ScreenToGrid(mx, my, g.scale, size)
	if mx >= size.W*g.scale {
		ok = false
	}
	if !ok || g.onHUD {
		g.cursor = nil
		g.session.EndStroke()
		return
	}
	g.cursor = &p

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.session.AdjustRadius(wy)
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		g.session.EndStroke()
		return
	}
	g.session.Paint(p, right)
}

// Draw renders the grid, the overlays and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.RenderTimer.Start()
	defer g.session.RenderTimer.Stop()

	sim := g.session.Sim()
	g.painter.Blit(screen, sim.Cells(), g.scale)
	g.overlay.Draw(screen, g.cursor, g.session.Brush.Radius)
	if g.hud != nil {
		size := sim.Size()
		g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sim().Size()
	w := s.W * g.scale
	if g.hud != nil {
		w += g.hud.Width()
	}
	return w, s.H * g.scale
}

// WindowSize returns the initial window dimensions.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
