// Package game hosts the feelings wheel in an ebiten window with a side
// panel listing the current selection.
package game

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/feelings-wheel/internal/config"
	"github.com/iburimskiy/feelings-wheel/internal/export"
	"github.com/iburimskiy/feelings-wheel/internal/sound"
	"github.com/iburimskiy/feelings-wheel/internal/taxonomy"
	"github.com/iburimskiy/feelings-wheel/internal/wheel"
)

const statusBarH = 24

// viewport is the window split into the wheel area and the panel.
type viewport struct {
	w, h  int
	panel int
}

// Bounds is the wheel area, left of the panel.
func (v *viewport) Bounds() image.Rectangle {
	return image.Rect(0, 0, max(v.w-v.panel, 0), max(v.h-statusBarH, 0))
}

func (v *viewport) panelArea() image.Rectangle {
	return image.Rect(max(v.w-v.panel, 0), 0, v.w, max(v.h-statusBarH, 0))
}

// Game implements ebiten.Game.
type Game struct {
	cfg    config.Config
	log    *slog.Logger
	view   *viewport
	wheel  *wheel.Engine
	panel  *Panel
	player *sound.Player
	easing wheel.Easing
	render *renderer

	// input edge detection
	prevKey        map[ebiten.Key]bool
	pressedInWheel bool

	// state
	resetting <-chan error
	dirty     bool
	lastErr   error
}

// Options turns the config into engine options.
func Options(cfg config.Config, log *slog.Logger) []wheel.Option {
	opts := []wheel.Option{
		wheel.WithRatios(wheel.Ratios{
			Utilization:   cfg.Utilization,
			FullCore:      cfg.FullCoreRatio,
			FullSecondary: cfg.FullSecondaryRatio,
			SimpleCore:    cfg.SimpleCoreRatio,
		}),
		wheel.WithShadowStyle(wheel.ShadowStyle{
			OffsetX: cfg.ShadowOffsetX,
			OffsetY: cfg.ShadowOffsetY,
			Blur:    cfg.ShadowBlur,
			Alpha:   cfg.ShadowAlpha,
		}),
		wheel.WithScrollStep(cfg.ScrollStep),
		wheel.WithClickSlop(cfg.ClickSlop),
		wheel.WithLogger(log),
	}
	if cfg.Anchor != "" {
		opts = append(opts, wheel.WithAnchor(cfg.Anchor))
	}
	return opts
}

// New builds the game. A nil player plays nothing. Extra options are
// applied after the ones derived from cfg.
func New(cfg config.Config, tax *taxonomy.Taxonomy, player *sound.Player, log *slog.Logger, opts ...wheel.Option) *Game {
	if log == nil {
		log = slog.Default()
	}
	if player == nil {
		player = sound.NewPlayer(log)
	}
	g := &Game{
		cfg:     cfg,
		log:     log,
		view:    &viewport{w: cfg.WindowWidth, h: cfg.WindowHeight, panel: cfg.PanelWidth},
		player:  player,
		prevKey: map[ebiten.Key]bool{},
		dirty:   true,
	}
	g.easing = wheel.EaseOut
	if e, ok := wheel.EasingByName(cfg.Easing); ok {
		g.easing = e
	} else {
		log.Warn("unknown easing, using easeOut", "easing", cfg.Easing)
	}

	g.wheel = wheel.New(g.view, tax, append(Options(cfg, log), opts...)...)
	g.panel = NewPanel(tax, g.wheel.ToggleSelection)
	g.wheel.Subscribe(g.panel.Selection)
	g.wheel.Subscribe(player.Selection)
	return g
}

// Wheel exposes the engine driving the game.
func (g *Game) Wheel() *wheel.Engine { return g.wheel }

func (g *Game) Update() error {
	if g.dirty {
		g.regenerate()
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyS) {
		g.toggleMode()
	}
	if justPressed(ebiten.KeyR) {
		g.reset()
	}
	if justPressed(ebiten.KeyArrowLeft) || justPressed(ebiten.KeyArrowUp) {
		g.rotate(-g.cfg.KeyStep)
	}
	if justPressed(ebiten.KeyArrowRight) || justPressed(ebiten.KeyArrowDown) {
		g.rotate(g.cfg.KeyStep)
	}
	if justPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if justPressed(ebiten.KeyE) {
		g.report(g.exportDialog())
	}
	if justPressed(ebiten.KeyO) {
		g.report(g.chimeDialog())
	}
	if justPressed(ebiten.KeyM) {
		g.log.Info("sound toggled", "muted", g.player.ToggleMute())
	}
	if justPressed(ebiten.KeyP) {
		g.togglePanel()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.handlePointer()

	g.wheel.Update()
	g.pollReset()
	return nil
}

func (g *Game) report(err error) {
	if err == nil {
		return
	}
	g.lastErr = err
	g.log.Error("action failed", "err", err)
}

func (g *Game) regenerate() {
	g.dirty = false
	if err := g.wheel.Generate(); err != nil && !errors.Is(err, wheel.ErrEmptyContainer) {
		g.report(err)
	}
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pointerDown(mx, my)
	}
	if g.pressedInWheel && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.wheel.PointerMove(float64(mx), float64(my))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pointerUp(mx, my)
	}
	if _, dy := ebiten.Wheel(); dy != 0 && image.Pt(mx, my).In(g.view.Bounds()) {
		// ebiten reports scrolling up as positive
		g.wheel.Scroll(-dy)
	}
}

func (g *Game) pointerDown(x, y int) {
	pt := image.Pt(x, y)
	if !g.panel.Minimized && pt.In(g.view.panelArea()) {
		_, err := g.panel.Click(g.view.panelArea(), x, y)
		g.report(err)
		return
	}
	if g.resetting != nil || !pt.In(g.view.Bounds()) {
		return
	}
	g.pressedInWheel = true
	g.wheel.PointerDown(float64(x), float64(y))
}

func (g *Game) pointerUp(x, y int) {
	if !g.pressedInWheel {
		return
	}
	g.pressedInWheel = false
	if id, ok := g.wheel.PointerUp(float64(x), float64(y)); ok {
		g.log.Debug("wedge clicked", "id", id, "selected", g.wheel.IsSelected(id))
	}
}

func (g *Game) toggleMode() {
	simplified := g.wheel.Mode() != wheel.Simplified
	g.wheel.SetMode(simplified)
	g.panel.Rebuild(g.wheel.Selection(), simplified)
}

func (g *Game) rotate(delta float64) {
	if g.resetting != nil {
		return
	}
	g.wheel.RotateBy(delta, g.cfg.KeyRotateDuration(), g.easing)
}

// reset clears the selection, unwinds the wheel to zero and then resets the
// current mode. With nothing selected and no rotation it resets at once.
func (g *Game) reset() {
	if g.resetting != nil {
		return
	}
	if len(g.wheel.Selection()) == 0 && wheel.Normalize(g.wheel.Rotation()) == 0 {
		g.wheel.Reset()
		return
	}
	g.wheel.ClearSelection()
	g.player.Play(sound.ResetSwoosh())
	g.resetting = g.wheel.AnimateRotation(0, g.cfg.ResetDuration(), wheel.EaseOut)
}

func (g *Game) pollReset() {
	if g.resetting == nil {
		return
	}
	select {
	case err := <-g.resetting:
		g.resetting = nil
		if err != nil {
			g.log.Debug("reset interrupted", "err", err)
			return
		}
		g.wheel.Reset()
		g.log.Info("wheel reset", "mode", g.wheel.Mode())
	default:
	}
}

func (g *Game) togglePanel() {
	g.panel.Minimized = !g.panel.Minimized
	g.view.panel = g.cfg.PanelWidth
	if g.panel.Minimized {
		g.view.panel = 0
	}
	g.dirty = true
}

func (g *Game) exportDialog() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Wheel"),
		zenity.Filename("feelings-wheel.svg"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "SVG Image",
			Patterns: []string{"*.svg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if filepath.Ext(path) == "" {
		path += ".svg"
	}
	if err := export.WriteFile(path, g.wheel); err != nil {
		return err
	}
	g.log.Info("wheel exported", "path", path)
	return nil
}

func (g *Game) chimeDialog() error {
	path, err := zenity.SelectFile(
		zenity.Title("Choose Selection Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.player.LoadChime(path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.render == nil {
		r, err := newRenderer()
		if err != nil {
			g.report(err)
		} else {
			g.render = r
		}
	}
	if g.render != nil {
		g.render.drawWheel(screen, g.wheel)
		if !g.panel.Minimized {
			g.render.drawPanel(screen, g.panel, g.view.panelArea())
		}
	}

	vector.DrawFilledRect(screen, 0, float32(g.view.h-statusBarH), float32(g.view.w), statusBarH, statusBarColor, false)
	ebitenutil.DebugPrintAt(screen, g.status(), 8, g.view.h-statusBarH+4)
}

func (g *Game) status() string {
	s := fmt.Sprintf("%s | %s | %d selected | S: mode  R: reset  Arrows: turn  E: export  O: chime  M: mute  P: panel  F11  Esc",
		g.wheel.Mode(), formatDegrees(g.wheel.Rotation()), len(g.wheel.Selection()))
	if g.player.Muted() {
		s += " | muted"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.view.w || outsideHeight != g.view.h {
		g.view.w, g.view.h = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}
