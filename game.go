package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/neondash/catalog"
	"github.com/milk9111/neondash/common"
	"github.com/milk9111/neondash/obj"
)

// State is the top-level game state. Only StatePlaying advances simulation;
// every other state renders a static frame plus its screen overlay.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Command is a discrete input intent, decoupled from whichever device or UI
// button produced it. Commands that make no sense in the current state are
// silently dropped.
type Command int

const (
	CmdStartOrRestart Command = iota
	CmdPause
	CmdResume
	CmdShowMenu
)

// RecordStore persists the two high-water marks.
type RecordStore interface {
	Best(key string) int
	SetBest(key string, v int) error
}

// Notifier is how the core tells the UI layer what to present.
type Notifier interface {
	ShowScreen(name string)
	SetText(field string, value int)
}

// Record keys and notification field names.
const (
	KeyBestScore    = "best_score"
	KeyBestDistance = "best_distance"

	FieldScore         = "score"
	FieldDistance      = "distance"
	FieldHighScore     = "high_score"
	FieldHighDistance  = "high_distance"
	FieldFinalScore    = "final_score"
	FieldFinalDistance = "final_distance"

	ScreenMenu     = "menu"
	ScreenHUD      = "hud"
	ScreenPaused   = "paused"
	ScreenGameOver = "gameover"
)

// Config is the startup configuration value object.
type Config struct {
	Debug        bool
	Seed         int64 // 0 means time-seeded
	WatchCatalog bool
}

type Game struct {
	frames int
	state  State

	input     *obj.Input
	player    *obj.Player
	camera    *obj.Camera
	gen       *obj.Generator
	particles []*obj.Particle
	rng       *rand.Rand

	distance float64
	speed    float64

	records      RecordStore
	bestScore    int
	bestDistance int

	notify  Notifier
	ui      *GameUI
	pending []Command

	watcher *catalog.Watcher
	debug   bool
}

func NewGame(cfg Config, templates []catalog.Template, records RecordStore) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		state:   StateMenu,
		input:   obj.NewInput(),
		player:  obj.NewPlayer(),
		camera:  obj.NewCamera(rng),
		gen:     obj.NewGenerator(templates, rng),
		rng:     rng,
		speed:   common.BaseSpeed,
		records: records,
		debug:   cfg.Debug,
	}
	g.bestScore = records.Best(KeyBestScore)
	g.bestDistance = records.Best(KeyBestDistance)

	if cfg.WatchCatalog {
		w, err := catalog.NewWatcher("catalog")
		if err != nil {
			log.Printf("catalog watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

// SetUI attaches the ebitenui layer. Kept separate from NewGame because the
// UI's buttons post commands back into the game.
func (g *Game) SetUI(ui *GameUI) {
	g.ui = ui
	g.notify = ui
	g.notify.SetText(FieldHighScore, g.bestScore)
	g.notify.SetText(FieldHighDistance, g.bestDistance)
	g.notify.ShowScreen(ScreenMenu)
}

// Post enqueues a one-shot command. Safe to call from UI button handlers; the
// queue is drained once at the top of the next Update.
func (g *Game) Post(c Command) {
	g.pending = append(g.pending, c)
}

// Score derives the current score from distance traveled.
func (g *Game) Score() int {
	return int(math.Floor(g.distance / common.ScoreDivisor))
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	if g.ui != nil {
		g.ui.Update()
	}
	g.reloadCatalogIfChanged()

	cmds := g.pending
	g.pending = g.pending[:0]
	cmds = append(cmds, g.inputCommands()...)
	for _, c := range cmds {
		g.apply(c)
	}

	if g.state == StatePlaying {
		g.step()
	}
	g.updateEffects()
	return nil
}

// inputCommands maps raw device intents onto state-appropriate commands.
func (g *Game) inputCommands() []Command {
	var cmds []Command
	if g.input.MenuPressed {
		cmds = append(cmds, CmdShowMenu)
	}
	switch g.state {
	case StateMenu:
		if g.input.JumpPressed || g.input.RestartPressed {
			cmds = append(cmds, CmdStartOrRestart)
		}
	case StatePlaying:
		if g.input.PausePressed {
			cmds = append(cmds, CmdPause)
		}
	case StatePaused:
		if g.input.PausePressed {
			cmds = append(cmds, CmdResume)
		}
		if g.input.RestartPressed {
			cmds = append(cmds, CmdStartOrRestart)
		}
	case StateGameOver:
		if g.input.JumpPressed || g.input.RestartPressed {
			cmds = append(cmds, CmdStartOrRestart)
		}
	}
	return cmds
}

// apply runs one state-machine transition. Commands invalid for the current
// state fall through without effect.
func (g *Game) apply(c Command) {
	switch c {
	case CmdStartOrRestart:
		switch g.state {
		case StateMenu, StateGameOver, StatePaused:
			g.startRun()
		}
	case CmdPause:
		if g.state == StatePlaying {
			g.state = StatePaused
			g.showScreen(ScreenPaused)
		}
	case CmdResume:
		if g.state == StatePaused {
			g.state = StatePlaying
			g.showScreen(ScreenHUD)
		}
	case CmdShowMenu:
		g.state = StateMenu
		g.showScreen(ScreenMenu)
	}
}

// startRun performs the full reset into the Playing state.
func (g *Game) startRun() {
	g.player.Reset()
	g.camera.Reset()
	g.gen.Reset()
	g.particles = g.particles[:0]
	g.distance = 0
	g.speed = common.BaseSpeed
	g.state = StatePlaying
	g.showScreen(ScreenHUD)
	g.setText(FieldScore, 0)
	g.setText(FieldDistance, 0)
}

// step advances one simulation tick. Runs only while Playing.
func (g *Game) step() {
	if g.input.JumpHeld {
		g.player.Jump() // no-op unless grounded
	}
	g.player.Update()

	g.speed = math.Min(common.BaseSpeed+g.distance/common.SpeedRampDistance, common.MaxSpeed)
	g.distance += g.speed
	g.setText(FieldScore, g.Score())
	g.setText(FieldDistance, int(g.distance))

	g.gen.Update(g.speed)

	if g.gen.CheckCollision(g.player) {
		g.gameOver()
	}
}

// updateEffects advances the cosmetic state: shake decay and particle motion.
// Runs every frame regardless of game state so the death feedback settles on
// the game-over screen instead of freezing mid-burst.
func (g *Game) updateEffects() {
	g.camera.Update()

	alive := g.particles[:0]
	for _, p := range g.particles {
		p.Update()
		if !p.Dead() {
			alive = append(alive, p)
		}
	}
	g.particles = alive
}

// gameOver handles the collision death: feedback, record persistence, UI.
func (g *Game) gameOver() {
	g.state = StateGameOver
	g.camera.AddShake(20)

	cx, cy := g.player.Center()
	pos := cp.Vector{X: cx, Y: cy}
	c := colornames.Cyan
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	for i := 0; i < 30; i++ {
		g.particles = append(g.particles, obj.NewParticle(pos, clr, g.rng))
	}

	score := g.Score()
	dist := int(g.distance)
	if score > g.bestScore {
		g.bestScore = score
		if err := g.records.SetBest(KeyBestScore, score); err != nil {
			log.Printf("persist best score: %v", err)
		}
	}
	if dist > g.bestDistance {
		g.bestDistance = dist
		if err := g.records.SetBest(KeyBestDistance, dist); err != nil {
			log.Printf("persist best distance: %v", err)
		}
	}

	g.setText(FieldFinalScore, score)
	g.setText(FieldFinalDistance, dist)
	g.setText(FieldHighScore, g.bestScore)
	g.setText(FieldHighDistance, g.bestDistance)
	g.showScreen(ScreenGameOver)
}

func (g *Game) reloadCatalogIfChanged() {
	if g.watcher == nil {
		return
	}
	// keep the error channel drained so the watch goroutine never blocks
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("catalog watch: %v", err)
		}
	default:
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		templates, err := catalog.Load()
		if err != nil {
			log.Printf("catalog reload %s: %v", name, err)
			return
		}
		g.gen.SetTemplates(templates)
		log.Printf("catalog reloaded from %s (%d templates)", name, len(templates))
	default:
	}
}

func (g *Game) showScreen(name string) {
	if g.notify != nil {
		g.notify.ShowScreen(name)
	}
}

func (g *Game) setText(field string, v int) {
	if g.notify != nil {
		g.notify.SetText(field, v)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x10, G: 0x10, B: 0x1e, A: 0xff})

	offset := g.camera.ShakeOffset()
	g.drawBackground(screen, offset)

	// the menu renders background only
	if g.state != StateMenu {
		g.gen.Draw(screen, offset)
		g.player.Draw(screen, offset)
		for _, p := range g.particles {
			p.Draw(screen, offset)
		}
	}

	if g.ui != nil {
		g.ui.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  State: %s  Obstacles: %d",
			ebiten.ActualFPS(), g.state, len(g.gen.Active())))
	}
}

// drawBackground paints the scrolling floor grid and the ground band.
func (g *Game) drawBackground(screen *ebiten.Image, offset cp.Vector) {
	groundY := float32(common.GroundY + offset.Y)
	lineClr := color.NRGBA{R: 0x3a, G: 0x3a, B: 0x5c, A: 0xff}

	vector.FillRect(screen, 0, groundY, common.BaseWidth, common.BaseHeight-common.GroundY+20, color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}, false)
	vector.StrokeLine(screen, 0, groundY, common.BaseWidth, groundY, 2, lineClr, false)

	// vertical grid lines scroll with distance
	const gridStep = 80
	shift := float32(math.Mod(g.distance, gridStep))
	for x := -shift; x < common.BaseWidth; x += gridStep {
		vector.StrokeLine(screen, x+float32(offset.X), groundY, x+float32(offset.X), common.BaseHeight, 1, lineClr, false)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
