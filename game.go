package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

const (
	screenWidth  = 800
	screenHeight = 480

	resetMessageTime  = 2.0
	choiceMessageTime = 1.5
)

type Game struct {
	levelName string
	seed      uint64
	debug     bool

	sim    *game.Simulation
	source *deviceSource

	paused   bool
	quit     bool
	pauseUI  *ebitenui.UI
	choiceUI *ebitenui.UI

	message      string
	messageTimer float64

	watcher *prefabs.Watcher
}

func NewGame(levelName string, seed uint64, debug, watch bool) (*Game, error) {
	g := &Game{levelName: levelName, seed: seed, debug: debug}
	if err := g.load(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher("levels", "prefabs", "prefabs/scripts")
		if err != nil && !errors.Is(err, prefabs.ErrNothingToWatch) {
			return nil, fmt.Errorf("watch: %w", err)
		}
		g.watcher = w
	}
	return g, nil
}

// load builds a fresh simulation from the current level and prefab files.
// On failure the running simulation, if any, is kept.
func (g *Game) load() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	powerUps, err := prefabs.LoadPowerUpSpec()
	if err != nil {
		return err
	}
	bindings, err := player.Bindings()
	if err != nil {
		return err
	}

	source := newDeviceSource(bindings)
	opts := []game.Option{
		game.WithLogger(log.Default()),
		game.WithInput(source),
		game.WithBindings(bindings),
	}
	if g.seed != 0 {
		opts = append(opts, game.WithSeed(g.seed))
	}

	sim, err := game.New(lvl, player, powerUps, opts...)
	if err != nil {
		return err
	}
	sim.OnEvent(g.onEvent)

	g.sim = sim
	g.source = source
	g.choiceUI = nil
	g.message, g.messageTimer = "", 0
	ebiten.SetWindowTitle(lvl.Name)
	return nil
}

func (g *Game) onEvent(ev ecs.Event) {
	switch data := ev.Data.(type) {
	case component.LevelReset:
		if data.Reason == component.ResetReasonHazard {
			g.showMessage("Ouch! Back to the start.", resetMessageTime)
		}
	case component.OutcomeReached:
		g.choiceUI = nil
	}
}

func (g *Game) showMessage(msg string, seconds float64) {
	g.message = msg
	g.messageTimer = seconds
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())

	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.sim.Outcome().State.Terminal() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Restart()
	}

	if prompt, ok := g.sim.PendingChoice(); ok {
		if g.choiceUI == nil {
			g.choiceUI = NewChoiceUI(g, prompt)
		}
		g.choiceUI.Update()
	} else {
		g.choiceUI = nil
	}

	g.sim.Tick(dt)

	if g.messageTimer > 0 {
		g.messageTimer -= dt
		if g.messageTimer <= 0 {
			g.message = ""
		}
	}
	return nil
}

// choose answers the open prompt from the choice UI.
func (g *Game) choose(choice component.Choice) {
	effect, err := g.sim.Choose(string(choice))
	if err != nil {
		log.Printf("choice: %v", err)
		return
	}
	label := effect.String()
	if choice == component.ChoiceRandom {
		label = "Random: " + label
	}
	g.showMessage("You got "+label+"!", choiceMessageTime)
	g.choiceUI = nil
}

func (g *Game) restart() {
	g.sim.Restart()
	g.paused = false
}

// pollWatcher rebuilds the simulation when a level, prefab or script file
// changes on disk. Events are drained without blocking.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}

	var changes []string
drain:
	for {
		select {
		case c, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			for _, p := range c.Paths {
				log.Printf("watch: %s %s changed", prefabs.Classify(p), p)
			}
			changes = append(changes, c.Paths...)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			break drain
		}
	}

	if len(changes) == 0 {
		return
	}
	if err := g.load(); err != nil {
		log.Printf("reload: %v", err)
		g.showMessage("Reload failed, see log", resetMessageTime)
		return
	}
	log.Printf("reload: rebuilt %s", g.levelName)
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	drawWorld(screen, snap)
	drawHUD(screen, snap, g.message)
	if g.debug {
		drawDebug(screen, snap)
	}

	if g.choiceUI != nil {
		g.choiceUI.Draw(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		g.watcher.Close()
	}
}
