// Package game drives one run of a level: it owns the world, runs the
// systems in order every tick and answers choice prompts.
package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

var (
	ErrNoPendingChoice = errors.New("game: no choice is pending")
	ErrGameOver        = errors.New("game: run is over")
)

// Simulation is the single owner of a run's mutable state. It is not safe
// for concurrent use; call it from one goroutine, normally the host's
// update loop.
type Simulation struct {
	cfg config

	level    *levels.Level
	player   *prefabs.PlayerSpec
	powerUps *prefabs.PowerUpSpec

	world     *ecs.World
	input     *system.InputSystem
	scheduler *ecs.Scheduler

	listeners []func(ecs.Event)
}

// New validates the level and tuning and builds a world ready to tick.
func New(lvl *levels.Level, player *prefabs.PlayerSpec, powerUps *prefabs.PowerUpSpec, opts ...Option) (*Simulation, error) {
	if lvl == nil || player == nil || powerUps == nil {
		return nil, fmt.Errorf("game: level, player and power-up specs are required")
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("game: level %q: %w", lvl.Name, err)
	}
	if err := player.Validate(); err != nil {
		return nil, fmt.Errorf("game: player spec: %w", err)
	}
	if err := powerUps.Validate(); err != nil {
		return nil, fmt.Errorf("game: power-up spec: %w", err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.bindings == nil {
		b, err := player.Bindings()
		if err != nil {
			return nil, fmt.Errorf("game: player spec: %w", err)
		}
		cfg.bindings = b
	}

	w := ecs.NewWorld()
	if _, err := entity.NewPlayer(w, player); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewGameState(w, lvl, player, powerUps); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if err := entity.LoadLevelToWorld(w, lvl); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	s := &Simulation{
		cfg:      cfg,
		level:    lvl,
		player:   player,
		powerUps: powerUps,
		world:    w,
		input:    system.NewInputSystem(cfg.source, cfg.bindings),
		scheduler: ecs.NewScheduler(
			system.NewPhysicsSystem(),
			system.NewPickupCollectSystem(),
			system.NewHazardPatrolSystem(cfg.logger),
			system.NewHazardSystem(),
			system.NewTriggerSystem(),
			system.NewPowerUpSystem(),
			system.NewOutcomeSystem(),
			system.NewCameraSystem(),
		),
	}
	system.NewCameraSystem().Update(w)
	return s, nil
}

// Tick advances the run by dt seconds. Once the run is over Tick does
// nothing at all. While a choice is pending only input is sampled, so a key
// held through the prompt does not register as a fresh press afterwards.
func (s *Simulation) Tick(dt float64) {
	if s == nil || s.Outcome().State.Terminal() {
		return
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	s.input.Update(s.world)
	if s.Suspended() {
		return
	}

	s.scheduler.Update(s.world, dt)
	s.dispatch()
}

// Suspended reports whether ticks are currently frozen.
func (s *Simulation) Suspended() bool {
	if prompt, ok := ecs.FirstValue(s.world, component.ChoicePromptComponent.Kind()); ok && prompt.Pending {
		return true
	}
	return s.Outcome().State.Terminal()
}

// Choose answers the open prompt with a choice id and returns the effect it
// resolved to. The prompt stays open if the id is not recognised.
func (s *Simulation) Choose(id string) (component.Effect, error) {
	if s.Outcome().State.Terminal() {
		return component.EffectNone, ErrGameOver
	}
	prompt, ok := ecs.FirstValue(s.world, component.ChoicePromptComponent.Kind())
	if !ok || !prompt.Pending {
		return component.EffectNone, ErrNoPendingChoice
	}

	choice, err := component.ParseChoice(id)
	if err != nil {
		return component.EffectNone, fmt.Errorf("game: choose: %w", err)
	}
	effect, err := system.ApplyChoice(s.world, choice, s.cfg.rng)
	if err != nil {
		return component.EffectNone, fmt.Errorf("game: choose %s: %w", choice, err)
	}

	*prompt = component.ChoicePrompt{}
	s.dispatch()
	return effect, nil
}

// Restart resets the level and starts a fresh run, whatever state the
// current one is in.
func (s *Simulation) Restart() {
	system.ResetLevel(s.world, component.ResetReasonRestart)
	if outcome, ok := ecs.FirstValue(s.world, component.OutcomeComponent.Kind()); ok {
		*outcome = component.Outcome{State: component.OutcomeRunning}
	}
	s.dispatch()
}

// Outcome returns the current run state.
func (s *Simulation) Outcome() component.Outcome {
	if outcome, ok := ecs.FirstValue(s.world, component.OutcomeComponent.Kind()); ok {
		return *outcome
	}
	return component.Outcome{}
}

// PendingChoice returns the open prompt, if any.
func (s *Simulation) PendingChoice() (Prompt, bool) {
	prompt, ok := ecs.FirstValue(s.world, component.ChoicePromptComponent.Kind())
	if !ok || !prompt.Pending {
		return Prompt{}, false
	}
	return s.promptView(*prompt), true
}

// OnEvent registers fn to receive every event the simulation raises, in
// the order they happened.
func (s *Simulation) OnEvent(fn func(ecs.Event)) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Level returns the level this simulation was built from.
func (s *Simulation) Level() *levels.Level {
	return s.level
}

func (s *Simulation) dispatch() {
	for _, ev := range s.world.Events().Drain() {
		s.logEvent(ev)
		for _, fn := range s.listeners {
			fn(ev)
		}
	}
}

func (s *Simulation) logEvent(ev ecs.Event) {
	l := s.cfg.logger
	if l == nil {
		return
	}
	switch data := ev.Data.(type) {
	case component.ChoiceRequested:
		l.Printf("game: choice requested context=%s trigger_x=%.0f", data.Context, data.TriggerX)
	case component.PickupCollected:
		l.Printf("game: pickup collected at (%.0f,%.0f) total=%d", data.X, data.Y, data.Collected)
	case component.LevelReset:
		l.Printf("game: level reset reason=%s", data.Reason)
	case component.PowerUpApplied:
		l.Printf("game: power-up %s applied (chose %s)", data.Effect, data.Chosen)
	case component.PowerUpExpired:
		l.Printf("game: power-up %s expired", data.Effect)
	case component.OutcomeReached:
		l.Printf("game: run %s: %s", data.State, data.Reason)
	default:
		l.Printf("game: event %s", ev.Type)
	}
}

// Snapshot copies the current state for rendering.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{
		Tick:          w.TickCount(),
		LevelWidth:    s.level.Width,
		LevelHeight:   s.level.Height,
		ViewportWidth: s.level.ViewportWidth,
		GroundY:       s.level.GroundY,
		GoalX:         s.level.GoalX,
	}

	if _, actor, ok := playerActor(w); ok {
		snap.Actor = *actor
	}
	if cam, ok := ecs.FirstValue(w, component.CameraComponent.Kind()); ok {
		snap.CameraX = cam.X
	}
	if clock, ok := ecs.FirstValue(w, component.WorldClockComponent.Kind()); ok {
		snap.TimeRemaining = clock.Remaining
	}
	if progress, ok := ecs.FirstValue(w, component.ProgressComponent.Kind()); ok {
		snap.Collected = progress.Collected
		snap.Quota = progress.Quota
	}
	if gravity, ok := ecs.FirstValue(w, component.GravityComponent.Kind()); ok {
		snap.Gravity = gravity.Current
	}
	if powerUp, ok := ecs.FirstValue(w, component.PowerUpComponent.Kind()); ok {
		snap.PowerUp = powerUp.Effect
		snap.PowerUpLabel = powerUp.Label()
		snap.PowerUpLeft = powerUp.Remaining
	}
	outcome := s.Outcome()
	snap.Outcome = outcome.State
	snap.OutcomeReason = outcome.Reason
	snap.Prompt, _ = s.PendingChoice()

	pickupSize := 0.0
	if phys, ok := ecs.FirstValue(w, component.PhysicsComponent.Kind()); ok {
		pickupSize = phys.PickupSize
	}

	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		snap.Platforms = append(snap.Platforms, *p)
	})
	ecs.ForEach(w, component.PickupComponent.Kind(), func(_ ecs.Entity, p *component.Pickup) {
		snap.Pickups = append(snap.Pickups, PickupView{X: p.X, Y: p.Y, Size: pickupSize, Collected: p.Collected})
	})
	ecs.ForEach(w, component.HazardComponent.Kind(), func(_ ecs.Entity, h *component.Hazard) {
		snap.Hazards = append(snap.Hazards, *h)
	})
	ecs.ForEach(w, component.TriggerComponent.Kind(), func(_ ecs.Entity, t *component.Trigger) {
		snap.Triggers = append(snap.Triggers, *t)
	})
	return snap
}

func (s *Simulation) promptView(p component.ChoicePrompt) Prompt {
	return Prompt{
		Pending:  p.Pending,
		Context:  p.Context,
		Text:     s.level.Prompts[p.Context],
		TriggerX: p.TriggerX,
		Choices:  append([]component.Choice(nil), component.Choices[:]...),
	}
}

func playerActor(w *ecs.World) (ecs.Entity, *component.Actor, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	actor, ok := ecs.Get(w, player, component.ActorComponent.Kind())
	return player, actor, ok
}
