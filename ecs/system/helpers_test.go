package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// testWorld builds a player standing on the ground at x=100 plus the game
// state singleton with the default tuning.
func testWorld(t *testing.T) (*ecs.World, *component.Actor, *component.Input) {
	t.Helper()
	w := ecs.NewWorld()

	player := ecs.CreateEntity(w)
	initial := component.Actor{X: 100, Y: 390, W: 60, H: 60, Speed: 4}
	actor := initial
	in := &component.Input{}
	mustAdd(t, ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, player, component.ActorComponent.Kind(), &actor))
	mustAdd(t, ecs.Add(w, player, component.SpawnComponent.Kind(), &component.Spawn{Initial: initial}))
	mustAdd(t, ecs.Add(w, player, component.InputComponent.Kind(), in))

	state := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, state, component.GameStateTagComponent.Kind(), &component.GameStateTag{}))
	mustAdd(t, ecs.Add(w, state, component.PhysicsComponent.Kind(), &component.Physics{
		JumpVelocity:     -12,
		MaxJumps:         2,
		SprintMultiplier: 1.8,
		GroundY:          450,
		LandingTolerance: 15,
		PickupSize:       40,
	}))
	mustAdd(t, ecs.Add(w, state, component.GravityComponent.Kind(), &component.Gravity{Base: 0.6, Current: 0.6}))
	mustAdd(t, ecs.Add(w, state, component.PowerUpTuningComponent.Kind(), &component.PowerUpTuning{Duration: 5, HighJumpImpulse: -18, LowGravity: 0.3}))
	mustAdd(t, ecs.Add(w, state, component.PowerUpComponent.Kind(), &component.PowerUp{}))
	mustAdd(t, ecs.Add(w, state, component.WorldClockComponent.Kind(), &component.WorldClock{Budget: 90, Remaining: 90}))
	mustAdd(t, ecs.Add(w, state, component.OutcomeComponent.Kind(), &component.Outcome{}))
	mustAdd(t, ecs.Add(w, state, component.ProgressComponent.Kind(), &component.Progress{Quota: 7, GoalX: 3000}))
	mustAdd(t, ecs.Add(w, state, component.ChoicePromptComponent.Kind(), &component.ChoicePrompt{}))
	mustAdd(t, ecs.Add(w, state, component.CameraComponent.Kind(), &component.Camera{ViewportWidth: 800}))
	mustAdd(t, ecs.Add(w, state, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 3200, Height: 480}))

	return w, &actor, in
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func addPlatform(t *testing.T, w *ecs.World, p component.Platform) {
	t.Helper()
	mustAdd(t, ecs.Add(w, ecs.CreateEntity(w), component.PlatformComponent.Kind(), &p))
}

func singleton[T any](t *testing.T, w *ecs.World, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.FirstValue(w, kind)
	if !ok {
		t.Fatalf("missing singleton %T", v)
	}
	return v
}

func drainTypes(w *ecs.World) []ecs.EventType {
	var types []ecs.EventType
	for _, ev := range w.Events().Drain() {
		types = append(types, ev.Type)
	}
	return types
}

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }
