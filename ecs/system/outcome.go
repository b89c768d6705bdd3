package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// OutcomeSystem runs the world clock down and decides whether the run is
// won or lost. Running out of time is checked before reaching the goal.
type OutcomeSystem struct{}

func NewOutcomeSystem() *OutcomeSystem { return &OutcomeSystem{} }

func (s *OutcomeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	outcome, ok := ecs.FirstValue(w, component.OutcomeComponent.Kind())
	if !ok || outcome.State.Terminal() {
		return
	}
	clock, ok := ecs.FirstValue(w, component.WorldClockComponent.Kind())
	if !ok {
		return
	}

	clock.Remaining -= w.DeltaTime()
	if clock.Remaining <= 0 {
		clock.Remaining = 0
		finish(w, outcome, component.OutcomeLost, component.ReasonTimeExpired)
		return
	}

	_, actor, ok := playerActor(w)
	if !ok {
		return
	}
	progress, ok := ecs.FirstValue(w, component.ProgressComponent.Kind())
	if !ok || actor.X <= progress.GoalX {
		return
	}

	if progress.Collected >= progress.Quota {
		finish(w, outcome, component.OutcomeWon, component.ReasonReachedGoal)
		return
	}
	finish(w, outcome, component.OutcomeLost, component.ReasonInsufficientPickups)
}

// finish moves the run to a terminal state and drops any open prompt.
func finish(w *ecs.World, outcome *component.Outcome, state component.OutcomeState, reason string) {
	outcome.State = state
	outcome.Reason = reason
	if prompt, ok := ecs.FirstValue(w, component.ChoicePromptComponent.Kind()); ok {
		*prompt = component.ChoicePrompt{}
	}
	pushEvent(w, component.EventOutcomeReached, component.OutcomeReached{State: state, Reason: reason})
}
