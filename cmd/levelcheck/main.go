// Command levelcheck loads levels headlessly, validates them and plays each
// one with a scripted runner that holds right, hops at a fixed interval and
// answers every prompt with the same choice. It exits non-zero if any level
// fails to load.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

const tickRate = 60

func main() {
	levelName := flag.String("level", "", "level to check (default: every embedded level)")
	seconds := flag.Float64("seconds", 90, "simulated seconds to run each level")
	hop := flag.Int("hop", 30, "ticks between jump presses while running (0 = never jump)")
	choice := flag.String("choice", "speed_boost", "choice id used to answer prompts")
	seed := flag.Uint64("seed", 1, "seed for random choices")
	verbose := flag.Bool("v", false, "log simulation events")
	flag.Parse()

	if _, err := component.ParseChoice(*choice); err != nil {
		log.Fatal(err)
	}

	names := levels.Names()
	if *levelName != "" {
		names = []string{*levelName}
	}

	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	powerUps, err := prefabs.LoadPowerUpSpec()
	if err != nil {
		log.Fatal(err)
	}

	failed := false
	for _, name := range names {
		res, err := run(name, player, powerUps, runConfig{
			ticks:   int(*seconds * tickRate),
			hop:     *hop,
			choice:  *choice,
			seed:    *seed,
			verbose: *verbose,
		})
		if err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
			continue
		}
		fmt.Printf("%-10s %-7s %-22s x=%7.1f pickups=%d/%d prompts=%d resets=%d t=%.1fs\n",
			name, res.outcome.State, res.outcome.Reason, res.x, res.collected, res.quota, res.prompts, res.resets, res.elapsed)
	}
	if failed {
		os.Exit(1)
	}
}

type runConfig struct {
	ticks   int
	hop     int
	choice  string
	seed    uint64
	verbose bool
}

type result struct {
	outcome   component.Outcome
	x         float64
	collected int
	quota     int
	prompts   int
	resets    int
	elapsed   float64
}

func run(name string, player *prefabs.PlayerSpec, powerUps *prefabs.PowerUpSpec, cfg runConfig) (result, error) {
	lvl, err := levels.Load(name)
	if err != nil {
		return result{}, err
	}

	keys := input.KeyState{}
	opts := []game.Option{game.WithInput(keys), game.WithSeed(cfg.seed)}
	if cfg.verbose {
		opts = append(opts, game.WithLogger(log.Default()))
	}
	sim, err := game.New(lvl, player, powerUps, opts...)
	if err != nil {
		return result{}, err
	}

	var res result
	sim.OnEvent(func(ev ecs.Event) {
		switch ev.Type {
		case component.EventChoiceRequested:
			res.prompts++
		case component.EventLevelReset:
			res.resets++
		}
	})

	bindings, err := player.Bindings()
	if err != nil {
		return result{}, err
	}
	right := bindings[input.MoveRight][0]
	jump := bindings[input.Jump][0]

	dt := 1.0 / tickRate
	keys.Press(right)
	for i := 0; i < cfg.ticks && !sim.Outcome().State.Terminal(); i++ {
		if _, ok := sim.PendingChoice(); ok {
			if _, err := sim.Choose(cfg.choice); err != nil {
				return result{}, err
			}
		}
		if cfg.hop > 0 && i%cfg.hop == 0 {
			keys.Press(jump)
		} else {
			keys.Release(jump)
		}
		sim.Tick(dt)
		res.elapsed += dt
	}

	snap := sim.Snapshot()
	res.outcome = sim.Outcome()
	res.x = snap.Actor.X
	res.collected = snap.Collected
	res.quota = snap.Quota
	return res, nil
}
