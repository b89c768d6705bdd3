package main

import (
	"testing"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func TestRunEmbeddedLevels(t *testing.T) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatal(err)
	}
	powerUps, err := prefabs.LoadPowerUpSpec()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range levels.Names() {
		t.Run(name, func(t *testing.T) {
			res, err := run(name, player, powerUps, runConfig{ticks: 600, hop: 20, choice: "random", seed: 3})
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if res.x <= 0 && res.resets == 0 {
				t.Fatalf("expected the runner to move right, got %+v", res)
			}
			if res.elapsed <= 0 {
				t.Fatalf("expected simulated time to pass")
			}
		})
	}
}

func TestRunUnknownLevel(t *testing.T) {
	player, _ := prefabs.LoadPlayerSpec()
	powerUps, _ := prefabs.LoadPowerUpSpec()
	if _, err := run("does-not-exist", player, powerUps, runConfig{ticks: 1}); err == nil {
		t.Fatalf("expected an error for a missing level")
	}
}
