package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/game"
)

var (
	skyColor      = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	groundColor   = color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
	platformColor = color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff}
	pickupColor   = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	hazardColor   = color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff}
	actorColor    = color.RGBA{R: 0xf5, G: 0xde, B: 0xb3, A: 0xff}
	boostColor    = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	goalColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
	triggerColor  = color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0x80}
	hitboxColor   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	overlayColor  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xa0}
)

// drawWorld draws the level scrolled by the camera. Only x scrolls.
func drawWorld(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(skyColor)
	cam := float32(snap.CameraX)

	ground := float32(snap.GroundY)
	vector.DrawFilledRect(screen, 0, ground, screenWidth, screenHeight-ground, groundColor, false)

	for _, p := range snap.Platforms {
		vector.DrawFilledRect(screen, float32(p.X)-cam, float32(p.Y), float32(p.W), float32(p.H), platformColor, false)
	}
	for _, p := range snap.Pickups {
		if p.Collected {
			continue
		}
		half := float32(p.Size) / 2
		vector.DrawFilledCircle(screen, float32(p.X)-cam+half, float32(p.Y)+half, half, pickupColor, true)
	}
	for _, h := range snap.Hazards {
		vector.DrawFilledRect(screen, float32(h.X)-cam, float32(h.Y), float32(h.W), float32(h.H), hazardColor, false)
	}

	goal := float32(snap.GoalX) - cam
	vector.StrokeLine(screen, goal, 0, goal, ground, 3, goalColor, false)

	a := snap.Actor
	fill := actorColor
	if a.SprintBoost {
		fill = boostColor
	}
	vector.DrawFilledRect(screen, float32(a.X)-cam, float32(a.Y), float32(a.W), float32(a.H), fill, false)
}

func drawHUD(screen *ebiten.Image, snap game.Snapshot, message string) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Pickups: %d/%d", snap.Collected, snap.Quota), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %.0f", snap.TimeRemaining), 10, 26)
	if snap.PowerUp != component.EffectNone {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Item: %s (%.1fs)", snap.PowerUpLabel, snap.PowerUpLeft), 10, 42)
	}
	if message != "" {
		ebitenutil.DebugPrintAt(screen, message, screenWidth/2-len(message)*3, 60)
	}

	if !snap.Outcome.Terminal() {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, overlayColor, false)
	title := "You win!"
	if snap.Outcome == component.OutcomeLost {
		title = "Game over: " + snap.OutcomeReason
	}
	ebitenutil.DebugPrintAt(screen, title, screenWidth/2-len(title)*3, screenHeight/2-16)
	ebitenutil.DebugPrintAt(screen, "Press R to play again", screenWidth/2-63, screenHeight/2+4)
}

// drawDebug outlines every collision box and the trigger thresholds.
func drawDebug(screen *ebiten.Image, snap game.Snapshot) {
	cam := float32(snap.CameraX)
	for _, t := range snap.Triggers {
		if t.Fired {
			continue
		}
		x := float32(t.X) - cam
		vector.StrokeLine(screen, x, 0, x, float32(snap.GroundY), 1, triggerColor, false)
	}
	for _, p := range snap.Pickups {
		vector.StrokeRect(screen, float32(p.X)-cam, float32(p.Y), float32(p.Size), float32(p.Size), 1, hitboxColor, false)
	}
	a := snap.Actor
	vector.StrokeRect(screen, float32(a.X)-cam, float32(a.Y), float32(a.W), float32(a.H), 1, hitboxColor, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"tick %d  x %.1f  y %.1f  vy %.2f  jumps %d  grounded %v  g %.2f  cam %.0f",
		snap.Tick, a.X, a.Y, a.VY, a.JumpsUsed, a.Grounded, snap.Gravity, snap.CameraX,
	), 10, screenHeight-20)
}
