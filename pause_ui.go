package main

import "github.com/ebitenui/ebitenui"

// NewPauseUI builds the centred pause menu. Escape also closes it.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := uiFace()
	return newPanelUI(screenWidth/2, screenHeight/2,
		newLabel(face, "Paused"),
		newButton(face, "Resume", func() { g.paused = false }),
		newButton(face, "Restart", g.restart),
		newButton(face, "Quit", func() { g.quit = true }),
	)
}
