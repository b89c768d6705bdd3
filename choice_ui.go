package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/game"
)

var choiceLabels = map[component.Choice]string{
	component.ChoiceSpeedBoost: "Speed Boost",
	component.ChoiceHighJump:   "High Jump",
	component.ChoiceLowGravity: "Low Gravity",
	component.ChoiceRandom:     "Random",
}

// NewChoiceUI builds the item prompt for a triggered treasure. The
// simulation stays frozen until one of the buttons is clicked.
func NewChoiceUI(g *Game, prompt game.Prompt) *ebitenui.UI {
	face := uiFace()

	text := prompt.Text
	if text == "" {
		text = "Choose an item."
	}
	children := []widget.PreferredSizeLocateableWidget{newLabel(face, text)}
	for _, choice := range prompt.Choices {
		label, ok := choiceLabels[choice]
		if !ok {
			label = string(choice)
		}
		children = append(children, newButton(face, label, func() { g.choose(choice) }))
	}
	return newPanelUI(screenWidth*3/4, screenHeight/2, children...)
}
