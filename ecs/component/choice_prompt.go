package component

// ChoicePrompt is set while the player is being asked to pick a power-up.
// The simulation does not advance while Pending is true.
type ChoicePrompt struct {
	Pending  bool
	Context  string
	TriggerX float64
}

var ChoicePromptComponent = NewComponent[ChoicePrompt]()
