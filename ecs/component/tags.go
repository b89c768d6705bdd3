package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// GameStateTag marks the singleton entity that holds the clock, outcome,
// progress, power-up and camera components.
type GameStateTag struct{}

var GameStateTagComponent = NewComponent[GameStateTag]()
