package games

import (
	"fmt"

	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
)

// Game is a dynamics.System with the extras every model here provides.
type Game interface {
	dynamics.System
	dynamics.Observable
	dynamics.Validator
	dynamics.Labeled
	DefaultState() dynamics.State
}

var constructors = map[string]func() Game{
	"club":   func() Game { return NewClubGame() },
	"player": func() Game { return NewPlayerGame() },
}

var descriptions = map[string]string{
	"club":   "club transfer strategies (youth vs star)",
	"player": "player motivations (prestige vs money)",
}

// New builds a fresh game by name.
func New(name string) (Game, error) {
	fn, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown game: %s", name)
	}
	return fn(), nil
}

func List() []string {
	return []string{"club", "player"}
}

func Describe(name string) string {
	return descriptions[name]
}
