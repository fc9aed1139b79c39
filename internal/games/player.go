package games

import (
	"fmt"
	"math"

	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
)

// PlayerGame is the single-population player-motivation model. State is {x}
// where x is the fraction of players motivated by prestige rather than money.
//
// Unlike the constant club table, the same-strategy payoffs depend on the
// current mix: prestige-vs-prestige pays A0 + PGrow*x and money-vs-money pays
// D0 + MGrow*(1-x). The cross payoff B is constant.
//
// The state is NOT clamped between steps. With a coarse enough grid x can
// legitimately leave [0,1]; that is the usual accuracy limit of fixed-step
// Euler integration surfacing, and callers get to see it rather than having
// it silently suppressed.
type PlayerGame struct {
	A0    float64 // prestige-vs-prestige base payoff
	D0    float64 // money-vs-money base payoff
	B     float64 // cross payoff
	PGrow float64 // prestige payoff growth with prestige share
	MGrow float64 // money payoff growth with money share
}

func NewPlayerGame() *PlayerGame {
	return &PlayerGame{
		A0:    2.5,
		D0:    2.0,
		B:     1.4,
		PGrow: 1.0,
		MGrow: 5.0,
	}
}

func (g *PlayerGame) StateDim() int { return 1 }

func (g *PlayerGame) StateLabels() []string {
	return []string{"prestige"}
}

func (g *PlayerGame) DefaultState() dynamics.State {
	return dynamics.State{0.6}
}

func (g *PlayerGame) Derive(s dynamics.State, _ float64) dynamics.State {
	x := s[0]
	fP, fM, _, _ := g.payoffs(x)
	return dynamics.State{x * (1 - x) * (fP - fM)}
}

func (g *PlayerGame) payoffs(x float64) (fP, fM, a, d float64) {
	a = g.A0 + g.PGrow*x
	d = g.D0 + g.MGrow*(1-x)
	fP = a*x + g.B*(1-x)
	fM = g.B*x + d*(1-x)
	return fP, fM, a, d
}

func (g *PlayerGame) ValidateInit(s dynamics.State) error {
	for _, coeff := range []float64{g.A0, g.D0, g.B, g.PGrow, g.MGrow} {
		if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
			return fmt.Errorf("%w: payoff coefficient", dynamics.ErrNotFinite)
		}
	}
	if s[0] < 0 || s[0] > 1 {
		return fmt.Errorf("%w: prestige = %g", dynamics.ErrInitOutOfRange, s[0])
	}
	return nil
}

func (g *PlayerGame) AuxNames() []string {
	return []string{"avg_prestige", "avg_money", "pvp", "mvm"}
}

func (g *PlayerGame) Aux(s dynamics.State, _ float64) []float64 {
	fP, fM, a, d := g.payoffs(s[0])
	return []float64{fP, fM, a, d}
}

func (g *PlayerGame) GetParams() map[string]float64 {
	return map[string]float64{
		"a0":     g.A0,
		"d0":     g.D0,
		"b":      g.B,
		"p_grow": g.PGrow,
		"m_grow": g.MGrow,
	}
}

func (g *PlayerGame) SetParam(name string, value float64) error {
	switch name {
	case "a0":
		g.A0 = value
	case "d0":
		g.D0 = value
	case "b":
		g.B = value
	case "p_grow":
		g.PGrow = value
	case "m_grow":
		g.MGrow = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
