package games

import (
	"fmt"
	"math"

	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
)

// Strategy indices into the club payoff table.
const (
	Youth = 0
	Star  = 1
)

// Payoffs maps a (Saudi strategy, Europe strategy) pair to the pair of
// rewards: Payoffs[s][e] = {Saudi payoff, Europe payoff}.
type Payoffs [2][2][2]float64

// DefaultPayoffs is the reference table: mutual youth development pays both
// sides, poaching stars pays the poacher, and a bidding war on stars leaves
// both nearly empty-handed.
func DefaultPayoffs() Payoffs {
	return Payoffs{
		{{4, 4}, {2, 5}}, // Youth vs Youth, Youth vs Star
		{{5, 2}, {1, 1}}, // Star vs Youth, Star vs Star
	}
}

// ClubGame is the two-population transfer-strategy model. State is
// {x, y} where x is the probability a Saudi club plays Youth and y the
// probability a European club plays Youth.
type ClubGame struct {
	Payoffs Payoffs
}

func NewClubGame() *ClubGame {
	return &ClubGame{Payoffs: DefaultPayoffs()}
}

func (g *ClubGame) StateDim() int { return 2 }

func (g *ClubGame) StateLabels() []string {
	return []string{"saudi_youth", "europe_youth"}
}

func (g *ClubGame) DefaultState() dynamics.State {
	return dynamics.State{0.5, 0.5}
}

// Derive is the two-population replicator equation: each share grows in
// proportion to how much the Youth strategy's expected payoff exceeds that
// population's average payoff.
func (g *ClubGame) Derive(s dynamics.State, _ float64) dynamics.State {
	x, y := s[0], s[1]
	p := g.Payoffs

	saudiYouth := y*p[Youth][Youth][0] + (1-y)*p[Youth][Star][0]
	saudiStar := y*p[Star][Youth][0] + (1-y)*p[Star][Star][0]
	saudiAvg := x*saudiYouth + (1-x)*saudiStar

	euroYouth := x*p[Youth][Youth][1] + (1-x)*p[Star][Youth][1]
	euroStar := x*p[Youth][Star][1] + (1-x)*p[Star][Star][1]
	euroAvg := y*euroYouth + (1-y)*euroStar

	dx := x * (1 - x) * (saudiYouth - saudiAvg)
	dy := y * (1 - y) * (euroYouth - euroAvg)

	return dynamics.State{dx, dy}
}

// Clamp keeps both strategy shares inside [0,1] after each Euler step.
func (g *ClubGame) Clamp(s dynamics.State) dynamics.State {
	return dynamics.State{clamp01(s[0]), clamp01(s[1])}
}

func (g *ClubGame) ValidateInit(s dynamics.State) error {
	for i, v := range s {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s = %g", dynamics.ErrInitOutOfRange, g.StateLabels()[i], v)
		}
	}
	return nil
}

// AuxNames lists the four joint strategy-pair shares, derived from the
// marginals under an independence assumption.
func (g *ClubGame) AuxNames() []string {
	return []string{"youth_youth", "youth_star", "star_youth", "star_star"}
}

func (g *ClubGame) Aux(s dynamics.State, _ float64) []float64 {
	x, y := s[0], s[1]
	return []float64{x * y, x * (1 - y), (1 - x) * y, (1 - x) * (1 - y)}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
