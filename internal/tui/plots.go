package tui

import (
	"strings"

	"github.com/guptarohit/asciigraph"
)

// renderPlots draws the game's series as two stacked asciigraph panels:
// strategy shares on top, derived series below.
func (m model) renderPlots() string {
	plotWidth := m.width - 14
	if plotWidth < 50 {
		plotWidth = 50
	}
	plotHeight := (m.height - 18) / 2
	if plotHeight < 6 {
		plotHeight = 6
	}

	var b strings.Builder

	switch m.cfg.Game {
	case "player":
		prestige := m.traj.Column(0)
		money := make([]float64, len(prestige))
		for i, v := range prestige {
			money[i] = 1 - v
		}
		b.WriteString(indent(asciigraph.PlotMany(
			[][]float64{prestige, money},
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("population fraction: prestige vs money"),
		)))
		b.WriteString("\n\n")
		b.WriteString(indent(asciigraph.PlotMany(
			[][]float64{
				m.traj.Series("avg_prestige"),
				m.traj.Series("avg_money"),
				m.traj.Series("pvp"),
				m.traj.Series("mvm"),
			},
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("payoffs: fP fM a d"),
		)))
	default:
		b.WriteString(indent(asciigraph.PlotMany(
			[][]float64{m.traj.Column(0), m.traj.Column(1)},
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("P(youth): saudi, europe"),
		)))
		b.WriteString("\n\n")
		b.WriteString(indent(asciigraph.PlotMany(
			[][]float64{
				m.traj.Series("youth_youth"),
				m.traj.Series("youth_star"),
				m.traj.Series("star_youth"),
				m.traj.Series("star_star"),
			},
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("joint strategy shares"),
		)))
	}
	b.WriteString("\n")

	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "   " + line
	}
	return strings.Join(lines, "\n")
}
