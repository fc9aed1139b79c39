package export

import (
	"fmt"
	"strings"
)

var seriesColors = []string{
	"#00cc66", "#cc44cc", "#3388ff", "#00cccc", "#ff8800", "#ff4444",
}

// SeriesToSVG renders one or more series against a shared time axis as
// polyline paths, all scaled to a common vertical range.
func SeriesToSVG(times []float64, names []string, series map[string][]float64, width, height int) string {
	if len(times) < 2 || len(names) == 0 {
		return ""
	}

	minY, maxY := series[names[0]][0], series[names[0]][0]
	for _, name := range names {
		for _, v := range series[name] {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY

	minT, maxT := times[0], times[len(times)-1]
	rangeT := maxT - minT
	if rangeT == 0 {
		rangeT = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, name := range names {
		color := seriesColors[i%len(seriesColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for j, v := range series[name] {
			x := (times[j] - minT) / rangeT * float64(width)
			y := float64(height) - (v-minY)/rangeY*float64(height)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
		sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 16+i*16, color, name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
