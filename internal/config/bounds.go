package config

// Bound is the documented range and adjustment step of one user-editable
// parameter, as presented by the interactive parameter panel.
type Bound struct {
	Min  float64
	Max  float64
	Step float64
}

// Clamp snaps v into the bound's range.
func (b Bound) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Bounds returns the editable parameters of a game in display order, with
// their ranges.
func Bounds(game string) ([]string, map[string]Bound) {
	switch game {
	case "player":
		return []string{"a0", "d0", "b", "p_grow", "m_grow", "x0", "horizon"},
			map[string]Bound{
				"a0":      {Min: 0.1, Max: 5.0, Step: 0.05},
				"d0":      {Min: 0.1, Max: 5.0, Step: 0.05},
				"b":       {Min: 0.1, Max: 5.0, Step: 0.05},
				"p_grow":  {Min: 0.1, Max: 10.0, Step: 0.05},
				"m_grow":  {Min: 0.1, Max: 10.0, Step: 0.05},
				"x0":      {Min: 0, Max: 1, Step: 0.05},
				"horizon": {Min: 1, Max: 50, Step: 1},
			}
	default:
		return []string{"x0", "y0", "horizon"},
			map[string]Bound{
				"x0":      {Min: 0, Max: 1, Step: 0.01},
				"y0":      {Min: 0, Max: 1, Step: 0.01},
				"horizon": {Min: 1, Max: 40, Step: 1},
			}
	}
}

// GetParam reads a bounded parameter off the config by name.
func (c *Config) GetParam(name string) float64 {
	switch name {
	case "x0":
		return c.Init.X0
	case "y0":
		return c.Init.Y0
	case "horizon":
		return c.Horizon
	case "a0":
		return c.Player.A0
	case "d0":
		return c.Player.D0
	case "b":
		return c.Player.B
	case "p_grow":
		return c.Player.PGrow
	case "m_grow":
		return c.Player.MGrow
	}
	return 0
}

// SetParam writes a bounded parameter by name; unknown names are ignored.
func (c *Config) SetParam(name string, v float64) {
	switch name {
	case "x0":
		c.Init.X0 = v
	case "y0":
		c.Init.Y0 = v
	case "horizon":
		c.Horizon = v
	case "a0":
		c.Player.A0 = v
	case "d0":
		c.Player.D0 = v
	case "b":
		c.Player.B = v
	case "p_grow":
		c.Player.PGrow = v
	case "m_grow":
		c.Player.MGrow = v
	}
}
