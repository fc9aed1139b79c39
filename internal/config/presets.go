package config

import "sort"

var Presets = map[string]map[string]*Config{
	"club": {
		"even": {
			Game: "club", Horizon: 10,
			Init: InitConfig{X0: 0.5, Y0: 0.5},
		},
		"youth_heavy": {
			Game: "club", Horizon: 20,
			Init: InitConfig{X0: 0.9, Y0: 0.9},
		},
		"asymmetric": {
			Game: "club", Horizon: 15,
			Init: InitConfig{X0: 0.8, Y0: 0.2},
		},
	},
	"player": {
		"reference": {
			Game: "player", Horizon: 10,
			Init:   InitConfig{X0: 0.6},
			Player: PlayerConfig{A0: 2.5, D0: 2.0, B: 1.4, PGrow: 1.0, MGrow: 5.0},
		},
		"prestige_boom": {
			Game: "player", Horizon: 25,
			Init:   InitConfig{X0: 0.4},
			Player: PlayerConfig{A0: 3.0, D0: 1.5, B: 1.0, PGrow: 6.0, MGrow: 0.5},
		},
		"money_rush": {
			Game: "player", Horizon: 25,
			Init:   InitConfig{X0: 0.7},
			Player: PlayerConfig{A0: 1.5, D0: 2.5, B: 1.2, PGrow: 0.5, MGrow: 8.0},
		},
	},
}

func GetPreset(game, preset string) *Config {
	gamePresets, ok := Presets[game]
	if !ok {
		return nil
	}
	cfg, ok := gamePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(game string) []string {
	gamePresets, ok := Presets[game]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(gamePresets))
	for name := range gamePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
