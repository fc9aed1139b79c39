package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maxxl28/modeling-soccer-transfers/internal/dynamics"
	"github.com/maxxl28/modeling-soccer-transfers/internal/games"
)

const (
	DefaultHorizon = 10.0
	DefaultX0      = 0.5
	DefaultY0      = 0.5
)

type Config struct {
	Game    string       `yaml:"game"`
	Samples int          `yaml:"samples"`
	Horizon float64      `yaml:"horizon"`
	Init    InitConfig   `yaml:"init"`
	Player  PlayerConfig `yaml:"player"`
}

type InitConfig struct {
	X0 float64 `yaml:"x0"`
	Y0 float64 `yaml:"y0"`
}

// PlayerConfig carries the payoff-curve coefficients of the player game;
// ignored for the club game, whose table is fixed.
type PlayerConfig struct {
	A0    float64 `yaml:"a0"`
	D0    float64 `yaml:"d0"`
	B     float64 `yaml:"b"`
	PGrow float64 `yaml:"p_grow"`
	MGrow float64 `yaml:"m_grow"`
}

func DefaultConfig() *Config {
	ref := games.NewPlayerGame()
	return &Config{
		Game:    "club",
		Samples: dynamics.DefaultSamples,
		Horizon: DefaultHorizon,
		Init: InitConfig{
			X0: DefaultX0,
			Y0: DefaultY0,
		},
		Player: PlayerConfig{
			A0:    ref.A0,
			D0:    ref.D0,
			B:     ref.B,
			PGrow: ref.PGrow,
			MGrow: ref.MGrow,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// NewGame builds the configured game with its coefficients applied.
func (c *Config) NewGame() (games.Game, error) {
	g, err := games.New(c.Game)
	if err != nil {
		return nil, err
	}
	if cg, ok := g.(dynamics.Configurable); ok {
		coeffs := map[string]float64{
			"a0":     c.Player.A0,
			"d0":     c.Player.D0,
			"b":      c.Player.B,
			"p_grow": c.Player.PGrow,
			"m_grow": c.Player.MGrow,
		}
		for name := range cg.GetParams() {
			if v, ok := coeffs[name]; ok {
				if err := cg.SetParam(name, v); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

func (c *Config) GetInitState() dynamics.State {
	switch c.Game {
	case "player":
		return dynamics.State{c.Init.X0}
	default:
		return dynamics.State{c.Init.X0, c.Init.Y0}
	}
}

func (c *Config) Validate() error {
	if _, err := games.New(c.Game); err != nil {
		return err
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: got %g", dynamics.ErrInvalidHorizon, c.Horizon)
	}
	if c.Samples < 2 {
		return fmt.Errorf("%w: got %d", dynamics.ErrInvalidSamples, c.Samples)
	}
	return nil
}
