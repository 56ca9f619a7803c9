package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxIters = 120
	DefaultFPS      = 60.0
	DefaultRadius   = 0.40
	DefaultAccel    = 1.2
	DefaultDamping  = 0.85
	DefaultBaseRe   = -0.8
	DefaultBaseIm   = 0.156
)

type Config struct {
	// Width and Height override the detected terminal size; zero means
	// autodetect.
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	MaxIters int        `yaml:"max_iters"`
	FPS      float64    `yaml:"fps"`
	Seed     uint64     `yaml:"seed"`
	Workers  int        `yaml:"workers"`
	Walk     WalkConfig `yaml:"walk"`
}

// WalkConfig parameterizes the damped random walk of the Julia parameter.
type WalkConfig struct {
	BaseRe  float64 `yaml:"base_re"`
	BaseIm  float64 `yaml:"base_im"`
	Radius  float64 `yaml:"radius"`
	Accel   float64 `yaml:"accel"`
	Damping float64 `yaml:"damping"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxIters: DefaultMaxIters,
		FPS:      DefaultFPS,
		Walk: WalkConfig{
			BaseRe:  DefaultBaseRe,
			BaseIm:  DefaultBaseIm,
			Radius:  DefaultRadius,
			Accel:   DefaultAccel,
			Damping: DefaultDamping,
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
	if err := cfg.Validate(); err != nil {
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

func (c *Config) Validate() error {
	if c.MaxIters <= 0 {
		return fmt.Errorf("max_iters must be positive, got %d", c.MaxIters)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %f", c.FPS)
	}
	if c.Walk.Radius <= 0 {
		return fmt.Errorf("walk radius must be positive, got %f", c.Walk.Radius)
	}
	if c.Walk.Damping < 0 || c.Walk.Damping > 1 {
		return fmt.Errorf("walk damping must be in [0,1], got %f", c.Walk.Damping)
	}
	return nil
}
