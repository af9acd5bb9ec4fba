package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okhalaf/mreval/internal/params"
)

const (
	DefaultSolverBinary  = "openmc"
	DefaultSolverTimeout = 4 * time.Hour
	DefaultThreads       = 4
	DefaultWorkers       = 2
	DefaultOutputDir     = "runs"
)

// Config is the run configuration: solver binding, execution slots, and
// output policy, together with the baseline parameter sets the sweep
// perturbs.
type Config struct {
	Solver   SolverConfig    `yaml:"solver"`
	Workers  int             `yaml:"workers"`
	Output   OutputConfig    `yaml:"output"`
	Baseline params.Baseline `yaml:"baseline"`
}

type SolverConfig struct {
	Binary        string   `yaml:"binary"`
	CrossSections string   `yaml:"cross_sections"`
	Threads       int      `yaml:"threads"`
	Timeout       Duration `yaml:"timeout"`
}

// Duration reads and writes time.Duration as a human string ("30m", "4h").
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

type OutputConfig struct {
	Dir           string `yaml:"dir"`
	KeepWorkdirs  bool   `yaml:"keep_workdirs"`
	KeepOnFailure bool   `yaml:"keep_on_failure"`
}

func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Binary:  DefaultSolverBinary,
			Threads: DefaultThreads,
			Timeout: Duration(DefaultSolverTimeout),
		},
		Workers: DefaultWorkers,
		Output: OutputConfig{
			Dir:           DefaultOutputDir,
			KeepOnFailure: true,
		},
		Baseline: params.DefaultBaseline(),
	}
}

// Load reads a config file over the defaults: absent keys keep their
// default values.
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

// Save writes the config, defaults included, so a saved file documents the
// full effective configuration.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
