// Package config loads simulation run configuration from HCL files. A file
// holds one or more named simulation blocks, each describing a strategy and
// the run parameters to evaluate it under.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the root of a run-configuration file.
type File struct {
	Simulations []Simulation `hcl:"simulation,block"`
}

// Simulation describes one simulation run.
//
//	simulation "baseline" {
//	  strategy = "threshold"
//	  hands    = 100000
//	  decks    = 6
//	  bankroll = 10000
//	  seed     = 42
//	  trials   = 8
//	}
type Simulation struct {
	Name     string  `hcl:"name,label"`
	Strategy string  `hcl:"strategy,optional"`
	Stake    float64 `hcl:"stake,optional"`
	Hands    int     `hcl:"hands,optional"`
	Decks    int     `hcl:"decks,optional"`
	Bankroll float64 `hcl:"bankroll,optional"`
	Seed     int64   `hcl:"seed,optional"`
	Trials   int     `hcl:"trials,optional"`
}

// DefaultSimulation returns the parameters used when a field (or the whole
// file) is absent.
func DefaultSimulation(name string) Simulation {
	return Simulation{
		Name:     name,
		Strategy: "threshold",
		Stake:    10,
		Hands:    10000,
		Decks:    1,
		Bankroll: 10000,
		Trials:   1,
	}
}

// Load reads and decodes an HCL run configuration. A missing file yields a
// single default simulation rather than an error.
func Load(filename string) (*File, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return &File{Simulations: []Simulation{DefaultSimulation("default")}}, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config File
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(config.Simulations) == 0 {
		config.Simulations = []Simulation{DefaultSimulation("default")}
	}
	for i := range config.Simulations {
		applyDefaults(&config.Simulations[i])
	}
	return &config, nil
}

func applyDefaults(s *Simulation) {
	defaults := DefaultSimulation(s.Name)
	if s.Strategy == "" {
		s.Strategy = defaults.Strategy
	}
	if s.Stake == 0 {
		s.Stake = defaults.Stake
	}
	if s.Hands == 0 {
		s.Hands = defaults.Hands
	}
	if s.Decks == 0 {
		s.Decks = defaults.Decks
	}
	if s.Bankroll == 0 {
		s.Bankroll = defaults.Bankroll
	}
	if s.Trials == 0 {
		s.Trials = defaults.Trials
	}
}
