package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig is the HCL layout for solve runs:
//
//	solve {
//	  iterations = 20000
//	  target     = 0.00005
//	  workers    = 4
//	  compressed = true
//	}
//
//	export {
//	  path = "strategy.json"
//	}
//
// Attributes are optional; anything absent keeps the flag value.
type fileConfig struct {
	Solve  *solveBlock  `hcl:"solve,block"`
	Export *exportBlock `hcl:"export,block"`
}

type solveBlock struct {
	Iterations *int     `hcl:"iterations,optional"`
	Target     *float64 `hcl:"target,optional"`
	Workers    *int     `hcl:"workers,optional"`
	Compressed *bool    `hcl:"compressed,optional"`
}

type exportBlock struct {
	Path string `hcl:"path"`
}

// loadConfig parses and validates an HCL config file.
func loadConfig(path string) (*fileConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", path, diags.Error())
	}

	var cfg fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", path, diags.Error())
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *fileConfig) validate() error {
	if c.Solve != nil {
		if c.Solve.Iterations != nil && *c.Solve.Iterations <= 0 {
			return fmt.Errorf("iterations must be positive, got %d", *c.Solve.Iterations)
		}
		if c.Solve.Target != nil && *c.Solve.Target < 0 {
			return fmt.Errorf("target must not be negative, got %v", *c.Solve.Target)
		}
		if c.Solve.Workers != nil && *c.Solve.Workers < 1 {
			return fmt.Errorf("workers must be at least 1, got %d", *c.Solve.Workers)
		}
	}
	if c.Export != nil && c.Export.Path == "" {
		return fmt.Errorf("export path must not be empty")
	}
	return nil
}

// apply overlays the file's values onto the flag values.
func (c *SolveCmd) apply(fc *fileConfig) {
	if fc.Solve != nil {
		if fc.Solve.Iterations != nil {
			c.Iterations = *fc.Solve.Iterations
		}
		if fc.Solve.Target != nil {
			c.Target = *fc.Solve.Target
		}
		if fc.Solve.Workers != nil {
			c.Workers = *fc.Solve.Workers
		}
		if fc.Solve.Compressed != nil {
			c.Compressed = *fc.Solve.Compressed
		}
	}
	if fc.Export != nil && c.Export == "" {
		c.Export = fc.Export.Path
	}
}
