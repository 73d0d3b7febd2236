package config

import (
	"github.com/arthur-debert/packforge/pkg/errors"
)

// Duplicate name policies.
const (
	DuplicatesLastWins = "last-wins"
	DuplicatesReject   = "reject"
)

// Exclusion report modes.
const (
	ReportFirst = "first"
	ReportAll   = "all"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the merged packforge configuration.
type Config struct {
	Packs      Packs      `koanf:"packs"`
	Exclusions Exclusions `koanf:"exclusions"`
	Graph      Graph      `koanf:"graph"`
	Descriptor Descriptor `koanf:"descriptor"`
	Output     Output     `koanf:"output"`
}

type Packs struct {
	Duplicates string `koanf:"duplicates"`
}

type Exclusions struct {
	Report string `koanf:"report"`
}

type Graph struct {
	MaxDepth int `koanf:"max_depth"`
}

type Descriptor struct {
	Version         string   `koanf:"version"`
	DefaultIncludes []string `koanf:"default_includes"`
}

type Output struct {
	Color string `koanf:"color"`
}

// Validate rejects values outside the accepted sets.
func (c *Config) Validate() error {
	switch c.Packs.Duplicates {
	case DuplicatesLastWins, DuplicatesReject:
	default:
		return invalid("packs.duplicates", c.Packs.Duplicates, DuplicatesLastWins, DuplicatesReject)
	}

	switch c.Exclusions.Report {
	case ReportFirst, ReportAll:
	default:
		return invalid("exclusions.report", c.Exclusions.Report, ReportFirst, ReportAll)
	}

	if c.Graph.MaxDepth < 0 {
		return errors.Newf(errors.ErrConfigValid, "graph.max_depth must not be negative, got %d", c.Graph.MaxDepth).
			WithDetail("key", "graph.max_depth")
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return invalid("output.color", c.Output.Color, ColorAuto, ColorAlways, ColorNever)
	}

	return nil
}

func invalid(key, value string, allowed ...string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid value %q for %s", value, key).
		WithDetail("key", key).
		WithDetail("allowed", allowed)
}
