// Package compiler runs the pack stage of an installer build: it loads the
// installation descriptor, flattens its packs and refuses to continue unless
// the pack set is consistent.
package compiler

import (
	"time"

	"github.com/arthur-debert/packforge/pkg/config"
	"github.com/arthur-debert/packforge/pkg/descriptor"
	"github.com/arthur-debert/packforge/pkg/exclusion"
	"github.com/arthur-debert/packforge/pkg/logging"
	"github.com/arthur-debert/packforge/pkg/packgraph"
	"github.com/arthur-debert/packforge/pkg/types"
	"github.com/spf13/afero"
)

// Result is the outcome of a successful compilation.
type Result struct {
	Descriptor string
	Packs      []types.Pack
	// Order lists pack names with dependencies first.
	Order    []string
	Duration time.Duration
}

// Compiler validates pack sets according to a configuration.
type Compiler struct {
	fs        afero.Fs
	cfg       *config.Config
	listeners []Listener
}

// New creates a compiler reading descriptors from fs.
func New(fs afero.Fs, cfg *config.Config, listeners ...Listener) *Compiler {
	return &Compiler{fs: fs, cfg: cfg, listeners: listeners}
}

// AddListener registers a listener for stage notifications.
func (c *Compiler) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Compile loads the descriptor and validates its packs. Any error means no
// installer may be produced.
func (c *Compiler) Compile(descriptorPath string) (*Result, error) {
	logger := logging.GetLogger("compiler")
	start := time.Now()

	c.notify(StageLoad, Begin, nil)
	loader := descriptor.NewLoader(c.fs,
		descriptor.WithVersion(c.cfg.Descriptor.Version),
		descriptor.WithDefaultIncludes(c.cfg.Descriptor.DefaultIncludes),
	)
	packs, err := loader.Load(descriptorPath)
	if err != nil {
		return nil, err
	}
	c.notify(StageLoad, End, packs)

	order, err := c.validate(packs)
	if err != nil {
		logger.Error().Err(err).Str("descriptor", descriptorPath).Msg("Pack validation failed")
		return nil, err
	}

	result := &Result{
		Descriptor: descriptorPath,
		Packs:      packs,
		Order:      order,
		Duration:   time.Since(start),
	}
	logger.Info().
		Str("descriptor", descriptorPath).
		Int("packs", len(packs)).
		Dur("duration", result.Duration).
		Msg("Packs verified")
	return result, nil
}

// Validate runs the dependency check and then the exclusion check over an
// already flattened pack list.
func (c *Compiler) Validate(packs []types.Pack) error {
	_, err := c.validate(packs)
	return err
}

// validate checks dependencies and exclusions and returns the install order
// taken from the single dependency walk.
func (c *Compiler) validate(packs []types.Pack) ([]string, error) {
	c.notify(StageDependencies, Begin, packs)
	graph, err := packgraph.New(packs, c.GraphOptions()...)
	if err != nil {
		return nil, err
	}
	order, err := graph.InstallOrder()
	if err != nil {
		return nil, err
	}
	c.notify(StageDependencies, End, packs)

	c.notify(StageExcludes, Begin, packs)
	if err := exclusion.CheckExcludes(packs, c.ExclusionOptions()...); err != nil {
		return nil, err
	}
	c.notify(StageExcludes, End, packs)

	return order, nil
}

// GraphOptions translates the configuration into dependency check options.
func (c *Compiler) GraphOptions() []packgraph.Option {
	var opts []packgraph.Option
	if c.cfg.Packs.Duplicates == config.DuplicatesReject {
		opts = append(opts, packgraph.RejectDuplicates())
	}
	if c.cfg.Graph.MaxDepth > 0 {
		opts = append(opts, packgraph.MaxDepth(c.cfg.Graph.MaxDepth))
	}
	return opts
}

// ExclusionOptions translates the configuration into exclusion check options.
func (c *Compiler) ExclusionOptions() []exclusion.Option {
	if c.cfg.Exclusions.Report == config.ReportAll {
		return []exclusion.Option{exclusion.ReportAll()}
	}
	return nil
}

func (c *Compiler) notify(stage Stage, phase Phase, packs []types.Pack) {
	for _, l := range c.listeners {
		l.Notify(stage, phase, packs)
	}
}
