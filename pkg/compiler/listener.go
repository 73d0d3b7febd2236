package compiler

import (
	"github.com/arthur-debert/packforge/pkg/logging"
	"github.com/arthur-debert/packforge/pkg/types"
)

// Stage names a step of the pack stage.
type Stage string

const (
	StageLoad         Stage = "loadPacks"
	StageDependencies Stage = "checkDependencies"
	StageExcludes     Stage = "checkExcludes"
)

// Phase tells whether a stage is starting or has completed.
type Phase int

const (
	Begin Phase = iota
	End
)

func (p Phase) String() string {
	if p == Begin {
		return "BEGIN"
	}
	return "END"
}

// Listener observes compilation stages. End is only sent when the stage
// succeeded.
type Listener interface {
	Notify(stage Stage, phase Phase, packs []types.Pack)
}

// LogListener writes stage notifications to the debug log.
type LogListener struct{}

func (LogListener) Notify(stage Stage, phase Phase, packs []types.Pack) {
	lg := logging.GetLogger("compiler")
	lg.Debug().
		Str("stage", string(stage)).
		Str("phase", phase.String()).
		Int("packs", len(packs)).
		Msg("Stage notification")
}
