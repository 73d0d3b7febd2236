package packforge

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Verify installer pack sets"
	MsgCheckShort      = "Check a descriptor's packs for consistency"
	MsgOrderShort      = "Print the install order of a descriptor's packs"
	MsgListShort       = "List the packs declared by a descriptor"
	MsgDependentsShort = "List the packs that depend on a pack"
	MsgExplainShort    = "Explain an error code"
	MsgExplainLong     = "Explain prints background and fixes for an error code. Without an argument it lists the codes that have an explanation."
	MsgVersionShort    = "Print version information"

	MsgTopicsHeader   = "Error codes with an explanation:"
	MsgTopicItem      = "  %s\n"
	MsgNoDependents   = "No pack depends on %s.\n"
	MsgDependentsHead = "Packs depending on %s:\n"
	MsgDependentItem  = "  %s\n"

	// Flag descriptions
	MsgFlagVerbose          = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir              = "Project directory holding packforge.toml and the descriptor"
	MsgFlagColor            = "Color output: auto, always or never"
	MsgFlagRejectDuplicates = "Fail when two packs share a name instead of keeping the last"
	MsgFlagAllConflicts     = "Report every exclusion conflict instead of the first"
	MsgFlagMaxDepth         = "Fail on dependency chains deeper than this (0 disables)"
	MsgFlagSelect           = "Restrict the order to these packs and their dependencies"

	// Error messages
	MsgErrPackNotFound = "pack %q not found"
)

// DefaultDescriptor is checked when no descriptor argument is given.
const DefaultDescriptor = "install.xml"

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/order-example.txt
	msgOrderExampleRaw string
	MsgOrderExample    = strings.TrimRight(msgOrderExampleRaw, "\n")
)
