package packforge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/packforge/internal/version"
	"github.com/arthur-debert/packforge/pkg/config"
	"github.com/arthur-debert/packforge/pkg/logging"
	"github.com/arthur-debert/packforge/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbosity        int
	dir              string
	color            string
	rejectDuplicates bool
	allConflicts     bool
	maxDepth         int
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "packforge",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.dir, "dir", "C", ".", MsgFlagDir)
	flags.StringVar(&opts.color, "color", config.ColorAuto, MsgFlagColor)
	flags.BoolVar(&opts.rejectDuplicates, "reject-duplicates", false, MsgFlagRejectDuplicates)
	flags.BoolVar(&opts.allConflicts, "all-conflicts", false, MsgFlagAllConflicts)
	flags.IntVar(&opts.maxDepth, "max-depth", 0, MsgFlagMaxDepth)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddCommand(newCheckCmd(fs, opts))
	rootCmd.AddCommand(newOrderCmd(fs, opts))
	rootCmd.AddCommand(newListCmd(fs, opts))
	rootCmd.AddCommand(newDependentsCmd(fs, opts))
	rootCmd.AddCommand(newExplainCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// overrides returns the config keys set explicitly on the command line.
func (o *globalOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	values := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("color") {
		values["output.color"] = o.color
	}
	if flags.Changed("reject-duplicates") && o.rejectDuplicates {
		values["packs.duplicates"] = config.DuplicatesReject
	}
	if flags.Changed("all-conflicts") && o.allConflicts {
		values["exclusions.report"] = config.ReportAll
	}
	if flags.Changed("max-depth") {
		values["graph.max_depth"] = o.maxDepth
	}
	return values
}

// loadConfig merges configuration for the project directory and applies the
// resulting color mode to stdout.
func (o *globalOptions) loadConfig(cmd *cobra.Command, fs afero.Fs) (*config.Config, error) {
	cfg, err := config.LoadWithOverrides(fs, o.dir, o.overrides(cmd))
	if err != nil {
		return nil, err
	}
	output.Configure(cfg.Output.Color, os.Stdout)
	return cfg, nil
}

// colorEnabled applies the --color flag alone, for commands that never
// read a project config.
func (o *globalOptions) colorEnabled() bool {
	return output.Configure(o.color, os.Stdout)
}

// descriptorPath resolves the optional descriptor argument against --dir.
func (o *globalOptions) descriptorPath(args []string) string {
	path := DefaultDescriptor
	if len(args) > 0 {
		path = args[0]
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.dir, path)
}
