package packforge

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/packforge/internal/version"
	"github.com/arthur-debert/packforge/pkg/compiler"
	"github.com/arthur-debert/packforge/pkg/config"
	"github.com/arthur-debert/packforge/pkg/descriptor"
	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/arthur-debert/packforge/pkg/output"
	"github.com/arthur-debert/packforge/pkg/packgraph"
	"github.com/arthur-debert/packforge/pkg/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newCheckCmd(fs afero.Fs, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check [descriptor]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd, fs)
			if err != nil {
				return err
			}

			result, err := compiler.New(fs, cfg, compiler.LogListener{}).Compile(opts.descriptorPath(args))
			if err != nil {
				return err
			}
			return output.NewRenderer(cmd.OutOrStdout()).Success(result)
		},
	}
}

func newOrderCmd(fs afero.Fs, opts *globalOptions) *cobra.Command {
	var selected []string

	cmd := &cobra.Command{
		Use:     "order [descriptor]",
		Short:   MsgOrderShort,
		Example: MsgOrderExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd, fs)
			if err != nil {
				return err
			}

			c := compiler.New(fs, cfg, compiler.LogListener{})
			result, err := c.Compile(opts.descriptorPath(args))
			if err != nil {
				return err
			}

			order := result.Order
			if len(selected) > 0 {
				order, err = packgraph.Closure(result.Packs, selected, c.GraphOptions()...)
				if err != nil {
					return err
				}
			}
			return output.NewRenderer(cmd.OutOrStdout()).Order(order)
		},
	}
	cmd.Flags().StringSliceVarP(&selected, "select", "s", nil, MsgFlagSelect)
	return cmd
}

func newListCmd(fs afero.Fs, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [descriptor]",
		Short: MsgListShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packs, _, err := loadPacks(cmd, fs, opts, args)
			if err != nil {
				return err
			}
			return output.NewRenderer(cmd.OutOrStdout()).PackTable(packs)
		},
	}
}

func newDependentsCmd(fs afero.Fs, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dependents <pack> [descriptor]",
		Short: MsgDependentsShort,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			packs, cfg, err := loadPacks(cmd, fs, opts, args[1:])
			if err != nil {
				return err
			}

			rev, err := packgraph.Dependents(packs, compiler.New(fs, cfg).GraphOptions()...)
			if err != nil {
				return err
			}
			dependents, ok := rev[name]
			if !ok {
				return errors.Newf(errors.ErrPackNotFound, MsgErrPackNotFound, name).
					WithDetail("available", types.PackNames(packs))
			}

			out := cmd.OutOrStdout()
			if len(dependents) == 0 {
				_, err = fmt.Fprintf(out, MsgNoDependents, name)
				return err
			}
			fmt.Fprintf(out, MsgDependentsHead, name)
			for _, dep := range dependents {
				fmt.Fprintf(out, MsgDependentItem, dep)
			}
			return nil
		},
	}
}

func newExplainCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: MsgExplainShort,
		Long:  MsgExplainLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				codes, err := output.Topics()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, MsgTopicsHeader)
				for _, code := range codes {
					fmt.Fprintf(out, MsgTopicItem, code)
				}
				return nil
			}

			code := errors.ErrorCode(strings.ToUpper(strings.ReplaceAll(args[0], "-", "_")))
			return output.NewRenderer(out).Explain(code, opts.colorEnabled())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "packforge version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

// loadPacks reads the flattened pack list without validating it.
func loadPacks(cmd *cobra.Command, fs afero.Fs, opts *globalOptions, args []string) ([]types.Pack, *config.Config, error) {
	cfg, err := opts.loadConfig(cmd, fs)
	if err != nil {
		return nil, nil, err
	}
	loader := descriptor.NewLoader(fs,
		descriptor.WithVersion(cfg.Descriptor.Version),
		descriptor.WithDefaultIncludes(cfg.Descriptor.DefaultIncludes),
	)
	packs, err := loader.Load(opts.descriptorPath(args))
	if err != nil {
		return nil, nil, err
	}
	return packs, cfg, nil
}
