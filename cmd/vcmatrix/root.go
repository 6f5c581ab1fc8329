package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"git.fractalqb.de/fractalqb/vercompat"
	"git.fractalqb.de/fractalqb/vercompat/vcconf"
	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

type options struct {
	configPath string
	trace      string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "vcmatrix",
		Short: "Version compatibility matrix generator",
		Long: `vcmatrix reads a version compatibility config and generates the adapter
units and compatibility test tasks of a Java project. It lists the generated
tasks, prints execution plans and writes the graph for graphviz.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "vcmatrix.yaml",
		"Version compatibility config file")
	cmd.PersistentFlags().StringVar(&opts.trace, "trace", "warn",
		"Trace level: off, warn, info or debug")

	cmd.AddCommand(newTasksCmd(opts))
	cmd.AddCommand(newPlanCmd(opts))
	cmd.AddCommand(newDotCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newWatchCmd(opts))
	return cmd
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (opts *options) tracer(w io.Writer) (*vercompat.WriteTracer, error) {
	tr := &vercompat.WriteTracer{W: w, Log: vckore.DefaultTraceLog}
	if err := tr.ParseLogFlag(opts.trace); err != nil {
		return nil, err
	}
	return tr, nil
}

// load reads the config and generates the project from it.
func (opts *options) load(cmd *cobra.Command) (*vcconf.Config, *vckore.Project, error) {
	cfg, err := vcconf.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	tr, err := opts.tracer(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	_, prj, err := vcconf.NewExtension(cfg, vckore.NewTrace(cmd.Context(), tr))
	if err != nil {
		return nil, nil, fmt.Errorf("applying %s: %w", opts.configPath, err)
	}
	return cfg, prj, nil
}
