package main

import (
	"github.com/spf13/cobra"

	"git.fractalqb.de/fractalqb/vercompat"
)

func newDotCmd(opts *options) *cobra.Command {
	dia := vercompat.Diagrammer{}
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Write the project graph in graphviz dot format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, prj, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return dia.WriteDot(cmd.OutOrStdout(), prj)
		},
	}
	cmd.Flags().StringVar(&dia.RankDir, "rankdir", "", "Graphviz rankdir, e.g. LR")
	cmd.Flags().BoolVar(&dia.Tasks, "tasks", true, "Draw tasks and their dependencies")
	return cmd
}
