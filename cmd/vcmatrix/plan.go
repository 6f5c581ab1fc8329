package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

func newPlanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <task>...",
		Short: "Print the execution order of tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, prj, err := opts.load(cmd)
			if err != nil {
				return err
			}
			plan, err := prj.Plan(args...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			verify := color.New(color.FgGreen).SprintFunc()
			for i, t := range plan {
				name := t.Name()
				if t.Group == vckore.VerificationGroup {
					name = verify(name)
				}
				fmt.Fprintf(w, "%3d %s\n", i+1, name)
			}
			return nil
		},
	}
}
