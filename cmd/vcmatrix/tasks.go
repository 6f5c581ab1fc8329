package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"git.fractalqb.de/fractalqb/vercompat"
	"git.fractalqb.de/fractalqb/vercompat/vckore"
)

func newTasksCmd(opts *options) *cobra.Command {
	var (
		groups  []string
		all     bool
		details bool
	)
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks of the project by group",
		Long: `List the tasks of the generated project by group. Without flags only the
verification tasks are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, prj, err := opts.load(cmd)
			if err != nil {
				return err
			}
			heading := color.New(color.FgCyan, color.Bold)
			rep := vercompat.TaskReport{
				Groups:  groups,
				Other:   all,
				Details: details,
				Heading: func(title string) string { return heading.Sprint(title) },
			}
			if all {
				rep.Groups = nil
			} else if len(rep.Groups) == 0 {
				rep.Groups = []string{vckore.VerificationGroup}
			}
			return rep.Write(cmd.OutOrStdout(), prj)
		},
	}
	cmd.Flags().StringSliceVarP(&groups, "group", "g", nil, "List tasks of these groups")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List all tasks, also those without group")
	cmd.Flags().BoolVarP(&details, "details", "d", false, "Show dependencies and classpath of tasks")
	return cmd
}
