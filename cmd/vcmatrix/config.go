package main

import (
	"github.com/spf13/cobra"

	"git.fractalqb.de/fractalqb/vercompat/vcconf"
)

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after defaults and environment overrides
(VCMATRIX_*) are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := vcconf.Load(opts.configPath)
			if err != nil {
				return err
			}
			return vcconf.Dump(cmd.OutOrStdout(), cfg)
		},
	}
}
