package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/blanktech/internal/config"
)

func configCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "write FILE",
		Short: "Write the effective configuration to FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if err := config.Save(cfg, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
			return nil
		},
	})
	return cmd
}
