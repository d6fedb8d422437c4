package system

import "github.com/spf13/cobra"

func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Database setup and tooling commands",
	}
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewGenDocsCommand())
	return cmd
}
