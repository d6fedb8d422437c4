package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func NewGenDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Generate Markdown docs for the CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("outdir")
			if outDir == "" {
				outDir = "docs/cli"
			}
			outDir, err := filepath.Abs(outDir)
			if err != nil {
				return fmt.Errorf("resolve output dir: %w", err)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir %q: %w", outDir, err)
			}
			// cmd.Root() walks up to the full command tree.
			if err := doc.GenMarkdownTree(cmd.Root(), outDir); err != nil {
				return fmt.Errorf("generate CLI docs: %w", err)
			}
			fmt.Printf("CLI docs written to %s\n", outDir)
			return nil
		},
	}

	cmd.Flags().String("outdir", "docs/cli", "output directory for generated docs")

	return cmd
}
