package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xsect",
	Short: "Cross-section classifier for sheet-metal and structural stock",
	Long: `xsect - cross-section shape classifier and profile metrology tool

Given the solid-body geometry of a sheet-metal or structural-shape part,
xsect decides whether its cross-section is round, square, rectangular,
angle- or channel-shaped and measures the metrics a costing system needs:

  - principal section dimensions and wall thickness
  - stock (material) length along the extrusion axis
  - cut-length perimeter and hole count

Stock bodies are described in a small Lisp job script; see the examples
directory for the format.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
