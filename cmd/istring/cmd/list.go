package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all operations",
	Long: `Lists every operation with its parameters, a short description and
its aliases. A trailing ? marks a parameter that accepts an absent value,
brackets mark optional parameters with their default.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := newCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, newRenderer(out, false, true).Operations(reg))
	return nil
}
