package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"webpage_generator/generator"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the selectable models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listModels(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func listModels(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMODEL ID")
	for _, m := range generator.Models() {
		fmt.Fprintf(tw, "%s\t%s\n", m.Name, m.ID)
	}
	return tw.Flush()
}
