package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"webpage_generator/generator"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Extract the HTML document from a raw model reply (file or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		return normalizeStream(in, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func normalizeStream(in io.Reader, out io.Writer) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, generator.Normalize(string(raw))+"\n")
	return err
}
