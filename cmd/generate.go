package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"webpage_generator/generator"
	"webpage_generator/page"
)

var (
	flagPrompt string
	flagModel  string
	flagOut    string
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate a webpage once and write it to a file",
	Long: `Generate sends the prompt to the selected model and writes the extracted
HTML document to generated_webpage.html (or --out; "-" writes to stdout).

Examples:
  webgen generate --prompt "a landing page for a bakery"
  webgen generate "a todo app" --model "Meta Llama 3.2" --out todo.html`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&flagPrompt, "prompt", "p", "", "webpage description")
	generateCmd.Flags().StringVarP(&flagModel, "model", "m", generator.DefaultModel().Name, "model name or id (see webgen models)")
	generateCmd.Flags().StringVarP(&flagOut, "out", "o", generator.DefaultFilename, `output file, "-" for stdout`)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prompt := flagPrompt
	if prompt == "" {
		prompt = strings.Join(args, " ")
	}
	// 空 prompt 不需要 token，也不发请求。
	if strings.TrimSpace(prompt) == "" {
		return generator.ErrEmptyPrompt
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log, os.Stderr)
	gen, err := newGenerator(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout(cfg))
	defer cancel()
	return generateTo(ctx, gen, prompt, flagModel, flagOut, cmd.OutOrStdout(), logger)
}

func generateTo(ctx context.Context, gen *generator.Generator, prompt, model, out string, stdout io.Writer, logger zerolog.Logger) error {
	logger.Info().Str("model", model).Msg("generating HTML")
	res, err := gen.Generate(ctx, prompt, model)
	if err != nil {
		var remote *generator.RemoteError
		if errors.As(err, &remote) {
			logger.Warn().Msg(remote.Hint())
		}
		return err
	}

	if out == "-" {
		_, err := io.WriteString(stdout, res.HTML+"\n")
		return err
	}
	if err := os.WriteFile(out, []byte(res.HTML+"\n"), 0o644); err != nil {
		return err
	}

	summary, err := page.Inspect(res.HTML)
	if err != nil {
		return err
	}
	logger.Info().
		Str("file", out).
		Str("shape", res.Shape.String()).
		Str("title", summary.Title).
		Bool("doctype", summary.HasDoctype).
		Int("style_blocks", summary.StyleBlocks).
		Msg("generated successfully")
	fmt.Fprintln(stdout, out)
	return nil
}
