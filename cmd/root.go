// Package cmd implements the webgen CLI using Cobra.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"webpage_generator/config"
	"webpage_generator/generator"
)

var (
	flagConfig   string
	flagProvider string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "webgen",
	Short: "Turn a webpage description into a standalone HTML page",
	Long: `webgen sends a description of a webpage to a hosted language model and
extracts the HTML document from the reply.

Usage:
  webgen serve
  webgen generate --prompt "a portfolio page with a navbar and about section"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (json/yaml)")
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "llm provider: huggingface, openai or mock (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logs")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig 读取配置并应用命令行覆盖。
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagProvider != "" {
		cfg.LLM.Provider = strings.ToLower(flagProvider)
	}
	if flagVerbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func newGenerator(cfg config.Config, logger zerolog.Logger) (*generator.Generator, error) {
	llm, err := buildLLM(cfg.LLM)
	if err != nil {
		return nil, err
	}
	return generator.NewGenerator(llm,
		generator.WithLogger(logger),
		generator.WithSampling(generator.Sampling{
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		}),
	)
}

func buildLLM(cfg config.LLMConfig) (generator.LLMClient, error) {
	switch cfg.Provider {
	case config.ProviderHuggingFace, config.ProviderOpenAI:
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.Provider,
			APIKey:   cfg.APIKey,
			BaseURL:  cfg.BaseURL,
			Timeout:  cfg.Timeout,
		})
	case config.ProviderMock:
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}

func requestTimeout(cfg config.Config) time.Duration {
	if cfg.LLM.Timeout > 0 {
		return cfg.LLM.Timeout
	}
	return 120 * time.Second
}
