package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingToken 没有推理服务的 token，启动即失败。
var ErrMissingToken = errors.New("hugging face token not found")

// Config holds everything the application reads at startup.
type Config struct {
	LLM        LLMConfig `mapstructure:"llm"`
	Log        LogConfig `mapstructure:"log"`
	ServerAddr string    `mapstructure:"server_addr"`
}

// LLMConfig 推理服务配置。
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderMock        = "mock"
)

// Load reads .env, then the optional config file, then WEBGEN_* environment
// overrides. HF_TOKEN is accepted for llm.api_key.
func Load(path string) (Config, error) {
	// .env 缺失不算错误。
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("llm.provider", ProviderHuggingFace)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_tokens", 2048)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.timeout", 120*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("server_addr", ":8080")

	v.SetEnvPrefix("WEBGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("llm.api_key", "WEBGEN_LLM_API_KEY", "HF_TOKEN"); err != nil {
		return Config{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	return cfg, nil
}

// Validate 检查启动所需的最小配置。
func (c Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderHuggingFace, ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return ErrMissingToken
		}
	case ProviderMock:
	default:
		return fmt.Errorf("llm provider %q not supported", c.LLM.Provider)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive, got %d", c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be within [0, 2], got %v", c.LLM.Temperature)
	}
	return nil
}
