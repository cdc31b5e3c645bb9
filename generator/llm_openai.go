package generator

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// HuggingFaceBaseURL is the OpenAI-compatible Hugging Face inference router.
const HuggingFaceBaseURL = "https://router.huggingface.co/v1/"

// OpenAILLM implements LLMClient using the official openai-go SDK (chat completions).
// Any OpenAI-compatible endpoint works, the Hugging Face router included.
type OpenAILLM struct {
	Opts []option.RequestOption
}

func NewOpenAILLMFromConfig(cfg *LLMSettings) (*OpenAILLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("api token missing; provide llm.api_key or HF_TOKEN")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" && (cfg.Provider == "" || cfg.Provider == "huggingface") {
		baseURL = HuggingFaceBaseURL
	}
	// 不做自动重试，失败直接交给用户换模型重试。
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	return &OpenAILLM{Opts: opts}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, req Request) (string, error) {
	if req.Model == "" {
		return "", errors.New("llm model is required")
	}
	client := openai.NewClient(o.Opts...)

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case "assistant":
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    msgs,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion %s: empty choices", req.Model)
	}
	return resp.Choices[0].Message.Content, nil
}
