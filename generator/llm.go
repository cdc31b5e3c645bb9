package generator

import (
	"context"
	"time"
)

// LLMClient 抽象推理服务，便于替换/Mock。
type LLMClient interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// LLMSettings 提供给具体实现的基础配置。
type LLMSettings struct {
	Provider string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}
