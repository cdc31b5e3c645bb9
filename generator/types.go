package generator

import "time"

// DefaultFilename 下载文件的固定文件名。
const DefaultFilename = "generated_webpage.html"

// Sampling holds the generation knobs forwarded to the inference endpoint.
type Sampling struct {
	MaxTokens   int
	Temperature float64
}

// DefaultSampling 与线上默认值一致。
var DefaultSampling = Sampling{MaxTokens: 2048, Temperature: 0.7}

// Request 是一次 chat completion 调用的完整参数。
type Request struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Result is a finished generation, ready for presentation.
type Result struct {
	Model     Model         `json:"model"`
	Prompt    string        `json:"prompt"`
	Raw       string        `json:"raw"`
	HTML      string        `json:"html"`
	Shape     ResponseShape `json:"shape"`
	Filename  string        `json:"filename"`
	CreatedAt time.Time     `json:"created_at"`
}
