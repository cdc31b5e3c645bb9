package generator

import (
	"fmt"
	"strings"
)

// Message 单条 chat 消息。
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

var requirements = []string{
	"Include complete HTML structure with <!DOCTYPE html>",
	"Add embedded CSS in <style> tags",
	"Make it responsive and visually appealing",
	"Return ONLY the HTML code, no explanations",
}

// BuildInstruction 把用户描述和固定要求拼成一条指令。
// 调用方负责在此之前拒绝空 prompt。
func BuildInstruction(prompt string) string {
	var sb strings.Builder
	sb.WriteString("Generate a complete HTML5 webpage for the following request:\n")
	sb.WriteString(prompt)
	sb.WriteString("\n\nRequirements:\n")
	for _, r := range requirements {
		sb.WriteString(fmt.Sprintf("- %s\n", r))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// BuildMessages wraps the instruction in a one-message chat payload.
func BuildMessages(prompt string) []Message {
	return []Message{{Role: "user", Content: BuildInstruction(prompt)}}
}

// BuildRequest 组装完整的 completion 请求；非法的采样参数回落到默认值。
func BuildRequest(model Model, prompt string, s Sampling) Request {
	if s.MaxTokens <= 0 {
		s.MaxTokens = DefaultSampling.MaxTokens
	}
	if s.Temperature < 0 {
		s.Temperature = DefaultSampling.Temperature
	}
	return Request{
		Model:       model.ID,
		Messages:    BuildMessages(prompt),
		MaxTokens:   s.MaxTokens,
		Temperature: s.Temperature,
	}
}
