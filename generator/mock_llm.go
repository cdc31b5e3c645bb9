package generator

import (
	"context"
	"html"
	"strings"
)

// MockLLM 本地调试用，不调用外部模型，按模型常见格式返回带 ```html 包裹的页面。
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, req Request) (string, error) {
	var prompt string
	if len(req.Messages) > 0 {
		prompt = req.Messages[len(req.Messages)-1].Content
	}
	var sb strings.Builder
	sb.WriteString("Here is your webpage:\n\n")
	sb.WriteString("```html\n")
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("<title>Mock Page</title>\n")
	sb.WriteString("<style>body{font-family:sans-serif;margin:2rem;}pre{white-space:pre-wrap;}</style>\n")
	sb.WriteString("</head>\n<body>\n<h1>Mock Page</h1>\n<pre>")
	sb.WriteString(html.EscapeString(prompt))
	sb.WriteString("</pre>\n</body>\n</html>\n")
	sb.WriteString("```\n")
	return sb.String(), nil
}
