package generator

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	fence     = "```"
	htmlFence = fence + "html"
	closeTag  = "</html>"
)

// ResponseShape 模型原始输出的包裹形式，一次分类后按类型提取。
type ResponseShape int

const (
	// ShapeUnfenced 没有任何代码块标记。
	ShapeUnfenced ResponseShape = iota
	// ShapeFencedHTML 含 ```html 标记。
	ShapeFencedHTML
	// ShapeFencedPlain 至少一对普通 ``` 标记。
	ShapeFencedPlain
	// ShapeUnclosedFence 只有一个 ``` 标记，原文保留。
	ShapeUnclosedFence
)

func (s ResponseShape) String() string {
	switch s {
	case ShapeFencedHTML:
		return "fenced_html"
	case ShapeFencedPlain:
		return "fenced_plain"
	case ShapeUnclosedFence:
		return "unclosed_fence"
	default:
		return "unfenced"
	}
}

func (s ResponseShape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Classify inspects the trimmed text once and reports its shape.
func Classify(raw string) ResponseShape {
	text := strings.TrimSpace(raw)
	if strings.Contains(text, htmlFence) {
		return ShapeFencedHTML
	}
	switch n := strings.Count(text, fence); {
	case n >= 2:
		return ShapeFencedPlain
	case n == 1:
		return ShapeUnclosedFence
	default:
		return ShapeUnfenced
	}
}

// Normalize 从模型输出中取出 HTML 文档，并保证以 </html> 结尾。
// 不做任何校验，也不补开头的 <html> / doctype；对任意输入都返回结果。
// Empty or whitespace-only input yields exactly "</html>" (no leading
// newline), so Normalize(Normalize(x)) == Normalize(x) holds for every x.
func Normalize(raw string) string {
	html, _ := normalize(raw)
	return html
}

// NormalizeValue coerces an arbitrary collaborator result to text before
// normalizing it.
func NormalizeValue(v any) string {
	return Normalize(toText(v))
}

func normalize(raw string) (string, ResponseShape) {
	text := strings.TrimSpace(raw)
	shape := Classify(text)
	return terminate(extract(text, shape)), shape
}

func extract(text string, shape ResponseShape) string {
	switch shape {
	case ShapeFencedHTML:
		rest := text[strings.Index(text, htmlFence)+len(htmlFence):]
		if end := strings.Index(rest, fence); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	case ShapeFencedPlain:
		segment := strings.SplitN(text, fence, 3)[1]
		return strings.TrimSpace(stripLangTag(segment))
	default:
		// 单个 ``` 视为未闭合的代码块，整段保留，不丢内容。
		return text
	}
}

// stripLangTag drops a language tag such as "css" or "xml" that sits on the
// opening fence line. A first line with anything but tag characters is kept.
func stripLangTag(segment string) string {
	nl := strings.IndexByte(segment, '\n')
	if nl <= 0 {
		return segment
	}
	tag := strings.TrimRight(segment[:nl], " \t\r")
	if tag == "" {
		return segment
	}
	for _, r := range tag {
		if !isTagRune(r) {
			return segment
		}
	}
	return segment[nl+1:]
}

func isTagRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
		r == '-' || r == '_' || r == '+' || r == '.' || r == '#'
}

func terminate(doc string) string {
	doc = strings.TrimRightFunc(doc, unicode.IsSpace)
	if strings.HasSuffix(doc, closeTag) {
		return doc
	}
	if doc == "" {
		return closeTag
	}
	return doc + "\n" + closeTag
}

func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		// fmt 会调用 String()/Error() 并吞掉其中的 panic。
		return fmt.Sprint(t)
	}
}
