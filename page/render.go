// Package page turns a normalized HTML document into what the UI shows:
// a highlighted source view, a live preview, a copy area and a download link.
package page

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"webpage_generator/generator"
)

// View is everything a presenter needs for one generation.
type View struct {
	Model        string  `json:"model"`
	HTML         string  `json:"html"`
	Shape        string  `json:"shape"`
	Filename     string  `json:"filename"`
	DataURI      string  `json:"data_uri"`
	CodeHTML     string  `json:"-"`
	DownloadLink string  `json:"-"`
	Summary      Summary `json:"summary"`
}

// Build 生成展示所需的全部内容。
func Build(res generator.Result) (View, error) {
	code, err := CodeView(res.HTML)
	if err != nil {
		return View{}, err
	}
	summary, err := Inspect(res.HTML)
	if err != nil {
		return View{}, err
	}
	filename := res.Filename
	if filename == "" {
		filename = generator.DefaultFilename
	}
	return View{
		Model:        res.Model.Name,
		HTML:         res.HTML,
		Shape:        res.Shape.String(),
		Filename:     filename,
		DataURI:      DataURI(res.HTML),
		CodeHTML:     code,
		DownloadLink: DownloadLink(res.HTML, filename),
		Summary:      summary,
	}, nil
}

// CodeView renders the document source as an escaped html code block.
// The fence is longer than any backtick run in the source so the block
// cannot be closed early by the model's own output.
func CodeView(src string) (string, error) {
	f := strings.Repeat("`", max(3, longestRun(src, '`')+1))
	md := f + "html\n" + src + "\n" + f + "\n"

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render code view: %w", err)
	}
	return buf.String(), nil
}

// DataURI 以 base64 内嵌整页，供下载链接使用。
func DataURI(src string) string {
	return "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(src))
}

func DownloadLink(src, filename string) string {
	name := html.EscapeString(filename)
	return fmt.Sprintf(`<a href="%s" download="%s">Download as %s</a>`, DataURI(src), name, name)
}

func longestRun(s string, c byte) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			cur++
			best = max(best, cur)
			continue
		}
		cur = 0
	}
	return best
}
