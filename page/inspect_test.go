package page

import "testing"

func TestInspect(t *testing.T) {
	src := `<!DOCTYPE html>
<html lang="en">
<head>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title> Portfolio </title>
<style>body{margin:0}</style>
<style>nav{display:flex}</style>
</head>
<body>
<nav><a href="#about">About</a><a href="#work">Work</a></nav>
<img src="me.png" alt="me">
<script>console.log(1)</script>
</body>
</html>`
	s, err := Inspect(src)
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{
		Title:       "Portfolio",
		HasDoctype:  true,
		HasViewport: true,
		StyleBlocks: 2,
		Scripts:     1,
		Links:       2,
		Images:      1,
	}
	if s != want {
		t.Fatalf("got %+v\nwant %+v", s, want)
	}
}

func TestInspectFragment(t *testing.T) {
	s, err := Inspect("<p>just a paragraph\n</html>")
	if err != nil {
		t.Fatal(err)
	}
	if s.HasDoctype || s.HasViewport || s.Title != "" {
		t.Fatalf("summary = %+v", s)
	}
}
