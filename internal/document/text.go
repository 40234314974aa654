package document

import "strings"

// TextRenderer emits UTF-8 text, one row per line.
type TextRenderer struct{}

func (TextRenderer) Format() string { return "txt" }
func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }
func (TextRenderer) Extension() string { return "txt" }

func (TextRenderer) Render(lines []Line) ([]byte, error) {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}
