package document

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownFormat is returned by Lookup for an unregistered format.
var ErrUnknownFormat = errors.New("unknown document format")

// Renderer turns laid-out lines into a document.
type Renderer interface {
	Format() string
	ContentType() string
	Extension() string
	Render(lines []Line) ([]byte, error)
}

var renderers = map[string]Renderer{
	"pdf":  PDFRenderer{},
	"xlsx": XLSXRenderer{},
	"txt":  TextRenderer{},
}

// Lookup returns the renderer for a format name such as "pdf".
func Lookup(format string) (Renderer, error) {
	r, ok := renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return r, nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(renderers))
	for k := range renderers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
