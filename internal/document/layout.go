package document

import (
	"strings"

	"github.com/bher20/ecoagua/internal/consumption"
)

// Title heads every rendered report.
const Title = "Relatório de Consumo - EcoAgua"

// BaseFileName is the name offered for downloads, without extension.
const BaseFileName = "relatorio_ecoagua"

// Client identifies who the report is for. Every field is optional.
type Client struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	Contact string `json:"contact" yaml:"contact"`
}

// Style tells a renderer how to present a line.
type Style int

const (
	StyleBody Style = iota
	StyleTitle
	StyleSpacer
)

// Line is one row of a laid-out document. Label and Value are set for
// "label: value" rows; Text always holds the full printable row.
type Line struct {
	Style Style
	Text  string
	Label string
	Value string
}

func labeled(label, value string) Line {
	return Line{Style: StyleBody, Text: label + ": " + value, Label: label, Value: value}
}

// Layout fills the report template: title, identification lines for the
// client fields that are set, then one row per report field.
func Layout(fields []consumption.Field, client Client) []Line {
	lines := []Line{
		{Style: StyleTitle, Text: Title},
		{Style: StyleSpacer},
	}

	ident := []struct{ label, value string }{
		{"Cliente / Condomínio", client.Name},
		{"Endereço", client.Address},
		{"Contato", client.Contact},
	}
	for _, id := range ident {
		if v := strings.TrimSpace(id.value); v != "" {
			lines = append(lines, labeled(id.label, v))
		}
	}

	lines = append(lines, Line{Style: StyleSpacer})
	for _, f := range fields {
		lines = append(lines, labeled(f.Label, f.Value))
	}
	return lines
}

// FileName returns the download name for a renderer.
func FileName(r Renderer) string {
	return BaseFileName + "." + r.Extension()
}
