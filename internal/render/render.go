// Package render writes formatted durations in the output formats durfmt
// supports.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/durfmt/internal/durationfmt"
)

// Format identifies a supported output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCBOR  Format = "cbor"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatTable, FormatJSON, FormatYAML, FormatCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, table, json, yaml or cbor)", s)
	}
}

// Conversion is one input value and its text form.
type Conversion struct {
	Seconds uint64 `json:"seconds" yaml:"seconds" cbor:"seconds"`
	Nanos   uint32 `json:"nanos" yaml:"nanos" cbor:"nanos"`
	Text    string `json:"text" yaml:"text" cbor:"text"`
}

// NewConversion formats d.
func NewConversion(d durationfmt.Duration) Conversion {
	return Conversion{
		Seconds: d.Seconds,
		Nanos:   d.Nanos,
		Text:    d.String(),
	}
}

// Renderer writes conversions to w.
type Renderer interface {
	Render(w io.Writer, convs []Conversion) error
}

// TextRenderer writes one duration per line.
type TextRenderer struct {
	Styles Styles
}

// TableRenderer writes an aligned SECONDS/NANOS/DURATION table.
type TableRenderer struct {
	Styles Styles
}

// JSONRenderer writes a JSON array.
type JSONRenderer struct {
	Pretty bool
}

// YAMLRenderer writes a YAML sequence.
type YAMLRenderer struct{}

// CBORRenderer writes a CBOR array.
type CBORRenderer struct{}

// New returns the renderer for format. styles only affects text and table
// output.
func New(format Format, styles Styles) (Renderer, error) {
	switch format {
	case FormatText:
		return &TextRenderer{Styles: styles}, nil
	case FormatTable:
		return &TableRenderer{Styles: styles}, nil
	case FormatJSON:
		return &JSONRenderer{Pretty: true}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	case FormatCBOR:
		return &CBORRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(w io.Writer, convs []Conversion) error {
	var b strings.Builder
	for _, c := range convs {
		b.WriteString(r.Styles.Duration(c.Text))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Render implements Renderer.
func (r *TableRenderer) Render(w io.Writer, convs []Conversion) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "SECONDS\tNANOS\tDURATION")
	fmt.Fprintln(tw, "-------\t-----\t--------")
	for _, c := range convs {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", c.Seconds, c.Nanos, c.Text)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// Escape codes are added after tabwriter has aligned the columns.
	header, rest, _ := strings.Cut(buf.String(), "\n")
	_, err := fmt.Fprintf(w, "%s\n%s", r.Styles.Heading(header), rest)
	return err
}

// Render implements Renderer.
func (r *JSONRenderer) Render(w io.Writer, convs []Conversion) error {
	if convs == nil {
		convs = []Conversion{}
	}

	var (
		data []byte
		err  error
	)
	if r.Pretty {
		data, err = json.MarshalIndent(convs, "", "  ")
	} else {
		data, err = json.Marshal(convs)
	}
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Render implements Renderer.
func (r *YAMLRenderer) Render(w io.Writer, convs []Conversion) error {
	if convs == nil {
		convs = []Conversion{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(convs); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// Render implements Renderer.
func (r *CBORRenderer) Render(w io.Writer, convs []Conversion) error {
	if convs == nil {
		convs = []Conversion{}
	}

	data, err := cbor.Marshal(convs)
	if err != nil {
		return fmt.Errorf("encode cbor: %w", err)
	}
	_, err = w.Write(data)
	return err
}
