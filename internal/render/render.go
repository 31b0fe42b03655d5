// Package render prints screens for terminal clients, either as aligned text
// with numbered reference rows or as indented JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/tidwall/pretty"

	"jediarchives/internal/model"
)

// Format selects how a screen is printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// Text writes the screen title, then each section with aligned label/value rows.
// Reference rows are numbered from 1 across all reference sections, matching
// navigator.Select.
func Text(w io.Writer, s *model.Screen) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	title := s.Title
	if title == "" {
		title = s.Route.Path()
	}
	fmt.Fprintf(tw, "%s\n%s\n", title, strings.Repeat("=", utf8.RuneCountInString(title)))

	n := 0
	for _, sec := range s.Sections {
		fmt.Fprintf(tw, "\n%s\n", sec.Title)
		switch sec.Kind {
		case model.SectionInfo:
			for _, item := range sec.Info {
				fmt.Fprintf(tw, "  %s\t%s\n", item.Label, item.Value)
			}
		case model.SectionReferences:
			for _, ref := range sec.References {
				n++
				if ref.Value == "" {
					fmt.Fprintf(tw, "  [%d] %s\n", n, ref.Label)
					continue
				}
				fmt.Fprintf(tw, "  [%d] %s\t%s\n", n, ref.Label, ref.Value)
			}
		}
	}
	if len(s.Sections) == 0 {
		fmt.Fprint(tw, "\n  (nothing to show)\n")
	}
	return tw.Flush()
}

// JSON writes the screen as indented JSON, colorized for terminals when color is set.
func JSON(w io.Writer, s *model.Screen, color bool) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b = pretty.Pretty(b)
	if color {
		b = pretty.Color(b, nil)
	}
	_, err = w.Write(b)
	return err
}
