// Package highlight scans prompt bodies into syntax segments so clients can
// render variable placeholders and XML-style markup distinctly.
package highlight

import (
	"regexp"
	"strings"
)

type SegmentKind string

const (
	KindText       SegmentKind = "text"
	KindVariable   SegmentKind = "variable"
	KindXMLTag     SegmentKind = "xml_tag"
	KindXMLClosing SegmentKind = "xml_closing_tag"
	KindXMLComment SegmentKind = "xml_comment"
)

// Segment is a contiguous run of the body with one syntax role.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text"`
}

var (
	variableRe = regexp.MustCompile(`^\{\{[^{}]+\}\}`)
	commentRe  = regexp.MustCompile(`^<!--[\s\S]*?-->`)
	closingRe  = regexp.MustCompile(`^</[A-Za-z][A-Za-z0-9_.:-]*\s*>`)
	openingRe  = regexp.MustCompile(`^<[A-Za-z][A-Za-z0-9_.:-]*(?:\s[^<>]*)?/?>`)
)

// Scan splits content into segments. Plain text between matches is emitted
// as-is; the concatenation of all segment texts always equals the input.
func Scan(content string) []Segment {
	var segments []Segment
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			segments = append(segments, Segment{Kind: KindText, Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(content); {
		rest := content[i:]

		var kind SegmentKind
		var match string
		switch {
		case rest[0] == '{':
			if m := variableRe.FindString(rest); m != "" {
				kind, match = KindVariable, m
			}
		case rest[0] == '<':
			if m := commentRe.FindString(rest); m != "" {
				kind, match = KindXMLComment, m
			} else if m := closingRe.FindString(rest); m != "" {
				kind, match = KindXMLClosing, m
			} else if m := openingRe.FindString(rest); m != "" {
				kind, match = KindXMLTag, m
			}
		}

		if match == "" {
			plain.WriteByte(content[i])
			i++
			continue
		}

		flush()
		segments = append(segments, Segment{Kind: kind, Text: match})
		i += len(match)
	}

	flush()
	return segments
}

// Variables returns the distinct placeholder names in order of first
// appearance, without the surrounding braces.
func Variables(content string) []string {
	var names []string
	seen := make(map[string]bool)

	for _, seg := range Scan(content) {
		if seg.Kind != KindVariable {
			continue
		}
		name := strings.TrimSpace(strings.Trim(seg.Text, "{}"))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}
