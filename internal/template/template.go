package template

import (
	"strings"

	"cratekeeper/internal/errs"
	"cratekeeper/internal/tag"
)

type segmentKind int

const (
	segLiteral segmentKind = iota
	segBare
	segDelimited
)

// segment is one parsed template element. Exactly one variant applies:
// literal text, a bare placeholder, or a delimited placeholder carrying
// its optional leading whitespace and delimiter pair.
type segment struct {
	kind  segmentKind
	text  string
	name  tag.Name
	lead  string
	open  byte
	close byte
}

// delimiters maps opening to closing delimiter characters.
var delimiters = map[byte]byte{
	'(': ')',
	'[': ']',
}

// Template is a parsed, immutable format string.
type Template struct {
	raw      string
	segments []segment
}

// Parse compiles a template string. Unrecognized tag names and
// unterminated placeholders are configuration errors, reported here so
// a bad template never reaches a batch.
func Parse(raw string) (*Template, error) {
	var segs []segment
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{kind: segLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(raw) {
		c := raw[i]

		if closing, ok := delimiters[c]; ok && i+1 < len(raw) && raw[i+1] == '{' {
			name, after, err := parsePlaceholder(raw, i+1)
			if err != nil {
				return nil, err
			}
			if after < len(raw) && raw[after] == closing {
				lead := ""
				if s := lit.String(); s != "" && isSpace(s[len(s)-1]) {
					lead = s[len(s)-1:]
					lit.Reset()
					lit.WriteString(s[:len(s)-1])
				}
				flush()
				segs = append(segs, segment{kind: segDelimited, name: name, lead: lead, open: c, close: closing})
				i = after + 1
				continue
			}
			// No closing delimiter after the placeholder, so the
			// opener is literal and the placeholder will be picked
			// up as a bare group.
			lit.WriteByte(c)
			i++
			continue
		}

		if c == '{' {
			name, after, err := parsePlaceholder(raw, i)
			if err != nil {
				return nil, err
			}
			flush()
			segs = append(segs, segment{kind: segBare, name: name})
			i = after
			continue
		}

		lit.WriteByte(c)
		i++
	}
	flush()

	return &Template{raw: raw, segments: segs}, nil
}

// parsePlaceholder reads "{name}" starting at the opening brace and
// returns the tag name and the index just past the closing brace.
func parsePlaceholder(raw string, at int) (tag.Name, int, error) {
	end := strings.IndexByte(raw[at:], '}')
	if end < 0 {
		return "", 0, errs.Wrapf(errs.ErrConfig, "template %q: unterminated placeholder", raw)
	}
	inner := raw[at+1 : at+end]
	name, ok := tag.ParseName(inner)
	if !ok {
		return "", 0, errs.Wrapf(errs.ErrConfig, "template %q: unknown tag name %q", raw, inner)
	}
	return name, at + end + 1, nil
}

// Render produces the template's text for one record. Groups whose tag
// is absent vanish entirely, delimiters and leading whitespace
// included. Never fails: validation happened at parse time.
func (t *Template) Render(rec *tag.Record) string {
	var b strings.Builder
	for _, s := range t.segments {
		switch s.kind {
		case segLiteral:
			b.WriteString(s.text)
		case segBare:
			if v, ok := rec.Get(s.name); ok {
				b.WriteString(v)
			}
		case segDelimited:
			if v, ok := rec.Get(s.name); ok {
				b.WriteString(s.lead)
				b.WriteByte(s.open)
				b.WriteString(v)
				b.WriteByte(s.close)
			}
		}
	}
	return b.String()
}

// Raw returns the original template string.
func (t *Template) Raw() string {
	return t.raw
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
