package resolve

import (
	"strings"

	"cratekeeper/internal/errs"
	"cratekeeper/internal/tag"
	"cratekeeper/internal/template"
)

// Resolver merges tag records and renders their standardized strings.
// One resolver, with its parsed templates, serves a whole batch.
type Resolver struct {
	titleTpl       *template.Template
	filenameTpl    *template.Template
	overrideArtist bool
}

// Result is the outcome of resolving one file: the finalized record,
// the standardized display title, and the standardized filename
// (without extension). The record is not mutated after resolution.
type Result struct {
	Record   *tag.Record
	Title    string
	Filename string
}

// NewResolver builds a resolver from already-parsed templates.
func NewResolver(titleTpl, filenameTpl *template.Template, overrideArtist bool) *Resolver {
	return &Resolver{
		titleTpl:       titleTpl,
		filenameTpl:    filenameTpl,
		overrideArtist: overrideArtist,
	}
}

// Resolve merges embedded tags with a parsed fragment and renders the
// standardized strings. Neither input record is modified. Fails only
// when the merged record has no title.
func (r *Resolver) Resolve(embedded, parsed *tag.Record) (*Result, error) {
	final := tag.NewRecord()
	if embedded != nil {
		final = embedded.Clone()
	}

	if r.overrideArtist && parsed != nil {
		if a, ok := parsed.Get(tag.Artist); ok {
			_ = final.Set(tag.Artist, a)
		}
	}
	final.FillFrom(parsed)

	// Featured artists stay distinct from the primary artist, which
	// may only now be known.
	if a, ok := final.Get(tag.Artist); ok {
		final.DropFeat(a)
	}

	if !final.Has(tag.Title) {
		return nil, errs.Wrap(errs.ErrMissingTag, "merge produced no title", nil)
	}

	title, filename := r.Render(final)
	return &Result{Record: final, Title: title, Filename: filename}, nil
}

// Render produces the standardized title and filename for an
// already-merged record. Used on its own when the record was edited
// after resolution.
func (r *Resolver) Render(rec *tag.Record) (title, filename string) {
	title = strings.TrimSpace(r.titleTpl.Render(rec))

	// The filename sees the standardized title, not the raw one.
	forFilename := rec.Clone()
	_ = forFilename.Set(tag.Title, title)
	filename = strings.TrimSpace(r.filenameTpl.Render(forFilename))
	return title, filename
}
