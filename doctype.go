package headcontrol

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDocType is returned when a DocType outside of the
	// supported set is used.
	ErrUnsupportedDocType = errors.New("doctype is not supported")
)

// DocType identifies the document type declaration a HeaderControl renders.
type DocType string

const (
	HTML4Strict       DocType = "html4_strict"
	HTML4Transitional DocType = "html4_transitional"
	HTML4Frameset     DocType = "html4_frameset"

	HTML5 DocType = "html5"

	XHTML1Strict       DocType = "xhtml1_strict"
	XHTML1Transitional DocType = "xhtml1_transitional"
	XHTML1Frameset     DocType = "xhtml1_frameset"

	// HTML4 is an alias for HTML4Strict.
	HTML4 = HTML4Strict

	// XHTML1 is an alias for XHTML1Strict.
	XHTML1 = XHTML1Strict
)

var declarations = map[DocType]string{
	HTML4Strict:        `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
	HTML4Transitional:  `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`,
	HTML4Frameset:      `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN" "http://www.w3.org/TR/html4/frameset.dtd">`,
	HTML5:              `<!DOCTYPE html>`,
	XHTML1Strict:       `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`,
	XHTML1Transitional: `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`,
	XHTML1Frameset:     `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd">`,
}

// Validate returns an error wrapping ErrUnsupportedDocType if d isn't one of
// the DocType constants.
func (d DocType) Validate() error {
	if _, ok := declarations[d]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDocType, string(d))
	}
	return nil
}

// Declaration returns the literal <!DOCTYPE> declaration for d.
func (d DocType) Declaration() (string, error) {
	decl, ok := declarations[d]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDocType, string(d))
	}
	return decl, nil
}

// IsXML reports whether d belongs to the XHTML family, meaning documents
// using it are XML and void elements need to be self-closed.
func (d DocType) IsXML() bool {
	switch d {
	case XHTML1Strict, XHTML1Transitional, XHTML1Frameset:
		return true
	}
	return false
}

func (d DocType) templateFamily() string {
	if d.IsXML() {
		return "xhtml"
	}
	return "html"
}

type docTypeCtxKey struct{}

// DocTypeContext returns a copy of ctx carrying d. HeaderControl uses it to
// tell the asset loaders it renders which markup flavor to produce.
func DocTypeContext(ctx context.Context, d DocType) context.Context {
	return context.WithValue(ctx, docTypeCtxKey{}, d)
}

// DocTypeFromContext returns the DocType stored in ctx by DocTypeContext, if
// there is one.
func DocTypeFromContext(ctx context.Context) (DocType, bool) {
	d, ok := ctx.Value(docTypeCtxKey{}).(DocType)
	return d, ok
}
