package headcontrol

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vfaronov/httpheader"
)

var (
	// ErrUnsupportedContentType is returned when a ContentType other than
	// TextHTML or ApplicationXHTML is configured.
	ErrUnsupportedContentType = errors.New("content type is not supported")

	// ErrContentTypeMismatch is returned when ApplicationXHTML would be
	// configured alongside a DocType that isn't XML.
	ErrContentTypeMismatch = errors.New("cannot send XHTML content type with non-XML doctype")
)

// ContentType is the media type a document is served as.
type ContentType string

const (
	TextHTML         ContentType = "text/html"
	ApplicationXHTML ContentType = "application/xhtml+xml"
)

// Validate returns an error wrapping ErrUnsupportedContentType if c isn't one
// of the ContentType constants.
func (c ContentType) Validate() error {
	switch c {
	case TextHTML, ApplicationXHTML:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedContentType, string(c))
}

// Negotiation is the outcome of deciding which ContentType a response is
// served as.
type Negotiation struct {
	// ContentType is the type the document should be served as.
	ContentType ContentType

	// Vary is true when the outcome depended on the request's Accept
	// header, in which case caches need a Vary: Accept response header.
	Vary bool
}

// Negotiate decides whether the document can be served as
// application/xhtml+xml. That only happens for the XHTML1Strict DocType, when
// ApplicationXHTML was configured, and when either force is set or the client
// says it accepts XHTML. Everything else is served as text/html.
func Negotiate(ctx context.Context, r *http.Request, docType DocType, configured ContentType, force bool) Negotiation {
	if docType != XHTML1Strict || configured != ApplicationXHTML {
		return Negotiation{ContentType: TextHTML}
	}
	if force {
		return Negotiation{ContentType: ApplicationXHTML}
	}
	if ClientAcceptsXHTML(r) {
		logger(ctx).DebugContext(ctx, "client accepts XHTML")
		return Negotiation{ContentType: ApplicationXHTML, Vary: true}
	}
	logger(ctx).DebugContext(ctx, "client doesn't accept XHTML, falling back to HTML")
	return Negotiation{ContentType: TextHTML, Vary: true}
}

// ClientAcceptsXHTML reports whether the Accept header of r lists
// application/xhtml+xml, or consists of nothing but */*. Media ranges with a
// quality of zero are treated as not accepted.
//
// A */* that is only one of several ranges doesn't count; clients that send
// those have historically choked on XHTML.
func ClientAcceptsXHTML(r *http.Request) bool {
	if r == nil {
		return false
	}
	elems := httpheader.Accept(r.Header)
	if len(elems) == 1 && elems[0].Type == "*/*" && elems[0].Q > 0 {
		return true
	}
	for _, elem := range elems {
		if elem.Q <= 0 {
			continue
		}
		if strings.EqualFold(elem.Type, string(ApplicationXHTML)) {
			return true
		}
	}
	return false
}
