package headcontrol

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
)

var (
	// ErrInvalidLanguage is returned when a language isn't a well-formed
	// BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrFaviconNotFound is returned by SetFavicon when the favicon isn't
	// in the Site's PublicDir.
	ErrFaviconNotFound = errors.New("favicon not found")
)

// DefaultFavicon is the favicon New tries to use.
const DefaultFavicon = "favicon.ico"

const (
	componentCSS = "css"
	componentJS  = "js"
)

// HeaderControl holds the metadata of a single HTML document and renders its
// <head>. It's meant to be created for every request, set up while the page
// is being prepared, and rendered once.
//
// A HeaderControl is not safe for concurrent use.
type HeaderControl struct {
	docType  DocType
	language string

	title              string
	titles             []string
	titleSeparator     string
	titlesReverseOrder bool

	contentType      ContentType
	forceContentType bool

	favicon string

	metaNames []string
	metaTags  map[string]string

	rssChannels []RSSChannel

	site       Site
	metrics    *Metrics
	components Container
}

// Option configures a HeaderControl when it's created.
type Option func(*HeaderControl) error

// WithSite sets the Site the HeaderControl renders for. Without it, a
// CachedSite without a public directory, served from "/", is used.
func WithSite(site Site) Option {
	return func(h *HeaderControl) error {
		h.site = site
		return nil
	}
}

// WithMetrics makes the HeaderControl record its activity in m.
func WithMetrics(m *Metrics) Option {
	return func(h *HeaderControl) error {
		h.metrics = m
		return nil
	}
}

// WithTitleSeparator is the same as calling SetTitleSeparator.
func WithTitleSeparator(separator string) Option {
	return func(h *HeaderControl) error {
		h.SetTitleSeparator(separator)
		return nil
	}
}

// WithTitlesReverseOrder is the same as calling SetTitlesReverseOrder.
func WithTitlesReverseOrder(reverse bool) Option {
	return func(h *HeaderControl) error {
		h.SetTitlesReverseOrder(reverse)
		return nil
	}
}

// WithContentType is the same as calling SetContentType.
func WithContentType(contentType ContentType, force bool) Option {
	return func(h *HeaderControl) error {
		return h.SetContentType(contentType, force)
	}
}

// WithCSSLoader replaces the default CSSLoader.
func WithCSSLoader(loader AssetLoader) Option {
	return func(h *HeaderControl) error {
		return h.components.AddComponent(componentCSS, loader)
	}
}

// WithJSLoader replaces the default JSLoader.
func WithJSLoader(loader AssetLoader) Option {
	return func(h *HeaderControl) error {
		return h.components.AddComponent(componentJS, loader)
	}
}

// New returns a HeaderControl for a document of the passed DocType, language
// and title, served as text/html unless an Option says otherwise.
//
// New tries to use DefaultFavicon, leaving the favicon unset if the Site's
// PublicDir doesn't have one.
func New(ctx context.Context, docType DocType, lang, title string, opts ...Option) (*HeaderControl, error) {
	h := &HeaderControl{
		titlesReverseOrder: true,
		contentType:        TextHTML,
		metaTags:           map[string]string{},
	}
	if err := h.SetDocType(docType); err != nil {
		return nil, err
	}
	if err := h.SetLanguage(lang); err != nil {
		return nil, err
	}
	if err := h.SetTitle(title); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	if h.site == nil {
		h.site = NewCachedSite(nil, "/")
	}
	if _, ok := h.components.Component(componentCSS); !ok {
		if err := h.components.AddComponent(componentCSS, NewCSSLoader(h.site)); err != nil {
			return nil, err
		}
	}
	if _, ok := h.components.Component(componentJS); !ok {
		if err := h.components.AddComponent(componentJS, NewJSLoader(h.site)); err != nil {
			return nil, err
		}
	}
	err := h.SetFavicon(ctx, DefaultFavicon)
	if err != nil && !errors.Is(err, ErrFaviconNotFound) {
		return nil, err
	}
	if err != nil {
		logger(ctx).DebugContext(ctx, "no default favicon", "error", err)
	}
	return h, nil
}

// SetDocType changes the DocType of the document. Changing to a DocType
// that isn't XML while ApplicationXHTML is configured is an error.
func (h *HeaderControl) SetDocType(docType DocType) error {
	if err := docType.Validate(); err != nil {
		return err
	}
	if h.contentType == ApplicationXHTML && !docType.IsXML() {
		return fmt.Errorf("%w: %q", ErrContentTypeMismatch, string(docType))
	}
	h.docType = docType
	return nil
}

// DocType returns the DocType of the document.
func (h *HeaderControl) DocType() DocType {
	return h.docType
}

// IsXML reports whether the document's DocType is an XHTML one.
func (h *HeaderControl) IsXML() bool {
	return h.docType.IsXML()
}

// SetLanguage sets the language of the document, e.g. "en" or "cs".
func (h *HeaderControl) SetLanguage(lang string) error {
	if _, err := language.Parse(lang); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidLanguage, lang, err)
	}
	h.language = lang
	return nil
}

// Language returns the language of the document.
func (h *HeaderControl) Language() string {
	return h.language
}

// SetContentType sets the type the document should be served as. force
// skips checking whether the client accepts it. ApplicationXHTML is only
// accepted for XML DocTypes.
func (h *HeaderControl) SetContentType(contentType ContentType, force bool) error {
	if contentType == ApplicationXHTML && !h.docType.IsXML() {
		return fmt.Errorf("%w: %q", ErrContentTypeMismatch, string(h.docType))
	}
	if err := contentType.Validate(); err != nil {
		return err
	}
	h.contentType = contentType
	h.forceContentType = force
	return nil
}

// ContentType returns the configured content type. What the document is
// actually served as is decided when rendering.
func (h *HeaderControl) ContentType() ContentType {
	return h.contentType
}

// IsContentTypeForced reports whether the configured content type is used
// regardless of what the client accepts.
func (h *HeaderControl) IsContentTypeForced() bool {
	return h.forceContentType
}

// SetFavicon sets the path of the favicon, relative to the Site's PublicDir.
// A leading slash is dropped, so the rendered link is always under the Site's
// BasePath. An error wrapping ErrFaviconNotFound is returned if the file doesn't exist
// there.
func (h *HeaderControl) SetFavicon(ctx context.Context, filename string) error {
	public := h.site.PublicDir(ctx)
	if public == nil {
		return fmt.Errorf("%w: %q: no public directory", ErrFaviconNotFound, filename)
	}
	name := strings.TrimPrefix(path.Clean(filename), "/")
	_, err := fs.Stat(public, name)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return fmt.Errorf("%w: %q", ErrFaviconNotFound, filename)
	}
	if err != nil {
		return fmt.Errorf("error checking favicon %q: %w", filename, err)
	}
	h.favicon = name
	return nil
}

// Favicon returns the path of the favicon, or an empty string if there is
// none.
func (h *HeaderControl) Favicon() string {
	return h.favicon
}

// CSS returns the loader stylesheets get rendered with.
func (h *HeaderControl) CSS() AssetLoader {
	return h.loader(componentCSS)
}

// JS returns the loader scripts get rendered with.
func (h *HeaderControl) JS() AssetLoader {
	return h.loader(componentJS)
}

func (h *HeaderControl) loader(name string) AssetLoader {
	comp, ok := h.components.Component(name)
	if !ok {
		return nil
	}
	loader, _ := comp.(AssetLoader)
	return loader
}

// Site returns the Site the HeaderControl renders for.
func (h *HeaderControl) Site() Site {
	return h.site
}
