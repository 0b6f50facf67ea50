package headcontrol

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/url"
	"strings"
	"sync"
)

//go:embed templates
var embeddedTemplates embed.FS

// DefaultTemplates returns the fs.FS holding the templates HeaderControl
// ships with. Sites that want to customize the markup can copy them, keeping
// the html/ and xhtml/ directories and the file names.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// the directory is embedded at compile time, so this is a
		// programming error
		panic(err)
	}
	return sub
}

// Site is an interface for the per-server configuration a HeaderControl reads
// while rendering. Consumers will usually embed a *CachedSite in their own
// type and add whatever optional interfaces they need.
type Site interface {
	// TemplateDir returns an fs.FS containing html/*.tmpl and
	// xhtml/*.tmpl, the templates used to render the document head.
	TemplateDir(ctx context.Context) fs.FS

	// PublicDir returns an fs.FS rooted at the directory the web server
	// serves static files from. It's used to check that a favicon
	// exists. It may return nil, in which case no favicon is ever found.
	PublicDir(ctx context.Context) fs.FS

	// BasePath returns the URL path the site is served under. Relative
	// favicon, stylesheet and script paths get prefixed with it.
	BasePath(ctx context.Context) string
}

// LinkResolver is an optional interface for Sites. Those fulfilling it get to
// turn the link of every RSS channel into the URL that's rendered, much like
// a router's reverse lookup.
type LinkResolver interface {
	ResolveLink(ctx context.Context, link string) (string, error)
}

// TemplateCacher is an optional interface for Sites. Those fulfilling it can
// cache their template parsing using the template family ("html" or "xhtml")
// as key to save on the overhead of parsing the templates each time.
type TemplateCacher interface {
	// GetCachedTemplate returns the *template.Template specified by the
	// passed key. It should return nil if the template hasn't been cached
	// yet.
	GetCachedTemplate(ctx context.Context, key string) *template.Template

	// SetCachedTemplate stores the passed *template.Template under the
	// passed key, for later retrieval with GetCachedTemplate.
	SetCachedTemplate(ctx context.Context, key string, tmpl *template.Template)
}

var _ Site = &CachedSite{}
var _ TemplateCacher = &CachedSite{}

// CachedSite is an implementation of the Site interface that can be embedded
// in other Site implementations. It caches parsed templates in memory. A
// CachedSite must be instantiated through NewCachedSite, its empty value is
// not usable.
type CachedSite struct {
	templateCache   map[string]*template.Template
	templateCacheMu sync.RWMutex

	templateDir fs.FS
	publicDir   fs.FS
	basePath    string
}

// CachedSiteOption customizes a CachedSite.
type CachedSiteOption func(*CachedSite)

// WithTemplateDir replaces the embedded default templates.
func WithTemplateDir(templates fs.FS) CachedSiteOption {
	return func(s *CachedSite) {
		s.templateDir = templates
	}
}

// NewCachedSite returns a CachedSite instance that is ready to be used. public
// is the web root used to look up favicons and may be nil; basePath is the
// URL path the site is served under, "/" if empty.
func NewCachedSite(public fs.FS, basePath string, opts ...CachedSiteOption) *CachedSite {
	if basePath == "" {
		basePath = "/"
	}
	site := &CachedSite{
		templateCache: map[string]*template.Template{},
		templateDir:   DefaultTemplates(),
		publicDir:     public,
		basePath:      basePath,
	}
	for _, opt := range opts {
		opt(site)
	}
	return site
}

// GetCachedTemplate returns the cached template associated with the passed
// key, if one exists. If no template is cached for that key, it returns nil.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) GetCachedTemplate(_ context.Context, key string) *template.Template {
	s.templateCacheMu.RLock()
	defer s.templateCacheMu.RUnlock()
	return s.templateCache[key]
}

// SetCachedTemplate caches a template for the given key.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) SetCachedTemplate(_ context.Context, key string, tmpl *template.Template) {
	s.templateCacheMu.Lock()
	defer s.templateCacheMu.Unlock()
	s.templateCache[key] = tmpl
}

// TemplateDir returns the fs.FS templates are loaded from.
func (s *CachedSite) TemplateDir(_ context.Context) fs.FS {
	return s.templateDir
}

// PublicDir returns the web root passed to NewCachedSite.
func (s *CachedSite) PublicDir(_ context.Context) fs.FS {
	return s.publicDir
}

// BasePath returns the base path passed to NewCachedSite.
func (s *CachedSite) BasePath(_ context.Context) string {
	return s.basePath
}

// resolvePath prefixes p with base unless p is already absolute, either as a
// URL with a scheme or host, or as a path starting with a slash.
func resolvePath(base, p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	if u, err := url.Parse(p); err == nil && (u.IsAbs() || u.Host != "") {
		return p
	}
	return strings.TrimSuffix(base, "/") + "/" + p
}
