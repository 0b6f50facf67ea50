package headcontrol

import (
	"context"
	"fmt"
	"io"
)

// CSSLink is a stylesheet that should be loaded through a <link> element.
type CSSLink struct {
	// Href is the URL of the stylesheet. Relative paths are resolved
	// against the Site's BasePath.
	Href string

	// Media is the optional media query the stylesheet applies to.
	Media string

	// After lists the Hrefs of stylesheets this one needs to be rendered
	// after. Hrefs that aren't loaded are ignored.
	After []string
}

func (l CSSLink) resourceKey() string    { return l.Href }
func (l CSSLink) dependencies() []string { return l.After }

var _ AssetLoader = &CSSLoader{}

// CSSLoader is the AssetLoader HeaderControl uses for stylesheets by default.
// It de-duplicates stylesheets by Href and renders them in insertion order,
// except where an After constraint says otherwise.
type CSSLoader struct {
	site  Site
	links []CSSLink
}

// NewCSSLoader returns a CSSLoader that resolves relative paths and loads its
// templates using site.
func NewCSSLoader(site Site) *CSSLoader {
	return &CSSLoader{site: site}
}

// AddFiles adds a stylesheet for each of the passed paths.
func (l *CSSLoader) AddFiles(files ...string) {
	for _, file := range files {
		l.links = append(l.links, CSSLink{Href: file})
	}
}

// AddLinks adds stylesheets with media queries or ordering constraints.
func (l *CSSLoader) AddLinks(links ...CSSLink) {
	l.links = append(l.links, links...)
}

// Links returns the stylesheets in the order they'll be rendered.
func (l *CSSLoader) Links(ctx context.Context) ([]CSSLink, error) {
	return walkGraph(ctx, buildGraph(l.links))
}

// Render adds files, if any, then writes a <link> element for every
// stylesheet to w.
func (l *CSSLoader) Render(ctx context.Context, w io.Writer, files ...string) error {
	l.AddFiles(files...)
	links, err := l.Links(ctx)
	if err != nil {
		return fmt.Errorf("error ordering stylesheets: %w", err)
	}
	base := l.site.BasePath(ctx)
	resolved := make([]CSSLink, 0, len(links))
	for _, link := range links {
		link.Href = resolvePath(base, link.Href)
		resolved = append(resolved, link)
	}
	return executeTemplate(ctx, w, l.site, familyFromContext(ctx), "css.tmpl", struct {
		Links []CSSLink
	}{Links: resolved})
}
