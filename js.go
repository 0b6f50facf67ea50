package headcontrol

import (
	"context"
	"fmt"
	"io"
)

// JSLink is a script that should be loaded using a <script> element with a
// src attribute.
type JSLink struct {
	// Src is the URL of the script. Relative paths are resolved against
	// the Site's BasePath.
	Src string

	// Defer marks the script as deferred.
	Defer bool

	// Async marks the script as async. It takes precedence over Defer.
	Async bool

	// After lists the Srcs of scripts this one needs to be rendered
	// after. Srcs that aren't loaded are ignored.
	After []string
}

func (l JSLink) resourceKey() string    { return l.Src }
func (l JSLink) dependencies() []string { return l.After }

var _ AssetLoader = &JSLoader{}

// JSLoader is the AssetLoader HeaderControl uses for scripts by default. It
// de-duplicates scripts by Src and renders them in insertion order, except
// where an After constraint says otherwise.
type JSLoader struct {
	site  Site
	links []JSLink
}

// NewJSLoader returns a JSLoader that resolves relative paths and loads its
// templates using site.
func NewJSLoader(site Site) *JSLoader {
	return &JSLoader{site: site}
}

// AddFiles adds a script for each of the passed paths.
func (l *JSLoader) AddFiles(files ...string) {
	for _, file := range files {
		l.links = append(l.links, JSLink{Src: file})
	}
}

// AddLinks adds scripts with loading attributes or ordering constraints.
func (l *JSLoader) AddLinks(links ...JSLink) {
	l.links = append(l.links, links...)
}

// Links returns the scripts in the order they'll be rendered.
func (l *JSLoader) Links(ctx context.Context) ([]JSLink, error) {
	return walkGraph(ctx, buildGraph(l.links))
}

// Render adds files, if any, then writes a <script> element for every script
// to w.
func (l *JSLoader) Render(ctx context.Context, w io.Writer, files ...string) error {
	l.AddFiles(files...)
	links, err := l.Links(ctx)
	if err != nil {
		return fmt.Errorf("error ordering scripts: %w", err)
	}
	base := l.site.BasePath(ctx)
	resolved := make([]JSLink, 0, len(links))
	for _, link := range links {
		link.Src = resolvePath(base, link.Src)
		resolved = append(resolved, link)
	}
	return executeTemplate(ctx, w, l.site, familyFromContext(ctx), "js.tmpl", struct {
		Links []JSLink
	}{Links: resolved})
}
