package headcontrol

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "impractical.co/headcontrol"

const xmlProlog = "<?xml version='1.0' encoding='utf-8'?>\n"

var (
	// ErrTemplatePatternMatchesNoFiles is returned when a Site's
	// TemplateDir has no templates for the DocType being rendered.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

type beginData struct {
	Language string
	XHTML    bool
	Title    string
	Favicon  string
	Meta     []MetaTag
}

// Render writes the whole <head> of the document to w, setting the
// Content-Type and, when needed, Vary headers on it. r is the request being
// responded to; its Accept header decides whether XHTML can be served.
//
// Render is RenderBegin, RenderRSS, RenderCSS, RenderJS and RenderEnd, in that
// order.
func (h *HeaderControl) Render(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "headcontrol.Render",
		trace.WithAttributes(
			attribute.String("headcontrol.doctype", string(h.docType)),
			attribute.String("headcontrol.language", h.language),
		),
	)
	defer span.End()

	err := h.render(ctx, w, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.metrics.observeError()
		logger(ctx).ErrorContext(ctx, "error rendering document head", "error", err)
		return err
	}
	return nil
}

func (h *HeaderControl) render(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if err := h.RenderBegin(ctx, w, r); err != nil {
		return err
	}
	if err := h.RenderRSS(ctx, w); err != nil {
		return err
	}
	if err := h.RenderCSS(ctx, w); err != nil {
		return err
	}
	if err := h.RenderJS(ctx, w); err != nil {
		return err
	}
	return h.RenderEnd(ctx, w)
}

// RenderBegin negotiates the content type, sets the response headers, and
// writes everything from the XML prolog, if any, up to and including the
// meta tags.
func (h *HeaderControl) RenderBegin(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	decl, err := h.docType.Declaration()
	if err != nil {
		return err
	}
	negotiated := Negotiate(ctx, r, h.docType, h.contentType, h.forceContentType)
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("headcontrol.content_type", string(negotiated.ContentType)))
	h.metrics.observeRender(h.docType, negotiated.ContentType)

	if negotiated.Vary {
		addVary(w.Header(), "Accept")
	}
	w.Header().Set("Content-Type", string(negotiated.ContentType)+"; charset=utf-8")

	if negotiated.ContentType == ApplicationXHTML {
		if _, err := io.WriteString(w, xmlProlog); err != nil {
			return fmt.Errorf("error writing XML prolog: %w", err)
		}
	}
	if _, err := io.WriteString(w, decl+"\n"); err != nil {
		return fmt.Errorf("error writing doctype: %w", err)
	}

	data := beginData{
		Language: h.language,
		XHTML:    negotiated.ContentType == ApplicationXHTML,
		Title:    h.TitleString(),
		Meta:     h.MetaTags(),
	}
	if h.favicon != "" {
		data.Favicon = resolvePath(h.site.BasePath(ctx), h.favicon)
	}
	return executeTemplate(ctx, w, h.site, h.docType.templateFamily(), "begin.tmpl", data)
}

// addVary adds field to the Vary header unless it's already listed there.
func addVary(header http.Header, field string) {
	for _, value := range header.Values("Vary") {
		for _, listed := range strings.Split(value, ",") {
			listed = strings.TrimSpace(listed)
			if listed == "*" || strings.EqualFold(listed, field) {
				return
			}
		}
	}
	header.Add("Vary", field)
}

// RenderRSS writes an autodiscovery <link> for every RSS channel. Passing
// channels replaces the ones added with AddRSSChannel.
func (h *HeaderControl) RenderRSS(ctx context.Context, w io.Writer, channels ...RSSChannel) error {
	if len(channels) > 0 {
		h.rssChannels = append([]RSSChannel(nil), channels...)
	}
	resolved := make([]RSSChannel, 0, len(h.rssChannels))
	resolver, canResolve := h.site.(LinkResolver)
	for _, channel := range h.rssChannels {
		if canResolve {
			link, err := resolver.ResolveLink(ctx, channel.Link)
			if err != nil {
				return fmt.Errorf("error resolving link for RSS channel %q: %w", channel.Title, err)
			}
			channel.Link = link
		}
		resolved = append(resolved, channel)
	}
	return executeTemplate(ctx, w, h.site, h.docType.templateFamily(), "rss.tmpl", struct {
		Channels []RSSChannel
	}{Channels: resolved})
}

// RenderCSS adds files, if any, to the CSS loader and renders it.
func (h *HeaderControl) RenderCSS(ctx context.Context, w io.Writer, files ...string) error {
	return h.renderComponent(ctx, w, "renderCss", files...)
}

// RenderJS adds files, if any, to the JS loader and renders it.
func (h *HeaderControl) RenderJS(ctx context.Context, w io.Writer, files ...string) error {
	return h.renderComponent(ctx, w, "renderJs", files...)
}

func (h *HeaderControl) renderComponent(ctx context.Context, w io.Writer, method string, args ...string) error {
	ctx = DocTypeContext(ctx, h.docType)
	if err := h.components.Call(ctx, w, method, args...); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("error writing output of %s: %w", method, err)
	}
	return nil
}

// RenderEnd closes the <head> element.
func (h *HeaderControl) RenderEnd(_ context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, "</head>\n"); err != nil {
		return fmt.Errorf("error closing head: %w", err)
	}
	return nil
}

// familyFromContext returns the template family for the DocType stored in
// ctx, falling back to plain HTML.
func familyFromContext(ctx context.Context) string {
	docType, ok := DocTypeFromContext(ctx)
	if !ok {
		return HTML5.templateFamily()
	}
	return docType.templateFamily()
}

func executeTemplate(ctx context.Context, w io.Writer, site Site, family, name string, data any) error {
	tmpl, err := getTemplate(ctx, site, family)
	if err != nil {
		return err
	}
	executed := family + "/" + name
	err = tmpl.ExecuteTemplate(w, executed, data)
	if err != nil {
		return fmt.Errorf("error executing template %q: %w", executed, err)
	}
	return nil
}

func getTemplate(ctx context.Context, site Site, family string) (*template.Template, error) {
	if cache, ok := site.(TemplateCacher); ok {
		cached := cache.GetCachedTemplate(ctx, family)
		if cached != nil {
			return cached, nil
		}
	}
	parsed, err := parseTemplates(site.TemplateDir(ctx), family+"/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing %s templates: %w", family, err)
	}
	if cache, ok := site.(TemplateCacher); ok {
		cache.SetCachedTemplate(ctx, family, parsed)
	}
	return parsed, nil
}

func parseTemplates(fsys fs.FS, patterns ...string) (*template.Template, error) {
	var files []string
	for _, pattern := range patterns {
		list, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(list) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		files = append(files, list...)
	}
	tmpl := template.New("")
	for _, file := range files {
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		_, err = tmpl.New(file).Parse(string(contents))
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	return tmpl, nil
}
