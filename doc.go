// Package headcontrol renders the <head> of an HTML document.
//
// A HeaderControl is created for every request with the document's DocType,
// language and base title. While the page is being prepared, handlers push
// section titles onto its title stack, set meta tags, advertise RSS feeds and
// queue stylesheets and scripts on its CSS and JS loaders. Render then writes
// the XML prolog when needed, the doctype, the opening <html> and <head>
// tags, and everything inside the head, and closes it.
//
// Documents using the XHTML1Strict DocType can be served as
// application/xhtml+xml. Whether they are is negotiated at render time from
// the request's Accept header, unless the content type is forced; every other
// document is served as text/html.
//
// Per-server configuration lives in a Site. CachedSite is a ready-made Site
// that can be embedded in a consumer's own type; it supplies the templates
// the markup is rendered from and caches them once parsed. Sites can
// optionally implement LinkResolver to turn RSS channel links into URLs.
//
// Logging goes to the *slog.Logger attached to the context with
// LoggingContext. Render also starts an OpenTelemetry span, and records
// Prometheus metrics when created WithMetrics.
package headcontrol
