// Command headctl renders a document head from the command line, which is
// handy for checking what a given configuration and Accept header produce.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"impractical.co/headcontrol"
)

type options struct {
	docType     string
	language    string
	title       string
	separator   string
	titles      []string
	inOrder     bool
	xhtml       bool
	force       bool
	accept      string
	publicDir   string
	basePath    string
	meta        []string
	keywords    []string
	rss         []string
	css         []string
	js          []string
	showHeaders bool
	verbose     bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "headctl",
		Short: "Render an HTML document head",
		Long: `headctl renders the <head> of an HTML document the way a
HeaderControl would for a request with the given Accept header.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.docType, "doctype", string(headcontrol.HTML5), "document type, e.g. html5 or xhtml1_strict")
	flags.StringVar(&opts.language, "lang", "en", "document language")
	flags.StringVar(&opts.title, "title", "", "base title of the document")
	flags.StringVar(&opts.separator, "separator", " | ", "string titles are joined with")
	flags.StringArrayVar(&opts.titles, "add-title", nil, "title to push onto the title stack, repeatable")
	flags.BoolVar(&opts.inOrder, "in-order", false, "render the base title first")
	flags.BoolVar(&opts.xhtml, "xhtml", false, "serve as application/xhtml+xml when possible")
	flags.BoolVar(&opts.force, "force", false, "serve the configured content type regardless of Accept")
	flags.StringVar(&opts.accept, "accept", "text/html", "Accept header of the simulated request")
	flags.StringVar(&opts.publicDir, "public", "", "web root to look for the favicon in")
	flags.StringVar(&opts.basePath, "base", "/", "base path the site is served under")
	flags.StringArrayVar(&opts.meta, "meta", nil, "name=content meta tag, repeatable")
	flags.StringArrayVar(&opts.keywords, "keyword", nil, "keyword, repeatable")
	flags.StringArrayVar(&opts.rss, "rss", nil, "title=link RSS channel, repeatable")
	flags.StringArrayVar(&opts.css, "css", nil, "stylesheet, repeatable")
	flags.StringArrayVar(&opts.js, "js", nil, "script, repeatable")
	flags.BoolVar(&opts.showHeaders, "headers", false, "print the response headers before the markup")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	ctx = headcontrol.LoggingContext(ctx, slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	site := headcontrol.NewCachedSite(nil, opts.basePath)
	if opts.publicDir != "" {
		site = headcontrol.NewCachedSite(os.DirFS(opts.publicDir), opts.basePath)
	}
	hcOpts := []headcontrol.Option{
		headcontrol.WithSite(site),
		headcontrol.WithTitleSeparator(opts.separator),
		headcontrol.WithTitlesReverseOrder(!opts.inOrder),
	}
	if opts.xhtml {
		hcOpts = append(hcOpts, headcontrol.WithContentType(headcontrol.ApplicationXHTML, opts.force))
	}
	head, err := headcontrol.New(ctx, headcontrol.DocType(opts.docType), opts.language, opts.title, hcOpts...)
	if err != nil {
		return err
	}
	for _, title := range opts.titles {
		if err := head.AddTitle(title); err != nil {
			return err
		}
	}
	for _, meta := range opts.meta {
		name, content, ok := strings.Cut(meta, "=")
		if !ok {
			return fmt.Errorf("meta tag %q needs to be name=content", meta)
		}
		head.SetMetaTag(name, content)
	}
	head.AddKeywords(opts.keywords...)
	for _, rss := range opts.rss {
		title, link, ok := strings.Cut(rss, "=")
		if !ok {
			return fmt.Errorf("RSS channel %q needs to be title=link", rss)
		}
		head.AddRSSChannel(title, link)
	}
	head.CSS().AddFiles(opts.css...)
	head.JS().AddFiles(opts.js...)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", opts.accept)
	rec := httptest.NewRecorder()
	if err := head.Render(ctx, rec, req); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.showHeaders {
		names := make([]string, 0, len(rec.Header()))
		for name := range rec.Header() {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "%s: %s\n", name, strings.Join(rec.Header().Values(name), ", "))
		}
		fmt.Fprintln(out)
	}
	_, err = rec.Body.WriteTo(out)
	return err
}
