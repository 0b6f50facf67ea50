package headcontrol_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"impractical.co/headcontrol"
)

func newHead(t *testing.T, docType headcontrol.DocType, opts ...headcontrol.Option) *headcontrol.HeaderControl {
	t.Helper()

	head, err := headcontrol.New(context.Background(), docType, "en", "My Site", opts...)
	if err != nil {
		t.Fatalf("unexpected error creating HeaderControl: %s", err)
	}
	return head
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	head := newHead(t, headcontrol.HTML5)
	if head.DocType() != headcontrol.HTML5 {
		t.Errorf("expected doctype %q, got %q", headcontrol.HTML5, head.DocType())
	}
	if head.Language() != "en" {
		t.Errorf("expected language %q, got %q", "en", head.Language())
	}
	if head.Title(0) != "My Site" {
		t.Errorf("expected title %q, got %q", "My Site", head.Title(0))
	}
	if head.ContentType() != headcontrol.TextHTML {
		t.Errorf("expected content type %q, got %q", headcontrol.TextHTML, head.ContentType())
	}
	if head.IsContentTypeForced() {
		t.Error("expected content type not to be forced")
	}
	if !head.TitlesReverseOrder() {
		t.Error("expected titles to be reversed by default")
	}
	if head.Favicon() != "" {
		t.Errorf("expected no favicon without a public directory, got %q", head.Favicon())
	}
	if head.CSS() == nil || head.JS() == nil {
		t.Error("expected default asset loaders")
	}
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	type testCase struct {
		docType headcontrol.DocType
		lang    string
		title   string
		opts    []headcontrol.Option
		want    error
	}

	cases := map[string]testCase{
		"doctype": {
			docType: "html3",
			lang:    "en",
			title:   "Title",
			want:    headcontrol.ErrUnsupportedDocType,
		},
		"language": {
			docType: headcontrol.HTML5,
			lang:    "not a language",
			title:   "Title",
			want:    headcontrol.ErrInvalidLanguage,
		},
		"title": {
			docType: headcontrol.HTML5,
			lang:    "en",
			want:    headcontrol.ErrEmptyTitle,
		},
		"content-type-mismatch": {
			docType: headcontrol.HTML4Strict,
			lang:    "en",
			title:   "Title",
			opts:    []headcontrol.Option{headcontrol.WithContentType(headcontrol.ApplicationXHTML, false)},
			want:    headcontrol.ErrContentTypeMismatch,
		},
		"content-type-unsupported": {
			docType: headcontrol.XHTML1Strict,
			lang:    "en",
			title:   "Title",
			opts:    []headcontrol.Option{headcontrol.WithContentType("text/plain", false)},
			want:    headcontrol.ErrUnsupportedContentType,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := headcontrol.New(context.Background(), tc.docType, tc.lang, tc.title, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected error %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSetContentType(t *testing.T) {
	t.Parallel()

	for _, docType := range []headcontrol.DocType{headcontrol.HTML4Strict, headcontrol.HTML4Transitional, headcontrol.HTML4Frameset, headcontrol.HTML5} {
		head := newHead(t, docType)
		err := head.SetContentType(headcontrol.ApplicationXHTML, false)
		if !errors.Is(err, headcontrol.ErrContentTypeMismatch) {
			t.Errorf("expected XHTML to be rejected for %q, got %v", docType, err)
		}
		if head.ContentType() != headcontrol.TextHTML {
			t.Errorf("expected content type to stay %q for %q, got %q", headcontrol.TextHTML, docType, head.ContentType())
		}
	}
	for _, docType := range []headcontrol.DocType{headcontrol.XHTML1Strict, headcontrol.XHTML1Transitional, headcontrol.XHTML1Frameset} {
		head := newHead(t, docType)
		if err := head.SetContentType(headcontrol.ApplicationXHTML, true); err != nil {
			t.Errorf("unexpected error for %q: %s", docType, err)
		}
		if head.ContentType() != headcontrol.ApplicationXHTML {
			t.Errorf("expected content type %q for %q, got %q", headcontrol.ApplicationXHTML, docType, head.ContentType())
		}
		if !head.IsContentTypeForced() {
			t.Errorf("expected content type to be forced for %q", docType)
		}
	}
}

func TestSetDocTypeKeepsContentTypeConsistent(t *testing.T) {
	t.Parallel()

	head := newHead(t, headcontrol.XHTML1Strict, headcontrol.WithContentType(headcontrol.ApplicationXHTML, false))
	if err := head.SetDocType(headcontrol.XHTML1Transitional); err != nil {
		t.Fatalf("unexpected error switching between XHTML doctypes: %s", err)
	}
	err := head.SetDocType(headcontrol.HTML5)
	if !errors.Is(err, headcontrol.ErrContentTypeMismatch) {
		t.Fatalf("expected %v, got %v", headcontrol.ErrContentTypeMismatch, err)
	}
	if head.DocType() != headcontrol.XHTML1Transitional {
		t.Errorf("expected doctype to stay %q, got %q", headcontrol.XHTML1Transitional, head.DocType())
	}
	if !head.IsXML() {
		t.Error("expected document to still be XML")
	}
	if err := head.SetDocType("html3"); !errors.Is(err, headcontrol.ErrUnsupportedDocType) {
		t.Errorf("expected %v, got %v", headcontrol.ErrUnsupportedDocType, err)
	}
}

func TestSetLanguage(t *testing.T) {
	t.Parallel()

	head := newHead(t, headcontrol.HTML5)
	for _, lang := range []string{"cs", "sk", "de", "en-GB", "zh-Hant"} {
		if err := head.SetLanguage(lang); err != nil {
			t.Errorf("unexpected error for %q: %s", lang, err)
		}
		if head.Language() != lang {
			t.Errorf("expected language %q, got %q", lang, head.Language())
		}
	}
	if err := head.SetLanguage(""); !errors.Is(err, headcontrol.ErrInvalidLanguage) {
		t.Errorf("expected %v, got %v", headcontrol.ErrInvalidLanguage, err)
	}
	if head.Language() != "zh-Hant" {
		t.Errorf("expected language to be unchanged, got %q", head.Language())
	}
}

func TestFavicon(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	public := fstest.MapFS{
		"favicon.ico":     {Data: []byte("icon")},
		"images/logo.png": {Data: []byte("logo")},
	}
	head := newHead(t, headcontrol.HTML5, headcontrol.WithSite(headcontrol.NewCachedSite(public, "/")))
	if head.Favicon() != headcontrol.DefaultFavicon {
		t.Errorf("expected default favicon %q, got %q", headcontrol.DefaultFavicon, head.Favicon())
	}
	if err := head.SetFavicon(ctx, "images/logo.png"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if head.Favicon() != "images/logo.png" {
		t.Errorf("expected favicon %q, got %q", "images/logo.png", head.Favicon())
	}
	err := head.SetFavicon(ctx, "missing.ico")
	if !errors.Is(err, headcontrol.ErrFaviconNotFound) {
		t.Errorf("expected %v, got %v", headcontrol.ErrFaviconNotFound, err)
	}
	if head.Favicon() != "images/logo.png" {
		t.Errorf("expected favicon to be unchanged, got %q", head.Favicon())
	}
}

func TestMissingFaviconIgnoredByNew(t *testing.T) {
	t.Parallel()

	public := fstest.MapFS{"robots.txt": {Data: []byte("")}}
	head := newHead(t, headcontrol.HTML5, headcontrol.WithSite(headcontrol.NewCachedSite(public, "/")))
	if head.Favicon() != "" {
		t.Errorf("expected no favicon, got %q", head.Favicon())
	}
}
