package headcontrol_test

import (
	"errors"
	"testing"

	"impractical.co/headcontrol"
)

func TestDocTypeDeclaration(t *testing.T) {
	t.Parallel()

	cases := map[headcontrol.DocType]string{
		headcontrol.HTML4Strict:        `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
		headcontrol.HTML4Transitional:  `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`,
		headcontrol.HTML4Frameset:      `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN" "http://www.w3.org/TR/html4/frameset.dtd">`,
		headcontrol.HTML5:              `<!DOCTYPE html>`,
		headcontrol.XHTML1Strict:       `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`,
		headcontrol.XHTML1Transitional: `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`,
		headcontrol.XHTML1Frameset:     `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd">`,
	}
	for docType, want := range cases {
		t.Run(string(docType), func(t *testing.T) {
			t.Parallel()

			if err := docType.Validate(); err != nil {
				t.Fatalf("unexpected validation error: %s", err)
			}
			got, err := docType.Declaration()
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestDocTypeAliases(t *testing.T) {
	t.Parallel()

	if headcontrol.HTML4 != headcontrol.HTML4Strict {
		t.Errorf("expected HTML4 to be %q, got %q", headcontrol.HTML4Strict, headcontrol.HTML4)
	}
	if headcontrol.XHTML1 != headcontrol.XHTML1Strict {
		t.Errorf("expected XHTML1 to be %q, got %q", headcontrol.XHTML1Strict, headcontrol.XHTML1)
	}
}

func TestDocTypeUnsupported(t *testing.T) {
	t.Parallel()

	for _, docType := range []headcontrol.DocType{"", "html3", "XHTML1_STRICT", "xhtml11"} {
		if err := docType.Validate(); !errors.Is(err, headcontrol.ErrUnsupportedDocType) {
			t.Errorf("expected %q to be unsupported, got %v", docType, err)
		}
		if _, err := docType.Declaration(); !errors.Is(err, headcontrol.ErrUnsupportedDocType) {
			t.Errorf("expected no declaration for %q, got %v", docType, err)
		}
	}
}

func TestDocTypeIsXML(t *testing.T) {
	t.Parallel()

	cases := map[headcontrol.DocType]bool{
		headcontrol.HTML4Strict:        false,
		headcontrol.HTML4Transitional:  false,
		headcontrol.HTML4Frameset:      false,
		headcontrol.HTML5:              false,
		headcontrol.XHTML1Strict:       true,
		headcontrol.XHTML1Transitional: true,
		headcontrol.XHTML1Frameset:     true,
	}
	for docType, want := range cases {
		if got := docType.IsXML(); got != want {
			t.Errorf("expected IsXML for %q to be %v, got %v", docType, want, got)
		}
	}
}
