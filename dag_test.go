package headcontrol

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func cssHrefs(links []CSSLink) []string {
	hrefs := make([]string, 0, len(links))
	for _, link := range links {
		hrefs = append(hrefs, link.Href)
	}
	return hrefs
}

func TestWalkGraphKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	links := []CSSLink{{Href: "c.css"}, {Href: "a.css"}, {Href: "b.css"}, {Href: "a.css"}}
	got, err := walkGraph(context.Background(), buildGraph(links))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := []string{"c.css", "a.css", "b.css"}; !slices.Equal(cssHrefs(got), want) {
		t.Errorf("expected %v, got %v", want, cssHrefs(got))
	}
}

func TestWalkGraphHonorsDependencies(t *testing.T) {
	t.Parallel()

	links := []CSSLink{
		{Href: "theme.css", After: []string{"reset.css", "missing.css"}},
		{Href: "print.css"},
		{Href: "reset.css"},
		{Href: "overrides.css", After: []string{"theme.css"}},
	}
	got, err := walkGraph(context.Background(), buildGraph(links))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := []string{"print.css", "reset.css", "theme.css", "overrides.css"}; !slices.Equal(cssHrefs(got), want) {
		t.Errorf("expected %v, got %v", want, cssHrefs(got))
	}
}

func TestWalkGraphCycle(t *testing.T) {
	t.Parallel()

	links := []JSLink{
		{Src: "a.js", After: []string{"b.js"}},
		{Src: "b.js", After: []string{"a.js"}},
		{Src: "c.js"},
	}
	got, err := walkGraph(context.Background(), buildGraph(links))
	if !errors.Is(err, ErrResourceCycle) {
		t.Fatalf("expected %v, got %v", ErrResourceCycle, err)
	}
	if len(got) != 1 || got[0].Src != "c.js" {
		t.Errorf("expected only c.js to be ordered, got %v", got)
	}
}
