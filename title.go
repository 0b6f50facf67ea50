package headcontrol

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrEmptyTitle is returned when the base title is set to an empty
	// string.
	ErrEmptyTitle = errors.New("title must be a non-empty string")

	// ErrTitleSeparatorNotSet is returned when a title is added before a
	// separator to join titles with has been set.
	ErrTitleSeparatorNotSet = errors.New("title separator is not set")
)

// SetTitle sets the base title of the document, usually the name of the
// site.
func (h *HeaderControl) SetTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	h.title = title
	return nil
}

// Title returns one of the document's titles. 0 is the title added last, 1
// the one before it, and so on. The base title is returned when no titles
// have been added or index is out of range.
func (h *HeaderControl) Title(index int) string {
	pos := len(h.titles) - 1 - index
	if index < 0 || pos < 0 {
		return h.title
	}
	return h.titles[pos]
}

// AddTitle pushes a title onto the title stack, usually the name of the
// section or page being rendered. A separator needs to be set first.
func (h *HeaderControl) AddTitle(title string) error {
	if h.titleSeparator == "" {
		return ErrTitleSeparatorNotSet
	}
	h.titles = append(h.titles, title)
	return nil
}

// Titles returns the added titles, oldest first. The base title isn't
// included.
func (h *HeaderControl) Titles() []string {
	return slices.Clone(h.titles)
}

// SetTitleSeparator sets the string titles are joined with.
func (h *HeaderControl) SetTitleSeparator(separator string) {
	h.titleSeparator = separator
}

// TitleSeparator returns the string titles are joined with.
func (h *HeaderControl) TitleSeparator() string {
	return h.titleSeparator
}

// SetTitlesReverseOrder controls the order TitleString joins titles in. When
// reverse is true, which is the default, the most specific title comes first
// and the base title last.
func (h *HeaderControl) SetTitlesReverseOrder(reverse bool) {
	h.titlesReverseOrder = reverse
}

// TitlesReverseOrder reports whether titles are joined most specific first.
func (h *HeaderControl) TitlesReverseOrder() bool {
	return h.titlesReverseOrder
}

// TitleString returns the contents of the <title> element: the base title and
// every added title joined with the separator.
func (h *HeaderControl) TitleString() string {
	if len(h.titles) < 1 {
		return h.title
	}
	parts := make([]string, 0, len(h.titles)+1)
	if h.titlesReverseOrder {
		for i := len(h.titles) - 1; i >= 0; i-- {
			parts = append(parts, h.titles[i])
		}
		parts = append(parts, h.title)
	} else {
		parts = append(parts, h.title)
		parts = append(parts, h.titles...)
	}
	return strings.Join(parts, h.titleSeparator)
}
