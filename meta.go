package headcontrol

import (
	"strings"
)

const (
	metaAuthor      = "author"
	metaDescription = "description"
	metaKeywords    = "keywords"
	metaRobots      = "robots"
)

// MetaTag is a <meta name="..." content="..."> element.
type MetaTag struct {
	Name    string
	Content string
}

// SetMetaTag sets the content of the meta tag called name. Meta tags are
// rendered in the order they were first set.
func (h *HeaderControl) SetMetaTag(name, content string) {
	if _, ok := h.metaTags[name]; !ok {
		h.metaNames = append(h.metaNames, name)
	}
	h.metaTags[name] = content
}

// MetaTag returns the content of the meta tag called name, and whether it's
// set at all.
func (h *HeaderControl) MetaTag(name string) (string, bool) {
	content, ok := h.metaTags[name]
	return content, ok
}

// MetaTags returns every meta tag, in the order they'll be rendered.
func (h *HeaderControl) MetaTags() []MetaTag {
	tags := make([]MetaTag, 0, len(h.metaNames))
	for _, name := range h.metaNames {
		tags = append(tags, MetaTag{Name: name, Content: h.metaTags[name]})
	}
	return tags
}

// SetAuthor sets the author meta tag.
func (h *HeaderControl) SetAuthor(author string) {
	h.SetMetaTag(metaAuthor, author)
}

// Author returns the author meta tag.
func (h *HeaderControl) Author() string {
	author, _ := h.MetaTag(metaAuthor)
	return author
}

// SetDescription sets the description meta tag.
func (h *HeaderControl) SetDescription(description string) {
	h.SetMetaTag(metaDescription, description)
}

// Description returns the description meta tag.
func (h *HeaderControl) Description() string {
	description, _ := h.MetaTag(metaDescription)
	return description
}

// AddKeywords appends keywords to the keywords meta tag, comma separated.
func (h *HeaderControl) AddKeywords(keywords ...string) {
	if len(keywords) < 1 {
		return
	}
	joined := strings.Join(keywords, ", ")
	if existing := h.Keywords(); existing != "" {
		joined = existing + ", " + joined
	}
	h.SetMetaTag(metaKeywords, joined)
}

// Keywords returns the keywords meta tag.
func (h *HeaderControl) Keywords() string {
	keywords, _ := h.MetaTag(metaKeywords)
	return keywords
}

// SetRobots sets the robots meta tag, e.g. "noindex, nofollow".
func (h *HeaderControl) SetRobots(robots string) {
	h.SetMetaTag(metaRobots, robots)
}

// Robots returns the robots meta tag.
func (h *HeaderControl) Robots() string {
	robots, _ := h.MetaTag(metaRobots)
	return robots
}
