package headcontrol

import (
	"slices"
)

// RSSChannel is a feed advertised through a <link rel="alternate"> element.
type RSSChannel struct {
	Title string

	// Link is where the feed lives. If the Site implements LinkResolver,
	// it's passed through ResolveLink before rendering.
	Link string
}

// AddRSSChannel advertises a feed.
func (h *HeaderControl) AddRSSChannel(title, link string) {
	h.rssChannels = append(h.rssChannels, RSSChannel{Title: title, Link: link})
}

// RSSChannels returns the advertised feeds, in the order they were added.
func (h *HeaderControl) RSSChannels() []RSSChannel {
	return slices.Clone(h.rssChannels)
}
