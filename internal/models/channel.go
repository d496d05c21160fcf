package models

import "strings"

// Defaults applied when a channel record carries no usable value for a field.
const (
	DefaultName  = "Unknown Channel"
	DefaultGroup = "Other"
)

// StreamSchemes lists the URL prefixes a channel must start with to be emitted.
var StreamSchemes = []string{"http://", "https://", "rtmp://", "rtsp://"}

// Channel is a normalized playlist entry (name, url, group, logo).
type Channel struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Group string `json:"group"`
	Logo  string `json:"logo,omitempty"`
}

// Valid reports whether the channel has a stream URL with an accepted scheme.
func (c Channel) Valid() bool {
	if c.URL == "" {
		return false
	}
	for _, scheme := range StreamSchemes {
		if strings.HasPrefix(c.URL, scheme) {
			return true
		}
	}
	return false
}
