// Package querystate keeps the "show parameters" flag in the page URL's query
// string so a reload restores the debug panel.
package querystate

import (
	"fmt"
	"net/url"
)

// DebugKey is the query parameter holding the flag.
const DebugKey = "debug"

// Debug reports whether u carries debug=true. Any other value, or none,
// means false.
func Debug(u *url.URL) bool {
	if u == nil {
		return false
	}
	return u.Query().Get(DebugKey) == "true"
}

// WithDebug returns a copy of u with debug=true when on, or with the key
// removed entirely when off. Other query parameters are kept.
func WithDebug(u *url.URL, on bool) *url.URL {
	out := *u
	q := out.Query()
	if on {
		q.Set(DebugKey, "true")
	} else {
		q.Del(DebugKey)
	}
	out.RawQuery = q.Encode()
	return &out
}

// Location is the address the flag is mirrored into.
type Location interface {
	Href() string
	// Replace swaps the current address without adding a history entry.
	Replace(href string) error
}

// Read parses the current address of loc and reports the flag.
func Read(loc Location) (bool, error) {
	u, err := url.Parse(loc.Href())
	if err != nil {
		return false, fmt.Errorf("parse location: %w", err)
	}
	return Debug(u), nil
}

// Sync writes the flag into loc.
func Sync(loc Location, on bool) error {
	u, err := url.Parse(loc.Href())
	if err != nil {
		return fmt.Errorf("parse location: %w", err)
	}
	return loc.Replace(WithDebug(u, on).String())
}

// Memory is a Location held in process, used outside the browser.
type Memory struct {
	href string
}

func NewMemory(href string) *Memory {
	return &Memory{href: href}
}

func (m *Memory) Href() string { return m.href }

func (m *Memory) Replace(href string) error {
	m.href = href
	return nil
}
