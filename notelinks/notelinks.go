// Package notelinks packs a free-text note and a list of reference links
// into the single description string stored on a trip event, and unpacks
// it again.
package notelinks

import (
	"net/url"
	"regexp"
	"strings"
)

// Bare domains like "example.com/menu": at least one dotted label, a
// 2+ letter TLD, optional path/query.
var domainPattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)*\.[A-Za-z]{2,}(/[^\s]*)?(\?[^\s]*)?$`)

// Encode joins the trimmed note and each link with newlines, skipping
// empty parts. Encode("", nil) is "".
func Encode(note string, links []string) string {
	parts := make([]string, 0, len(links)+1)
	if n := strings.TrimSpace(note); n != "" {
		parts = append(parts, n)
	}
	for _, l := range links {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, "\n")
}

// Decode scans line by line: absolute http(s) URL lines are links, in
// order; everything else re-joins as the note.
func Decode(stored string) (string, []string) {
	links := []string{}
	noteLines := []string{}
	for _, line := range strings.Split(stored, "\n") {
		trimmed := strings.TrimSpace(line)
		if isAbsoluteURL(trimmed) {
			links = append(links, trimmed)
			continue
		}
		noteLines = append(noteLines, line)
	}
	return strings.TrimSpace(strings.Join(noteLines, "\n")), links
}

// IsValidLink gates link insertion: absolute http(s) URLs that parse, or
// conservative bare-domain strings.
func IsValidLink(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}
	if strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://") {
		return isAbsoluteURL(candidate)
	}
	return domainPattern.MatchString(candidate)
}

func isAbsoluteURL(s string) bool {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Host != "" && !strings.ContainsAny(s, " \t")
}
