package admin

import "strings"

// ParseImageURLs splits a comma separated list, trimming every entry and
// dropping the empty ones.
func ParseImageURLs(raw string) []string {
	parts := strings.Split(raw, ",")
	urls := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}

// FormatImageURLs is the editable text form of a URL list.
func FormatImageURLs(urls []string) string {
	return strings.Join(urls, ", ")
}
