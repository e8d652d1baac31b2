package store

import (
	"strings"
	"time"
)

// SummaryRecord is one row of the summaries table: the publishable
// metadata for a single transcript/audio file.
type SummaryRecord struct {
	Filename      string
	Headline      string
	Summary       string
	Keywords      []string
	MP3Filename   string
	CreatedAt     time.Time
	ImageFilename *string
}

// CreatedAtDisplay formats the creation time the way the listing pages show it.
func (r SummaryRecord) CreatedAtDisplay() string {
	return r.CreatedAt.Format("2006-01-02 15:04:05")
}

// joinKeywords serializes keywords into the stored comma-separated form.
func joinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}

// splitKeywords parses the stored form back into a slice, dropping
// empty entries left by stray delimiters.
func splitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
