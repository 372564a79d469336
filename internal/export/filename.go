package export

import (
	"strings"
	"unicode"
)

// FileName derives the download name from a resume title: lowercased,
// non-alphanumeric/non-space characters stripped, internal whitespace
// collapsed to underscores, suffixed with _resume.pdf. A missing or
// unusable title falls back to resume.pdf.
func FileName(title string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	slug := strings.Join(strings.Fields(b.String()), "_")
	if slug == "" {
		return "resume.pdf"
	}
	return slug + "_resume.pdf"
}
