package pipeline

import (
	"regexp"
	"strings"
)

// DefaultSideChannelTags lists the model control tags removed by Clean
// when no explicit list is configured.
var DefaultSideChannelTags = []string{"think"}

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Tag names accepted by NewSanitizer
	tagNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

// placeholderRunes removes the runes reserved for span placeholders.
var placeholderRunes = strings.NewReplacer(placeholderOpen, "", placeholderClose, "")

// Sanitizer removes model side-channel tags and normalizes whitespace.
// A Sanitizer is immutable and safe for concurrent use.
type Sanitizer struct {
	sideChannel *regexp.Regexp // nil when no tags are configured
}

// NewSanitizer builds a Sanitizer stripping the given tag pairs.
// Names that are not plain tag identifiers are ignored.
func NewSanitizer(tags []string) *Sanitizer {
	alternatives := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if !tagNamePattern.MatchString(tag) {
			continue
		}
		name := regexp.QuoteMeta(tag)
		alternatives = append(alternatives, "<"+name+">.*?</"+name+">")
	}

	s := &Sanitizer{}
	if len(alternatives) > 0 {
		// (?s) lets a tag pair span lines; (?i) matches <THINK> as well.
		s.sideChannel = regexp.MustCompile(`(?si)` + strings.Join(alternatives, "|"))
	}
	return s
}

// Clean applies all sanitizer steps.
// Order matters: line endings first so the blank-line rule sees only \n.
func (s *Sanitizer) Clean(raw string) string {
	if raw == "" {
		return ""
	}

	content := normalizeLineEndings(raw)
	content = placeholderRunes.Replace(content)
	if s.sideChannel != nil {
		content = s.sideChannel.ReplaceAllString(content, "")
	}
	content = compressBlankLines(content)
	return content
}

// IsTagName reports whether tag can be used as a side-channel tag name.
func IsTagName(tag string) bool {
	return tagNamePattern.MatchString(tag)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
