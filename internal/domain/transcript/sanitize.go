package transcript

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// CensorMarker replaces every blocked word.
const CensorMarker = "[CENSORED]"

// DefaultBlocklist is used when no words are configured.
var DefaultBlocklist = []string{
	"explicit_word1",
	"explicit_word2",
}

// Sanitizer redacts whole-word, case-insensitive matches of a fixed word list.
// Word boundaries are Unicode aware, so "café" is a whole word and "damné"
// does not contain "damn".
type Sanitizer struct {
	pattern *regexp2.Regexp
}

// NewSanitizer compiles words into a single alternation. Words are matched
// literally; an empty list yields a sanitizer that returns its input.
func NewSanitizer(words []string) *Sanitizer {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			quoted = append(quoted, regexp2.Escape(w))
		}
	}
	if len(quoted) == 0 {
		return &Sanitizer{}
	}
	pattern := regexp2.MustCompile(`\b(?:`+strings.Join(quoted, "|")+`)\b`, regexp2.IgnoreCase)
	return &Sanitizer{pattern: pattern}
}

// Sanitize returns text with every blocked word replaced by CensorMarker.
func (s *Sanitizer) Sanitize(text string) string {
	if s == nil || s.pattern == nil {
		return text
	}
	// Replace only fails on a match timeout, and none is configured.
	out, err := s.pattern.ReplaceFunc(text, func(regexp2.Match) string { return CensorMarker }, 0, -1)
	if err != nil {
		return text
	}
	return out
}
