package dashboard

import (
	"regexp"
	"sync"
)

// tagPatterns caches compiled tag patterns; the same tags are re-matched on
// every keystroke across the whole candidate set.
var tagPatterns sync.Map // string -> *regexp.Regexp

// compileTag builds the word-boundary-aware, case-insensitive matcher for one
// search tag. All regex metacharacters in the raw tag are escaped, and a
// boundary assertion is added only on sides that start or end with a word
// character. That keeps "react" from matching "reactive" while still letting
// symbol-edged tokens like "C++", "C#" or ".NET" match at all — a boundary
// assertion next to a non-word character can never succeed.
func compileTag(tag string) *regexp.Regexp {
	if cached, ok := tagPatterns.Load(tag); ok {
		return cached.(*regexp.Regexp)
	}

	pattern := regexp.QuoteMeta(tag)
	runes := []rune(tag)
	if len(runes) > 0 && isWordRune(runes[0]) {
		pattern = `\b` + pattern
	}
	if len(runes) > 0 && isWordRune(runes[len(runes)-1]) {
		pattern = pattern + `\b`
	}

	re := regexp.MustCompile(`(?i)` + pattern)
	tagPatterns.Store(tag, re)
	return re
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// matchesAnyField reports whether the tag matches at least one field.
func matchesAnyField(tag string, fields []string) bool {
	if tag == "" {
		return true
	}
	re := compileTag(tag)
	for _, field := range fields {
		if field != "" && re.MatchString(field) {
			return true
		}
	}
	return false
}
