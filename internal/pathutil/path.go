package pathutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsVariable reports whether a path segment is a template variable.
func IsVariable(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

// Segments returns the non-empty segments of a path template.
func Segments(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// IsSpinalCase reports whether segment only contains lowercase letters,
// digits and hyphens. Letters outside ASCII count when they are lowercase.
func IsSpinalCase(segment string) bool {
	if segment == "" {
		return false
	}
	for _, r := range segment {
		if r != '-' && !unicode.IsLower(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// NonSpinalSegments returns the non-variable segments of path that are not
// spinal-case, in order.
func NonSpinalSegments(path string) []string {
	var out []string
	for _, seg := range Segments(path) {
		if IsVariable(seg) || IsSpinalCase(seg) {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// ToSpinalCase suggests a spinal-case spelling for segment. Case changes
// and separators such as "_" or "." become single hyphens.
func ToSpinalCase(segment string) string {
	runes := []rune(segment)
	var sb strings.Builder
	sb.Grow(len(segment) + 4)
	hyphen := func() {
		if s := sb.String(); s != "" && !strings.HasSuffix(s, "-") {
			sb.WriteByte('-')
		}
	}
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			hyphen()
			continue
		case unicode.IsUpper(r) && i > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				hyphen()
			}
		}
		sb.WriteRune(r)
	}
	return strings.TrimSuffix(cases.Lower(language.Und).String(sb.String()), "-")
}
