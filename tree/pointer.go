package tree

import "strings"

// SplitPointer decodes a JSON pointer into its unescaped reference tokens.
//
// A leading "#" (URI fragment form) is accepted. "" and "/" (or "#", "#/")
// address the node itself and yield no segments. SplitPointer never fails:
// anything that is not a valid pointer simply produces segments that will
// not resolve.
func SplitPointer(pointer string) []string {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" || pointer == "/" {
		return nil
	}
	pointer = strings.TrimPrefix(pointer, "/")
	parts := strings.Split(pointer, "/")
	for i, p := range parts {
		parts[i] = UnescapePointerToken(p)
	}
	return parts
}

// UnescapePointerToken reverses EscapePointerToken (~1 → /, ~0 → ~).
func UnescapePointerToken(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// EscapePointerToken escapes a property name for use in a JSON pointer.
func EscapePointerToken(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// JoinPointer builds a pointer from unescaped segments.
func JoinPointer(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(EscapePointerToken(s))
	}
	return b.String()
}

// IsLocalRef reports whether ref points into the same document.
func IsLocalRef(ref string) bool {
	return strings.HasPrefix(ref, "#")
}
