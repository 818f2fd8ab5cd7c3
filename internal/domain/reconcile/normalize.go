package reconcile

import "strings"

var statusSuffixes = []string{" INJ", " SUS"}

// Normalize reduces a display name to a comparison key: trailing
// availability tags are stripped, then everything outside [a-z0-9] is
// dropped after lowercasing. Total over any input; empty in, empty out.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	for _, suffix := range statusSuffixes {
		name = strings.TrimSuffix(name, suffix)
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// lastNameToken returns the final whitespace-separated token, lowercased.
func lastNameToken(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return ""
	}

	return strings.ToLower(fields[len(fields)-1])
}

// firstInitial returns the lowercased first character of the trimmed
// name, or zero when the name is empty.
func firstInitial(name string) byte {
	trimmed := strings.TrimSpace(strings.ToLower(name))
	if trimmed == "" {
		return 0
	}

	return trimmed[0]
}
