package paths

import (
	"path"
	"strings"
)

// Normalize canonicalizes slashes to '/', cleans the path and strips any
// trailing separator. The empty string stays empty.
func Normalize(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}

	p = strings.ReplaceAll(p, "\\", "/")

	// Preserve UNC prefixes, path.Clean would collapse them.
	unc := strings.HasPrefix(p, "//")

	cleaned := path.Clean(p)
	if unc && !strings.HasPrefix(cleaned, "//") {
		cleaned = "/" + cleaned
	}

	// "C:" is a drive-relative path; keep the root separator.
	if len(cleaned) == 2 && cleaned[1] == ':' {
		cleaned += "/"
	}
	return cleaned
}

// Join joins path elements and normalizes the result
func Join(elem ...string) string {
	return Normalize(path.Join(elem...))
}

// Parent returns the normalized parent directory of p
func Parent(p string) string {
	p = Normalize(p)
	if p == "" {
		return ""
	}
	return Normalize(path.Dir(p))
}
