package nanotree

import (
	"path"
	"strings"
)

// InvalidPathError is returned when a path string given to UpsertString
// cannot be normalized into a valid sequence of components. Stat reports
// such a path as not found instead of returning an error.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return "nanotree: invalid path " + e.Path + ": " + e.Reason
}

// NewInvalidPathError wraps p and reason as an InvalidPathError.
func NewInvalidPathError(p, reason string) *InvalidPathError {
	return &InvalidPathError{Path: p, Reason: reason}
}

// normalizePath trims surrounding whitespace and slashes, collapses repeated
// slashes, and rejects ".." components, the way Git path arguments are
// normalized before use. An empty result after trimming denotes the root:
// Stat reports no entry for it, and UpsertString passes Upsert no
// components, which Upsert rejects with ErrEmptyPath.
func normalizePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	p = strings.Trim(p, "/")
	if p == "" {
		return "", nil
	}
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", NewInvalidPathError(p, "path contains parent directory references (..)")
		}
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return "", nil
	}
	return cleaned, nil
}

// splitPath splits an already-'/'-delimited string into path components,
// skipping empty segments so a leading, trailing, or doubled slash never
// produces an empty component.
func splitPath(path string) [][]byte {
	var components [][]byte
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if i > start {
				components = append(components, []byte(path[start:i]))
			}
			start = i + 1
		}
	}
	return components
}
