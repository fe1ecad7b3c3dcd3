package backend

import (
	"strings"
)

// MediaResolver turns stored media references into absolute URLs.
type MediaResolver struct {
	base string
}

func NewMediaResolver(base string) MediaResolver {
	return MediaResolver{base: strings.TrimRight(base, "/")}
}

// Resolve leaves absolute URLs alone and prefixes relative references with
// the media base. An empty reference stays empty.
func (m MediaResolver) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "blob:") {
		return ref
	}
	if m.base == "" {
		return ref
	}
	return m.base + "/" + strings.TrimLeft(ref, "/")
}

func (m MediaResolver) resolvePtr(ref *string) *string {
	if ref == nil {
		return nil
	}
	out := m.Resolve(*ref)
	return &out
}
