package taxonomy

import (
	"strings"

	"go-talent-session/internal/domain"
)

// Buckets are matched by lower-cased type prefix, first match wins.
var buckets = []struct {
	prefix string
	kind   domain.FilterKind
}{
	{"reaction", domain.FilterLikes},
	{"comment", domain.FilterComments},
	{"reply", domain.FilterComments},
	{"connection", domain.FilterConnections},
	{"job", domain.FilterJobs},
	{"company_post", domain.FilterPosts},
	{"new_post", domain.FilterPosts},
	{"message", domain.FilterMessages},
}

// Bucket returns the domain filter a notification type belongs to.
func Bucket(t domain.NotificationType) (domain.FilterKind, bool) {
	lower := strings.ToLower(string(t))
	for _, b := range buckets {
		if strings.HasPrefix(lower, b.prefix) {
			return b.kind, true
		}
	}
	return "", false
}

// IsDomainFilter reports whether kind selects a bucket rather than all/unread.
func IsDomainFilter(kind domain.FilterKind) bool {
	for _, b := range buckets {
		if b.kind == kind {
			return true
		}
	}
	return false
}
