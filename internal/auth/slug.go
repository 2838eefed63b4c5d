package auth

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Slugify derives a URL-safe slug from a company name: lowercase, whitespace
// runs collapsed to single hyphens, everything outside [a-z0-9-] stripped.
func Slugify(name string) string {
	lower := strings.ToLower(name)
	fields := strings.FieldsFunc(lower, unicode.IsSpace)
	joined := strings.Join(fields, "-")

	var b strings.Builder
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// uniqueSlug appends a time-derived four-digit disambiguator so two signups
// with the same company name get distinct slugs without a retry loop. The
// store's unique constraint on slug backstops the residual collision window.
func uniqueSlug(name string, now time.Time) string {
	return fmt.Sprintf("%s-%04d", Slugify(name), now.UnixMilli()%10000)
}
