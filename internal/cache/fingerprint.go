package cache

import "strings"

// DefaultPrefixLen is how much of the content participates in a fingerprint.
//
// Keys truncate content to a short prefix instead of hashing the full text.
// Two long documents that share their first DefaultPrefixLen characters but
// differ later will collide and share a cache slot. This is a deliberate
// trade-off: fingerprints stay cheap for large notes, and a collision only
// ever serves a stale generation, never corrupts stored data. Switching to
// full-content hashing would change hit rates and cost and needs an explicit
// decision, not a quiet fix.
const DefaultPrefixLen = 80

// Fingerprint derives the cache key for a generation request from the
// operation kind, the entity it concerns, a content prefix, and any
// operation parameters (summary level, enhancement kind).
func Fingerprint(op, entityID, content string, params ...string) string {
	return FingerprintN(op, entityID, content, DefaultPrefixLen, params...)
}

// FingerprintN is Fingerprint with an explicit content prefix length.
func FingerprintN(op, entityID, content string, prefixLen int, params ...string) string {
	if prefixLen <= 0 {
		prefixLen = DefaultPrefixLen
	}
	if runes := []rune(content); len(runes) > prefixLen {
		content = string(runes[:prefixLen])
	}

	parts := make([]string, 0, 3+len(params))
	parts = append(parts, op, entityID)
	parts = append(parts, params...)
	parts = append(parts, content)
	return strings.Join(parts, "|")
}
