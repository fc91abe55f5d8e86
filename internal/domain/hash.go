package domain

// Seeds keep identical strings in different fields in separate bucket spaces.
const (
	genreHashSeed    = 11
	directorHashSeed = 23
	castHashSeed     = 37
)

// StableHash is a rolling multiplicative string hash (31*h + c over the
// string's runes, wrapping at 32 bits) started from seed. The result is the
// absolute value of the final 32-bit state, so it is never negative, and it is
// identical across runs and platforms.
//
// It iterates Unicode code points, not UTF-16 code units, so for characters
// outside the Basic Multilingual Plane (emoji, for example) it differs from
// Java's String.hashCode.
func StableHash(s string, seed int) int64 {
	h := int32(seed) //nolint:gosec // seeds are small constants
	for _, r := range s {
		h = 31*h + r
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

func hashBucket(s string, seed, buckets int) int {
	return int(StableHash(s, seed) % int64(buckets))
}
