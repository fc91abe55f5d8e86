package domain

import (
	"math"
	"strings"
)

// Feature vector layout. Block sizes are part of the scoring semantics and
// changing them requires a MatchingAlgorithmVersion bump.
const (
	GenreBuckets    = 16
	DirectorBuckets = 16
	CastBuckets     = 32

	genreOffset    = 0
	yearOffset     = genreOffset + GenreBuckets
	runtimeOffset  = yearOffset + 1
	ratingOffset   = runtimeOffset + 1
	directorOffset = ratingOffset + 1
	castOffset     = directorOffset + DirectorBuckets

	// EmbeddingDimensions is the length of every feature vector.
	EmbeddingDimensions = castOffset + CastBuckets
)

// Scalar normalization ranges.
const (
	minReleaseYear = 1900
	maxReleaseYear = 2025
	minRuntime     = 60
	maxRuntime     = 240
	minRating      = 0
	maxRating      = 10
)

// EmbedSwipe maps a swipe's metadata snapshot onto a fixed-length feature
// vector: multi-hot hashed genre, director and cast blocks plus min-max
// normalized release year, runtime and rating. Missing fields leave zeros.
func EmbedSwipe(swipe Swipe) []float64 {
	vector := make([]float64, EmbeddingDimensions)

	setHashedBuckets(vector, genreOffset, GenreBuckets, genreHashSeed, swipe.Genres)
	setHashedBuckets(vector, directorOffset, DirectorBuckets, directorHashSeed, swipe.Directors)
	setHashedBuckets(vector, castOffset, CastBuckets, castHashSeed, swipe.Cast)

	if swipe.ReleaseYear != nil {
		vector[yearOffset] = minMaxNormalize(float64(*swipe.ReleaseYear), minReleaseYear, maxReleaseYear)
	}
	if swipe.Runtime != nil {
		vector[runtimeOffset] = minMaxNormalize(float64(*swipe.Runtime), minRuntime, maxRuntime)
	}
	if swipe.Rating != nil {
		vector[ratingOffset] = minMaxNormalize(*swipe.Rating, minRating, maxRating)
	}

	return vector
}

func setHashedBuckets(vector []float64, offset, buckets, seed int, values []string) {
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		vector[offset+hashBucket(value, seed, buckets)] = 1
	}
}

// minMaxNormalize clamps v to [lo, hi] and maps it to [0, 1].
// Non-finite input maps to 0.
func minMaxNormalize(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Max(lo, math.Min(hi, v))
	return (v - lo) / (hi - lo)
}
