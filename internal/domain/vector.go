package domain

import "math"

// PreferenceVector is a unit-length direction in feature space, or the zero
// vector when there is no usable signal.
type PreferenceVector struct {
	Values    []float64
	Magnitude float64 // norm before normalization
	IsZero    bool
}

// NormalizeVector scales v to unit length. A zero vector yields zeros of the
// same length with IsZero set, which callers must treat as "no signal".
func NormalizeVector(v []float64) PreferenceVector {
	magnitude := Magnitude(v)
	values := make([]float64, len(v))
	if magnitude == 0 {
		return PreferenceVector{Values: values, IsZero: true}
	}
	for i, x := range v {
		values[i] = x / magnitude
	}
	return PreferenceVector{Values: values, Magnitude: magnitude}
}

// Magnitude computes the Euclidean norm of v.
func Magnitude(v []float64) float64 {
	sum := float64(0)
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// DotProduct computes the dot product over the shorter of the two vectors.
func DotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	sum := float64(0)
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// UserPreferenceVector sums the embeddings of the user's swipes, adding likes
// and subtracting dislikes, then normalizes the sum.
func UserPreferenceVector(swipes []Swipe, userID string, embed func(Swipe) []float64) PreferenceVector {
	sum := make([]float64, EmbeddingDimensions)
	for _, swipe := range swipes {
		if swipe.UserID != userID {
			continue
		}

		var sign float64
		switch swipe.Decision {
		case DecisionLike:
			sign = 1
		case DecisionDislike:
			sign = -1
		default:
			continue
		}

		addScaled(sum, embed(swipe), sign)
	}
	return NormalizeVector(sum)
}

// ConsensusVector is the normalized component-wise sum of per-user vectors.
func ConsensusVector(vectors []PreferenceVector) PreferenceVector {
	sum := make([]float64, EmbeddingDimensions)
	for _, v := range vectors {
		addScaled(sum, v.Values, 1)
	}
	return NormalizeVector(sum)
}

func addScaled(dst, src []float64, scale float64) {
	for i := range dst {
		if i >= len(src) {
			return
		}
		dst[i] += scale * src[i]
	}
}
