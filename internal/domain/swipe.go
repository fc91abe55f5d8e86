package domain

import "fmt"

// Decision is a user's verdict on a single title.
type Decision string

const (
	DecisionLike    Decision = "like"
	DecisionDislike Decision = "dislike"
)

// ParseDecision validates a decision string.
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionLike, DecisionDislike:
		return Decision(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDecision, s)
	}
}

// Swipe is one user's decision on one title, with a snapshot of the title's
// metadata at decision time. Swipes are immutable once recorded.
type Swipe struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	MediaID   string   `json:"media_id"`
	Decision  Decision `json:"decision"`
	CreatedAt int64    `json:"created_at"` // epoch millis

	Title             string   `json:"title,omitempty"`
	PosterURL         string   `json:"poster_url,omitempty"`
	Genres            []string `json:"genres,omitempty"`
	Directors         []string `json:"directors,omitempty"`
	Cast              []string `json:"cast,omitempty"`
	ReleaseYear       *int     `json:"release_year,omitempty"`
	Runtime           *int     `json:"runtime,omitempty"` // minutes
	Rating            *float64 `json:"rating,omitempty"`
	StreamingServices []string `json:"streaming_services,omitempty"`
}

// SwipeID builds the canonical identifier for a swipe.
func SwipeID(userID, mediaID string, createdAt int64) string {
	return fmt.Sprintf("%s_%s_%d", userID, mediaID, createdAt)
}

// MatchedTitle is one recommended title in a session result.
type MatchedTitle struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	PosterURL         string   `json:"poster_url,omitempty"`
	StreamingServices []string `json:"streaming_services,omitempty"`
	SimilarityScore   *float64 `json:"similarity_score,omitempty"`
	Certainty         *float64 `json:"certainty,omitempty"`
}

// MatchSessionResult is the outcome of matching a completed session.
type MatchSessionResult struct {
	MatchedTitles    []MatchedTitle `json:"matched_titles"`
	AlgorithmVersion int            `json:"algorithm_version"`
	Certainty        float64        `json:"certainty"`
	Fallback         bool           `json:"fallback"`
}

const (
	// MaxMatchResults is the number of titles proposed per session.
	MaxMatchResults = 3

	// MatchingAlgorithmVersion must be bumped whenever the embedding layout,
	// normalization ranges, certainty formula or candidate policy change.
	MatchingAlgorithmVersion = 2

	// FallbackCertainty is reported whenever the fallback path produced the result.
	FallbackCertainty = 0.5
)
