package domain

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"slices"
)

// EmbedFunc maps a swipe onto a feature vector.
type EmbedFunc func(swipe Swipe) []float64

// MatchStrategy is the set of capabilities the session matcher is built from.
// The matcher passes the strategy's own Embed to AggregateUser and Rank, so
// tests can substitute fakes for individual steps by embedding DefaultStrategy.
type MatchStrategy interface {
	Embed(swipe Swipe) []float64
	AggregateUser(swipes []Swipe, userID string, embed EmbedFunc) PreferenceVector
	AggregateConsensus(vectors []PreferenceVector) PreferenceVector
	Rank(
		swipes []Swipe, consensus PreferenceVector, candidateIDs []string, maxResults int, embed EmbedFunc,
	) (RankResult, error)
}

// DefaultStrategy is the hash-embedding strategy.
type DefaultStrategy struct{}

var _ MatchStrategy = DefaultStrategy{}

func (DefaultStrategy) Embed(swipe Swipe) []float64 {
	return EmbedSwipe(swipe)
}

func (DefaultStrategy) AggregateUser(swipes []Swipe, userID string, embed EmbedFunc) PreferenceVector {
	return UserPreferenceVector(swipes, userID, embed)
}

func (DefaultStrategy) AggregateConsensus(vectors []PreferenceVector) PreferenceVector {
	return ConsensusVector(vectors)
}

func (DefaultStrategy) Rank(
	swipes []Swipe, consensus PreferenceVector, candidateIDs []string, maxResults int, embed EmbedFunc,
) (RankResult, error) {
	return RankCandidates(swipes, consensus, candidateIDs, maxResults, embed), nil
}

// MatcherConfig holds configuration for session matching.
type MatcherConfig struct {
	// Policy selects which liked titles become ranking candidates.
	Policy CandidatePolicy

	// MaxResults is the number of titles returned per session.
	MaxResults int
}

// DefaultMatcherConfig returns the production matching configuration.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		Policy:     DefaultCandidatePolicy,
		MaxResults: MaxMatchResults,
	}
}

// Matcher turns a session's swipes into a small ranked set of titles.
type Matcher struct {
	Strategy MatchStrategy
	Config   MatcherConfig
}

// NewMatcher creates a Matcher, filling unset configuration with defaults.
func NewMatcher(strategy MatchStrategy, config MatcherConfig) *Matcher {
	if strategy == nil {
		strategy = DefaultStrategy{}
	}
	if config.Policy == "" {
		config.Policy = DefaultCandidatePolicy
	}
	if config.MaxResults <= 0 {
		config.MaxResults = MaxMatchResults
	}
	return &Matcher{Strategy: strategy, Config: config}
}

// MatchSession scores the session's liked titles against the participants'
// consensus. It never fails: whenever there is no usable signal, the score
// distribution is degenerate, or a strategy step errors or panics, it returns
// a shuffled fallback selection seeded by sessionSeed.
func (m *Matcher) MatchSession(
	ctx context.Context, swipes []Swipe, userIDs []string, sessionSeed string,
) (result MatchSessionResult) {
	logger := LoggerFromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "matching panicked, using fallback", "panic", r)
			result = m.fallback(swipes, sessionSeed)
		}
	}()

	vectors := make([]PreferenceVector, 0, len(userIDs))
	for _, userID := range userIDs {
		vectors = append(vectors, m.Strategy.AggregateUser(swipes, userID, m.Strategy.Embed))
	}
	consensus := m.Strategy.AggregateConsensus(vectors)
	candidateIDs := SelectCandidates(swipes, userIDs, m.Config.Policy)

	if len(candidateIDs) == 0 || consensus.IsZero {
		logger.DebugContext(ctx, "no usable matching signal, using fallback",
			"candidates", len(candidateIDs), "zero_consensus", consensus.IsZero)
		return m.fallback(swipes, sessionSeed)
	}

	ranking, err := m.Strategy.Rank(swipes, consensus, candidateIDs, m.maxResults(), m.Strategy.Embed)
	if err != nil {
		logger.ErrorContext(ctx, "ranking failed, using fallback", "error", err)
		return m.fallback(swipes, sessionSeed)
	}
	if ranking.Stats == nil || ranking.SessionCertainty == nil || len(ranking.Ranked) == 0 {
		logger.DebugContext(ctx, "degenerate score distribution, using fallback",
			"candidates", len(candidateIDs))
		return m.fallback(swipes, sessionSeed)
	}

	titles := make([]MatchedTitle, 0, len(ranking.Ranked))
	for _, candidate := range ranking.Ranked {
		title := matchedTitleFromSwipe(candidate.MediaID, candidate.Swipe)
		score, certainty := candidate.Score, candidate.Certainty
		title.SimilarityScore = &score
		title.Certainty = &certainty
		titles = append(titles, title)
	}

	return MatchSessionResult{
		MatchedTitles:    titles,
		AlgorithmVersion: MatchingAlgorithmVersion,
		Certainty:        *ranking.SessionCertainty,
		Fallback:         false,
	}
}

func (m *Matcher) fallback(swipes []Swipe, sessionSeed string) MatchSessionResult {
	return FallbackResult(swipes, m.maxResults(), FallbackRand(sessionSeed))
}

func (m *Matcher) maxResults() int {
	if m.Config.MaxResults <= 0 {
		return MaxMatchResults
	}
	return m.Config.MaxResults
}

// FallbackResult deduplicates swipes by media id (first seen wins), shuffles
// them with rng and keeps the first maxResults. Individual titles carry no
// score or certainty.
func FallbackResult(swipes []Swipe, maxResults int, rng *rand.Rand) MatchSessionResult {
	seen := make(map[string]struct{}, len(swipes))
	unique := make([]Swipe, 0, len(swipes))
	for _, swipe := range swipes {
		if _, ok := seen[swipe.MediaID]; ok {
			continue
		}
		seen[swipe.MediaID] = struct{}{}
		unique = append(unique, swipe)
	}

	// Fisher-Yates
	for i := len(unique) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		unique[i], unique[j] = unique[j], unique[i]
	}

	if len(unique) > maxResults {
		unique = unique[:maxResults]
	}

	titles := make([]MatchedTitle, 0, len(unique))
	for _, swipe := range unique {
		titles = append(titles, matchedTitleFromSwipe(swipe.MediaID, swipe))
	}

	return MatchSessionResult{
		MatchedTitles:    titles,
		AlgorithmVersion: MatchingAlgorithmVersion,
		Certainty:        FallbackCertainty,
		Fallback:         true,
	}
}

// FallbackRand returns a generator seeded from seed, so repeated fallbacks for
// the same session agree. An empty seed gives a randomly seeded generator.
func FallbackRand(seed string) *rand.Rand {
	if seed == "" {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // not security sensitive
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	sum := h.Sum64()
	return rand.New(rand.NewPCG(sum, sum^0x9e3779b97f4a7c15)) //nolint:gosec // reproducibility is the point
}

func matchedTitleFromSwipe(mediaID string, swipe Swipe) MatchedTitle {
	title := swipe.Title
	if title == "" {
		title = mediaID
	}
	return MatchedTitle{
		ID:                mediaID,
		Title:             title,
		PosterURL:         swipe.PosterURL,
		StreamingServices: slices.Clone(swipe.StreamingServices),
	}
}
