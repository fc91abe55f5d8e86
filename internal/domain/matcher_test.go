package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func sharedLikesSwipes() []Swipe {
	meta := map[string][]string{
		"m1": {"Action"},
		"m2": {"Action", "Adventure"},
		"m3": {"Comedy"},
	}
	var swipes []Swipe
	for _, user := range []string{"alice", "bob"} {
		for i, id := range []string{"m1", "m2", "m3"} {
			swipes = append(swipes, Swipe{
				ID:        SwipeID(user, id, int64(1000+i)),
				UserID:    user,
				MediaID:   id,
				Decision:  DecisionLike,
				CreatedAt: int64(1000 + i),
				Title:     "Title " + id,
				Genres:    meta[id],
			})
		}
	}
	return swipes
}

func manySwipes(n int) []Swipe {
	swipes := make([]Swipe, 0, n)
	for i := 0; i < n; i++ {
		swipes = append(swipes, Swipe{
			UserID:   "alice",
			MediaID:  fmt.Sprintf("m%d", i),
			Decision: DecisionDislike,
		})
	}
	return swipes
}

func assertFallback(t *testing.T, result MatchSessionResult) {
	t.Helper()
	assert.True(t, result.Fallback)
	assert.InDelta(t, 0.5, result.Certainty, 0)
	assert.LessOrEqual(t, len(result.MatchedTitles), MaxMatchResults)
	assert.Equal(t, MatchingAlgorithmVersion, result.AlgorithmVersion)
	for _, title := range result.MatchedTitles {
		assert.Nil(t, title.SimilarityScore)
		assert.Nil(t, title.Certainty)
	}
}

func TestMatcher_MatchSession_SharedLikes(t *testing.T) {
	m := NewMatcher(DefaultStrategy{}, DefaultMatcherConfig())

	result := m.MatchSession(testContext(), sharedLikesSwipes(), []string{"alice", "bob"}, "session-1")

	assert.False(t, result.Fallback)
	assert.Equal(t, MatchingAlgorithmVersion, result.AlgorithmVersion)
	require.Len(t, result.MatchedTitles, 3)
	assert.Equal(t, "m2", result.MatchedTitles[0].ID)
	assert.Equal(t, "Title m2", result.MatchedTitles[0].Title)
	assert.Equal(t, "m1", result.MatchedTitles[1].ID)
	assert.Equal(t, "m3", result.MatchedTitles[2].ID)
	for _, title := range result.MatchedTitles {
		require.NotNil(t, title.Certainty)
		require.NotNil(t, title.SimilarityScore)
		assert.GreaterOrEqual(t, *title.Certainty, 0.5)
		assert.LessOrEqual(t, *title.Certainty, 1.0)
	}
	assert.InDelta(t, 0.8475840, result.Certainty, 1e-6)
}

func TestMatcher_MatchSession_NoSwipes(t *testing.T) {
	m := NewMatcher(DefaultStrategy{}, DefaultMatcherConfig())

	result := m.MatchSession(testContext(), nil, []string{"alice", "bob"}, "session-1")

	assertFallback(t, result)
	assert.Empty(t, result.MatchedTitles)
}

func TestMatcher_MatchSession_AllDislikes(t *testing.T) {
	m := NewMatcher(DefaultStrategy{}, DefaultMatcherConfig())
	swipes := []Swipe{
		{UserID: "alice", MediaID: "m1", Decision: DecisionDislike, Genres: []string{"Action"}},
		{UserID: "bob", MediaID: "m1", Decision: DecisionDislike, Genres: []string{"Action"}},
		{UserID: "bob", MediaID: "m2", Decision: DecisionDislike, Genres: []string{"Comedy"}},
	}

	result := m.MatchSession(testContext(), swipes, []string{"alice", "bob"}, "session-1")

	assertFallback(t, result)
	assert.Len(t, result.MatchedTitles, 2)
}

func TestMatcher_MatchSession_DisjointLikesUseUnion(t *testing.T) {
	m := NewMatcher(DefaultStrategy{}, DefaultMatcherConfig())
	swipes := []Swipe{
		{UserID: "alice", MediaID: "m1", Decision: DecisionLike, Genres: []string{"Action", "Thriller"}},
		{UserID: "alice", MediaID: "m3", Decision: DecisionDislike, Genres: []string{"Action"}},
		{UserID: "bob", MediaID: "m2", Decision: DecisionLike, Genres: []string{"Drama"}},
	}

	result := m.MatchSession(testContext(), swipes, []string{"alice", "bob"}, "session-1")

	assert.False(t, result.Fallback)
	require.Len(t, result.MatchedTitles, 2)
	assert.Equal(t, "m2", result.MatchedTitles[0].ID)
	assert.Equal(t, "m1", result.MatchedTitles[1].ID)
	assert.InDelta(t, 0.8655293, result.Certainty, 1e-6)
}

func TestMatcher_MatchSession_IdenticalCandidatesFallBack(t *testing.T) {
	m := NewMatcher(DefaultStrategy{}, DefaultMatcherConfig())
	var swipes []Swipe
	for _, user := range []string{"alice", "bob"} {
		for _, id := range []string{"m1", "m2", "m3"} {
			swipes = append(swipes, Swipe{
				UserID:   user,
				MediaID:  id,
				Decision: DecisionLike,
				Genres:   []string{"Action", "Drama"},
			})
		}
	}
	swipes = append(swipes, Swipe{UserID: "alice", MediaID: "m4", Decision: DecisionLike, Genres: []string{"Horror"}})

	result := m.MatchSession(testContext(), swipes, []string{"alice", "bob"}, "session-1")

	assertFallback(t, result)
	assert.Len(t, result.MatchedTitles, 3)
}

func TestMatcher_MatchSession_StrictPolicyWithoutOverlap(t *testing.T) {
	m := NewMatcher(DefaultStrategy{}, MatcherConfig{Policy: CandidatePolicyStrict})
	swipes := []Swipe{
		{UserID: "alice", MediaID: "m1", Decision: DecisionLike, Genres: []string{"Action"}},
		{UserID: "bob", MediaID: "m2", Decision: DecisionLike, Genres: []string{"Drama"}},
	}

	assertFallback(t, m.MatchSession(testContext(), swipes, []string{"alice", "bob"}, "s"))
}

func TestMatcher_MatchSession_NoUsers(t *testing.T) {
	m := NewMatcher(nil, MatcherConfig{})

	assertFallback(t, m.MatchSession(testContext(), sharedLikesSwipes(), nil, "s"))
}

func TestMatcher_MatchSession_Deterministic(t *testing.T) {
	m := NewMatcher(DefaultStrategy{}, DefaultMatcherConfig())
	users := []string{"alice", "bob"}

	cases := []struct {
		name   string
		swipes []Swipe
	}{
		{name: "scored", swipes: sharedLikesSwipes()},
		{name: "fallback", swipes: manySwipes(12)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, err := json.Marshal(m.MatchSession(testContext(), tc.swipes, users, "session-42"))
			require.NoError(t, err)
			for i := 0; i < 10; i++ {
				again, err := json.Marshal(m.MatchSession(testContext(), tc.swipes, users, "session-42"))
				require.NoError(t, err)
				assert.Equal(t, string(first), string(again))
			}
		})
	}
}

type failingRankStrategy struct {
	DefaultStrategy
	err   error
	panic bool
}

func (s failingRankStrategy) Rank(
	_ []Swipe, _ PreferenceVector, _ []string, _ int, _ EmbedFunc,
) (RankResult, error) {
	if s.panic {
		panic("injected fault")
	}
	return RankResult{}, s.err
}

type panickingEmbedStrategy struct {
	DefaultStrategy
}

func (panickingEmbedStrategy) Embed(_ Swipe) []float64 {
	panic("malformed swipe")
}

type shortEmbedStrategy struct {
	DefaultStrategy
}

func (shortEmbedStrategy) Embed(_ Swipe) []float64 {
	return []float64{1}
}

type zeroConsensusStrategy struct {
	DefaultStrategy
}

func (zeroConsensusStrategy) AggregateConsensus(_ []PreferenceVector) PreferenceVector {
	return NormalizeVector(make([]float64, EmbeddingDimensions))
}

func TestMatcher_MatchSession_StrategyFaults(t *testing.T) {
	cases := []struct {
		name     string
		strategy MatchStrategy
	}{
		{name: "rank_error", strategy: failingRankStrategy{err: errors.New("boom")}},
		{name: "rank_panic", strategy: failingRankStrategy{panic: true}},
		{name: "rank_returns_no_stats", strategy: failingRankStrategy{}},
		{name: "zero_consensus", strategy: zeroConsensusStrategy{}},
		{name: "embed_panic", strategy: panickingEmbedStrategy{}},
		{name: "identical_embeddings", strategy: shortEmbedStrategy{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMatcher(tc.strategy, DefaultMatcherConfig())

			var result MatchSessionResult
			require.NotPanics(t, func() {
				result = m.MatchSession(testContext(), sharedLikesSwipes(), []string{"alice", "bob"}, "s")
			})
			assertFallback(t, result)
			assert.Len(t, result.MatchedTitles, 3)
		})
	}
}

func TestFallbackResult(t *testing.T) {
	swipes := []Swipe{
		{UserID: "alice", MediaID: "m1", Title: "First", PosterURL: "p1", StreamingServices: []string{"netflix"}},
		{UserID: "bob", MediaID: "m1", Title: "Second"},
	}

	result := FallbackResult(swipes, MaxMatchResults, FallbackRand("seed"))

	assertFallback(t, result)
	require.Len(t, result.MatchedTitles, 1)
	assert.Equal(t, MatchedTitle{
		ID:                "m1",
		Title:             "First",
		PosterURL:         "p1",
		StreamingServices: []string{"netflix"},
	}, result.MatchedTitles[0])
}

func TestFallbackResult_CopiesStreamingServices(t *testing.T) {
	swipes := []Swipe{{MediaID: "m1", StreamingServices: []string{"netflix", "hulu"}}}

	result := FallbackResult(swipes, MaxMatchResults, FallbackRand("seed"))
	require.Len(t, result.MatchedTitles, 1)
	result.MatchedTitles[0].StreamingServices[0] = "changed"

	assert.Equal(t, []string{"netflix", "hulu"}, swipes[0].StreamingServices)
}

func TestFallbackResult_TitleDefaultsToID(t *testing.T) {
	result := FallbackResult([]Swipe{{MediaID: "m9"}}, MaxMatchResults, FallbackRand("seed"))
	require.Len(t, result.MatchedTitles, 1)
	assert.Equal(t, "m9", result.MatchedTitles[0].Title)
}

func TestFallbackResult_SeededShuffle(t *testing.T) {
	swipes := manySwipes(20)

	first := FallbackResult(swipes, MaxMatchResults, FallbackRand("session-a"))
	require.Len(t, first.MatchedTitles, MaxMatchResults)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FallbackResult(swipes, MaxMatchResults, FallbackRand("session-a")))
	}

	// The input order is left alone.
	assert.Equal(t, "m0", swipes[0].MediaID)

	seen := map[string]bool{}
	for _, title := range first.MatchedTitles {
		assert.False(t, seen[title.ID], "duplicate title %s", title.ID)
		seen[title.ID] = true
	}
}

func TestFallbackResult_SeedsDiffer(t *testing.T) {
	swipes := manySwipes(30)

	distinct := map[string]struct{}{}
	for _, seed := range []string{"a", "b", "c", "d", "e", "f"} {
		result := FallbackResult(swipes, MaxMatchResults, FallbackRand(seed))
		key := ""
		for _, title := range result.MatchedTitles {
			key += title.ID + ","
		}
		distinct[key] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)
}
