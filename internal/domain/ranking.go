package domain

import (
	"math"
	"sort"
)

// minScoreStd is the relative spread below which scores are treated as equal.
const minScoreStd = 1e-12

// ScoreStats summarizes the score distribution of a candidate pool.
type ScoreStats struct {
	Mean float64
	Std  float64 // population standard deviation
	Top  float64
}

// ComputeScoreStats returns nil when the scores cannot support a meaningful
// ranking: no scores, non-finite moments, or no spread. Identical scores count
// as no spread even when rounding in the mean leaves a tiny nonzero std.
func ComputeScoreStats(scores []float64) *ScoreStats {
	if len(scores) == 0 {
		return nil
	}

	n := float64(len(scores))
	sum := float64(0)
	top := math.Inf(-1)
	identical := true
	for _, s := range scores {
		if s != scores[0] {
			identical = false
		}
		sum += s
		if s > top {
			top = s
		}
	}
	mean := sum / n

	variance := float64(0)
	for _, s := range scores {
		d := s - mean
		variance += d * d
	}
	std := math.Sqrt(variance / n)

	if identical || !isFinite(mean) || !isFinite(std) || std <= minScoreStd*math.Max(1, math.Abs(mean)) {
		return nil
	}
	return &ScoreStats{Mean: mean, Std: std, Top: top}
}

// Certainty maps a score's z-score through a logistic sigmoid and rescales it
// into [0.5, 1.0]. It is monotonic in score.
func Certainty(score float64, stats ScoreStats) float64 {
	z := (score - stats.Mean) / stats.Std
	sigmoid := 1 / (1 + math.Exp(-z))
	return math.Max(0.5, math.Min(1, 0.5+0.5*sigmoid))
}

// ScoredCandidate is a candidate title with its similarity to the consensus.
type ScoredCandidate struct {
	MediaID    string
	Swipe      Swipe // metadata source, first swipe seen for the title
	Score      float64
	Certainty  float64
	firstIndex int
}

// RankResult holds the truncated ranking. Stats and SessionCertainty are nil
// when the score distribution was degenerate, in which case Ranked is empty.
type RankResult struct {
	Ranked           []ScoredCandidate
	Stats            *ScoreStats
	SessionCertainty *float64
}

// RankCandidates scores each candidate against the consensus vector and
// returns the top maxResults by score. Exact ties keep the order in which
// titles first appear in swipes. Session certainty is the certainty of the
// best score over the whole pool, computed before truncation.
func RankCandidates(
	swipes []Swipe,
	consensus PreferenceVector,
	candidateIDs []string,
	maxResults int,
	embed func(Swipe) []float64,
) RankResult {
	firstSeen := firstSwipeByMedia(swipes)

	candidates := make([]ScoredCandidate, 0, len(candidateIDs))
	scores := make([]float64, 0, len(candidateIDs))
	for i, id := range candidateIDs {
		source, index := Swipe{MediaID: id}, len(swipes)+i
		if seen, ok := firstSeen[id]; ok {
			source, index = swipes[seen], seen
		}

		score := float64(0)
		if embedding := NormalizeVector(embed(source)); !embedding.IsZero {
			score = DotProduct(consensus.Values, embedding.Values)
		}

		candidates = append(candidates, ScoredCandidate{
			MediaID:    id,
			Swipe:      source,
			Score:      score,
			firstIndex: index,
		})
		scores = append(scores, score)
	}

	stats := ComputeScoreStats(scores)
	if stats == nil {
		return RankResult{}
	}

	for i := range candidates {
		candidates[i].Certainty = Certainty(candidates[i].Score, *stats)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].firstIndex < candidates[j].firstIndex
	})

	if maxResults >= 0 && len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	sessionCertainty := Certainty(stats.Top, *stats)
	return RankResult{
		Ranked:           candidates,
		Stats:            stats,
		SessionCertainty: &sessionCertainty,
	}
}

// firstSwipeByMedia indexes the first swipe referencing each media id.
func firstSwipeByMedia(swipes []Swipe) map[string]int {
	index := make(map[string]int, len(swipes))
	for i, swipe := range swipes {
		if _, ok := index[swipe.MediaID]; !ok {
			index[swipe.MediaID] = i
		}
	}
	return index
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
