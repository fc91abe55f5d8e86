package domain

import "fmt"

// CandidatePolicy decides which liked titles are eligible for ranking.
type CandidatePolicy string

const (
	// CandidatePolicyUnion admits titles liked by any participant.
	CandidatePolicyUnion CandidatePolicy = "union"
	// CandidatePolicyStrict admits titles liked by every participant.
	CandidatePolicyStrict CandidatePolicy = "strict"
	// CandidatePolicyHybrid uses the strict set when non-empty, otherwise the union.
	CandidatePolicyHybrid CandidatePolicy = "hybrid"
)

// DefaultCandidatePolicy is used when no policy is configured.
const DefaultCandidatePolicy = CandidatePolicyHybrid

func ParseCandidatePolicy(s string) (CandidatePolicy, error) {
	switch p := CandidatePolicy(s); p {
	case CandidatePolicyUnion, CandidatePolicyStrict, CandidatePolicyHybrid:
		return p, nil
	case "":
		return DefaultCandidatePolicy, nil
	default:
		return "", fmt.Errorf("unknown candidate policy [%s]", s)
	}
}

// SelectCandidates returns candidate media ids in first-occurrence order of
// the swipe list.
func SelectCandidates(swipes []Swipe, userIDs []string, policy CandidatePolicy) []string {
	liked := make(map[string]map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		liked[userID] = make(map[string]struct{})
	}

	var order []string
	seen := make(map[string]struct{})
	for _, swipe := range swipes {
		if _, ok := seen[swipe.MediaID]; !ok {
			seen[swipe.MediaID] = struct{}{}
			order = append(order, swipe.MediaID)
		}
		if swipe.Decision != DecisionLike {
			continue
		}
		if userLikes, ok := liked[swipe.UserID]; ok {
			userLikes[swipe.MediaID] = struct{}{}
		}
	}

	likedByAll := func(mediaID string) bool {
		if len(userIDs) == 0 {
			return false
		}
		for _, userID := range userIDs {
			if _, ok := liked[userID][mediaID]; !ok {
				return false
			}
		}
		return true
	}
	likedByAny := func(mediaID string) bool {
		for _, userID := range userIDs {
			if _, ok := liked[userID][mediaID]; ok {
				return true
			}
		}
		return false
	}

	switch policy {
	case CandidatePolicyStrict:
		return filterIDs(order, likedByAll)
	case CandidatePolicyUnion:
		return filterIDs(order, likedByAny)
	default:
		if strict := filterIDs(order, likedByAll); len(strict) > 0 {
			return strict
		}
		return filterIDs(order, likedByAny)
	}
}

func filterIDs(ids []string, keep func(string) bool) []string {
	var result []string
	for _, id := range ids {
		if keep(id) {
			result = append(result, id)
		}
	}
	return result
}
