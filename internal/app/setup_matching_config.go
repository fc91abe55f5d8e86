package app

import (
	"context"
	"fmt"

	"github.com/jbeshir/movie-match/internal/domain"
)

// SetupMatcher builds the session matcher, applying MATCH_CANDIDATE_POLICY when set.
func SetupMatcher(ctx context.Context) (*domain.Matcher, error) {
	config := domain.DefaultMatcherConfig()

	policy, err := domain.ParseCandidatePolicy(GetEnvAsStringOrDefault(ctx, "MATCH_CANDIDATE_POLICY", ""))
	if err != nil {
		return nil, fmt.Errorf("parsing MATCH_CANDIDATE_POLICY: %w", err)
	}
	config.Policy = policy

	return domain.NewMatcher(domain.DefaultStrategy{}, config), nil
}
