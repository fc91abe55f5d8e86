package command

import (
	"context"
	"testing"

	"github.com/jbeshir/movie-match/internal/datasources"
	"github.com/jbeshir/movie-match/internal/datasources/mocks"
	"github.com/jbeshir/movie-match/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeMatcher struct {
	seeds  []string
	result domain.MatchSessionResult
}

func (f *fakeMatcher) MatchSession(
	_ context.Context, _ []domain.Swipe, _ []string, sessionSeed string,
) domain.MatchSessionResult {
	f.seeds = append(f.seeds, sessionSeed)
	return f.result
}

func TestFinishSwiping_Execute(t *testing.T) {
	result := domain.MatchSessionResult{
		MatchedTitles:    []domain.MatchedTitle{{ID: "m1", Title: "m1"}},
		AlgorithmVersion: domain.MatchingAlgorithmVersion,
		Certainty:        domain.FallbackCertainty,
		Fallback:         true,
	}
	swipes := []domain.Swipe{{UserID: "alice", MediaID: "m1", Decision: domain.DecisionLike}}

	cases := []struct {
		name          string
		lastToFinish  bool
		finishErr     error
		wantMatchSeed []string
	}{
		{name: "not_last_participant"},
		{name: "last_participant_matches", lastToFinish: true, wantMatchSeed: []string{"s1"}},
		{name: "not_participant", finishErr: domain.ErrNotParticipant},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matcher := &fakeMatcher{result: result}
			finisher := mocks.NewMockSessionFinisher(t)
			finisher.EXPECT().
				FinishParticipant(mock.Anything, "s1", "alice", mock.Anything).
				RunAndReturn(func(
					ctx context.Context, sessionID, _ string, complete datasources.CompletionFunc,
				) (domain.Session, error) {
					if tc.finishErr != nil {
						return domain.Session{}, tc.finishErr
					}
					session := domain.Session{ID: sessionID, Status: domain.SessionStatusSwiping}
					if tc.lastToFinish {
						got := complete(ctx, swipes, []string{"alice", "bob"})
						session.Status = domain.SessionStatusComplete
						session.Result = &got
					}
					return session, nil
				})

			session, err := NewFinishSwiping(finisher, matcher).Execute(testContext(), FinishSwipingRequest{
				SessionID: "s1",
				UserID:    "alice",
			})
			if tc.finishErr != nil {
				require.ErrorIs(t, err, tc.finishErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMatchSeed, matcher.seeds)
			if tc.lastToFinish {
				require.NotNil(t, session.Result)
				assert.Equal(t, result, *session.Result)
			} else {
				assert.Nil(t, session.Result)
			}
		})
	}
}

func TestFinishSwiping_WithMatcher(t *testing.T) {
	finisher := mocks.NewMockSessionFinisher(t)
	finisher.EXPECT().
		FinishParticipant(mock.Anything, "s1", "bob", mock.Anything).
		RunAndReturn(func(
			ctx context.Context, sessionID, _ string, complete datasources.CompletionFunc,
		) (domain.Session, error) {
			got := complete(ctx, nil, []string{"alice", "bob"})
			return domain.Session{ID: sessionID, Status: domain.SessionStatusComplete, Result: &got}, nil
		})

	matcher := domain.NewMatcher(domain.DefaultStrategy{}, domain.DefaultMatcherConfig())
	session, err := NewFinishSwiping(finisher, matcher).Execute(testContext(), FinishSwipingRequest{
		SessionID: "s1",
		UserID:    "bob",
	})
	require.NoError(t, err)
	require.NotNil(t, session.Result)
	assert.True(t, session.Result.Fallback)
	assert.Empty(t, session.Result.MatchedTitles)
}
