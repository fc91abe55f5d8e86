package command

import (
	"errors"
	"testing"
	"time"

	"github.com/jbeshir/movie-match/internal/datasources/mocks"
	"github.com/jbeshir/movie-match/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSession_Execute(t *testing.T) {
	now := time.Date(2024, 4, 27, 11, 13, 6, 123456789, time.UTC)
	wantTime := time.Date(2024, 4, 27, 11, 13, 6, 123000000, time.UTC)
	want := domain.Session{
		ID:           "session-1",
		HostUserID:   "alice",
		Status:       domain.SessionStatusSwiping,
		Participants: []domain.Participant{{UserID: "alice", JoinedAt: wantTime}},
		CreatedAt:    wantTime,
	}

	cases := []struct {
		name      string
		createErr error
		wantErr   bool
	}{
		{name: "creates_session"},
		{name: "store_error", createErr: errors.New("db down"), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creator := mocks.NewMockSessionCreator(t)
			creator.EXPECT().CreateSession(mock.Anything, want).Return(tc.createErr)

			cmd := NewCreateSession(creator)
			cmd.NewID = func() string { return "session-1" }
			cmd.Now = func() time.Time { return now }

			session, err := cmd.Execute(testContext(), CreateSessionRequest{HostUserID: "alice"})
			if tc.wantErr {
				require.ErrorIs(t, err, tc.createErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, session)
		})
	}
}

func TestNewCreateSession_GeneratesIDs(t *testing.T) {
	creator := mocks.NewMockSessionCreator(t)
	creator.EXPECT().CreateSession(mock.Anything, mock.Anything).Return(nil).Times(2)

	cmd := NewCreateSession(creator)
	first, err := cmd.Execute(testContext(), CreateSessionRequest{HostUserID: "alice"})
	require.NoError(t, err)
	second, err := cmd.Execute(testContext(), CreateSessionRequest{HostUserID: "alice"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}
