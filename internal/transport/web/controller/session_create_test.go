package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/jbeshir/movie-match/internal/command"
	cmdmocks "github.com/jbeshir/movie-match/internal/command/mocks"
	"github.com/jbeshir/movie-match/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionCreate_ServeHTTP(t *testing.T) {
	session := domain.Session{
		ID:           "s1",
		HostUserID:   "alice",
		Status:       domain.SessionStatusSwiping,
		Participants: []domain.Participant{{UserID: "alice"}},
	}

	cases := []struct {
		name       string
		userID     string
		createErr  error
		wantStatus int
		skipCreate bool
	}{
		{name: "creates", userID: "alice", wantStatus: http.StatusCreated},
		{name: "unauthenticated", wantStatus: http.StatusUnauthorized, skipCreate: true},
		{
			name:       "store_error",
			userID:     "alice",
			createErr:  errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			createCmd := cmdmocks.NewMockCommand[command.CreateSessionRequest, domain.Session](t)
			if !tc.skipCreate {
				createCmd.EXPECT().
					Execute(mock.Anything, command.CreateSessionRequest{HostUserID: tc.userID}).
					Return(session, tc.createErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
			req = testContextWithUserID(tc.userID)(req)
			rec := httptest.NewRecorder()

			SessionCreate{CreateCmd: createCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusCreated {
				return
			}
			var got domain.Session
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "s1", got.ID)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
