package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/movie-match/internal/command"
	cmdmocks "github.com/jbeshir/movie-match/internal/command/mocks"
	"github.com/jbeshir/movie-match/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionJoin_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		userID     string
		joinErr    error
		wantStatus int
		skipJoin   bool
	}{
		{name: "joins", userID: "bob", wantStatus: http.StatusNoContent},
		{name: "unauthenticated", wantStatus: http.StatusUnauthorized, skipJoin: true},
		{name: "not_found", userID: "bob", joinErr: domain.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "complete", userID: "bob", joinErr: domain.ErrSessionComplete, wantStatus: http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			joinCmd := cmdmocks.NewMockCommand[command.JoinSessionRequest, command.Empty](t)
			if !tc.skipJoin {
				joinCmd.EXPECT().
					Execute(mock.Anything, command.JoinSessionRequest{SessionID: "s1", UserID: tc.userID}).
					Return(command.Empty{}, tc.joinErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s1/join", nil)
			req = testContextWithUserID(tc.userID)(req)
			req = mux.SetURLVars(req, map[string]string{"session_id": "s1"})
			rec := httptest.NewRecorder()

			SessionJoin{JoinCmd: joinCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
