package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/jbeshir/movie-match/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sharedLikesInput = `{
  "user_ids": ["alice", "bob"],
  "swipes": [
    {"user_id":"alice","media_id":"m1","decision":"like","created_at":1,"title":"Die Hard","genres":["Action"]},
    {"user_id":"alice","media_id":"m2","decision":"like","created_at":2,"title":"Heat","genres":["Action","Adventure"]},
    {"user_id":"alice","media_id":"m3","decision":"like","created_at":3,"title":"Airplane!","genres":["Comedy"]},
    {"user_id":"bob","media_id":"m1","decision":"like","created_at":4,"title":"Die Hard","genres":["Action"]},
    {"user_id":"bob","media_id":"m2","decision":"like","created_at":5,"title":"Heat","genres":["Action","Adventure"]},
    {"user_id":"bob","media_id":"m3","decision":"like","created_at":6,"title":"Airplane!","genres":["Comedy"]}
  ]
}`

func execute(t *testing.T, stdin string, args ...string) (domain.MatchSessionResult, error) {
	t.Helper()

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return domain.MatchSessionResult{}, err
	}

	var result domain.MatchSessionResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	return result, nil
}

func TestMatchSession_FromStdin(t *testing.T) {
	result, err := execute(t, sharedLikesInput, "--input", "-")
	require.NoError(t, err)

	assert.False(t, result.Fallback)
	require.Len(t, result.MatchedTitles, 3)
	assert.Equal(t, "m2", result.MatchedTitles[0].ID)
	assert.InDelta(t, 0.8475840, result.Certainty, 1e-6)
}

func TestMatchSession_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swipes.json")
	require.NoError(t, os.WriteFile(path, []byte(sharedLikesInput), 0o600))

	result, err := execute(t, "", "--input", path, "--policy", "strict")
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Len(t, result.MatchedTitles, 3)
}

func TestMatchSession_UsersFlagOverridesInput(t *testing.T) {
	result, err := execute(t, sharedLikesInput, "--input", "-", "--users", "carol,dave", "--seed", "s1")
	require.NoError(t, err)

	assert.True(t, result.Fallback)
	assert.InDelta(t, domain.FallbackCertainty, result.Certainty, 0)

	again, err := execute(t, sharedLikesInput, "--input", "-", "--users", "carol,dave", "--seed", "s1")
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestMatchSession_Errors(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "no_source", args: []string{}},
		{name: "both_sources", args: []string{"--input", "-", "--session", "s1"}},
		{name: "unknown_policy", stdin: sharedLikesInput, args: []string{"--input", "-", "--policy", "all"}},
		{name: "malformed_json", stdin: `{"swipes":`, args: []string{"--input", "-"}},
		{name: "no_users", stdin: `{"swipes":[]}`, args: []string{"--input", "-"}},
		{name: "missing_file", args: []string{"--input", "/nonexistent/swipes.json"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.stdin, tc.args...)
			assert.Error(t, err)
		})
	}
}
