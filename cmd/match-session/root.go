package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jbeshir/movie-match/internal/app"
	"github.com/jbeshir/movie-match/internal/domain"
	"github.com/spf13/cobra"
)

// sessionInput is the offline replay format.
type sessionInput struct {
	UserIDs []string       `json:"user_ids"`
	Swipes  []domain.Swipe `json:"swipes"`
}

type options struct {
	input     string
	sessionID string
	users     []string
	seed      string
	policy    string
	logLevel  string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "match-session",
		Short: "Replay a session's swipes through the matching engine",
		Long: "Reads {\"user_ids\":[...],\"swipes\":[...]} from --input (\"-\" for stdin), or loads a\n" +
			"stored session with --session using DB_DRIVER, and prints the match result as JSON.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "swipes JSON file, or - for stdin")
	flags.StringVar(&opts.sessionID, "session", "", "load swipes for a stored session")
	flags.StringSliceVar(&opts.users, "users", nil, "participant user ids (defaults to the input's user_ids)")
	flags.StringVar(&opts.seed, "seed", "", "fallback seed (defaults to the session id when --session is set)")
	flags.StringVar(&opts.policy, "policy", string(domain.DefaultCandidatePolicy), "candidate policy: hybrid, strict or union")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	cmd.MarkFlagsMutuallyExclusive("input", "session")
	cmd.MarkFlagsOneRequired("input", "session")

	return cmd
}

func run(ctx context.Context, opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("invalid log level [%s]", opts.logLevel)
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: logLevel}))
	ctx = domain.ContextWithLogger(ctx, logger)

	policy, err := domain.ParseCandidatePolicy(opts.policy)
	if err != nil {
		return err
	}

	in, seed, err := loadInput(ctx, opts, stdin)
	if err != nil {
		return err
	}

	userIDs := in.UserIDs
	if len(opts.users) > 0 {
		userIDs = opts.users
	}
	if len(userIDs) == 0 {
		return fmt.Errorf("no participants: set --users or user_ids in the input")
	}

	config := domain.DefaultMatcherConfig()
	config.Policy = policy
	matcher := domain.NewMatcher(domain.DefaultStrategy{}, config)
	result := matcher.MatchSession(ctx, in.Swipes, userIDs, seed)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

func loadInput(ctx context.Context, opts *options, stdin io.Reader) (sessionInput, string, error) {
	if opts.sessionID != "" {
		repo, err := app.SetupSessionRepository(ctx)
		if err != nil {
			return sessionInput{}, "", fmt.Errorf("opening session store: %w", err)
		}
		defer func() { _ = repo.Close() }()

		session, err := repo.GetSession(ctx, opts.sessionID)
		if err != nil {
			return sessionInput{}, "", fmt.Errorf("loading session: %w", err)
		}
		swipes, err := repo.ListSessionSwipes(ctx, opts.sessionID)
		if err != nil {
			return sessionInput{}, "", fmt.Errorf("loading swipes: %w", err)
		}

		seed := opts.seed
		if seed == "" {
			seed = session.ID
		}
		return sessionInput{UserIDs: session.UserIDs(), Swipes: swipes}, seed, nil
	}

	r := stdin
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return sessionInput{}, "", fmt.Errorf("opening input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var in sessionInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return sessionInput{}, "", fmt.Errorf("decoding input: %w", err)
	}
	for i := range in.Swipes {
		in.Swipes[i].MediaID = strings.TrimSpace(in.Swipes[i].MediaID)
	}
	return in, opts.seed, nil
}
