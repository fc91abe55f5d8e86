package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/movie-match/internal/datasources"
	"github.com/jbeshir/movie-match/internal/domain"
)

var _ datasources.SessionRepository = (*Repository)(nil)

// Repository stores sessions, participants and swipes in MySQL or SQLite.
type Repository struct {
	db     *sql.DB
	flavor sqlbuilder.Flavor
}

func New(db *sql.DB, flavor sqlbuilder.Flavor) *Repository {
	return &Repository{db: db, flavor: flavor}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) CreateSession(ctx context.Context, session domain.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto(sessionsTable).
		Cols("id", "host_user_id", "status", "created_at").
		Values(session.ID, session.HostUserID, string(session.Status), session.CreatedAt.UnixMilli())
	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	participants := session.Participants
	if len(participants) == 0 {
		participants = []domain.Participant{{UserID: session.HostUserID, JoinedAt: session.CreatedAt}}
	}
	for i, p := range participants {
		if err := r.insertParticipant(ctx, tx, session.ID, p.UserID, i, p.JoinedAt); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) AddParticipant(ctx context.Context, sessionID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := r.lockSession(ctx, tx, sessionID)
	if err != nil {
		return err
	}

	participants, err := r.listParticipants(ctx, tx, sessionID)
	if err != nil {
		return err
	}
	for _, p := range participants {
		if p.UserID == userID {
			return nil
		}
	}
	if row.Status == domain.SessionStatusComplete {
		return domain.ErrSessionComplete
	}

	if err := r.insertParticipant(ctx, tx, sessionID, userID, len(participants), time.Now()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) GetSession(ctx context.Context, sessionID string) (domain.Session, error) {
	return r.getSession(ctx, r.db, sessionID)
}

func (r *Repository) AppendSwipe(ctx context.Context, sessionID string, swipe domain.Swipe) error {
	payload, err := json.Marshal(swipe)
	if err != nil {
		return fmt.Errorf("encoding swipe: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := r.lockSession(ctx, tx, sessionID)
	if err != nil {
		return err
	}
	if row.Status == domain.SessionStatusComplete {
		return domain.ErrSessionComplete
	}

	participants, err := r.listParticipants(ctx, tx, sessionID)
	if err != nil {
		return err
	}
	if !(domain.Session{Participants: participants}).HasParticipant(swipe.UserID) {
		return domain.ErrNotParticipant
	}

	ib := r.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto(swipesTable).
		Cols("id", "session_id", "user_id", "media_id", "decision", "created_at", "payload").
		Values(swipe.ID, sessionID, swipe.UserID, swipe.MediaID, string(swipe.Decision), swipe.CreatedAt, string(payload))
	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting swipe: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) ListSessionSwipes(ctx context.Context, sessionID string) ([]domain.Swipe, error) {
	return r.listSwipes(ctx, r.db, sessionID)
}

// FinishParticipant marks userID as finished. When that makes every
// participant finished, complete is called once with a snapshot of the
// session's swipes and its result is stored in the same transaction.
// Sessions that are already complete are returned unchanged.
func (r *Repository) FinishParticipant(
	ctx context.Context,
	sessionID, userID string,
	complete datasources.CompletionFunc,
) (domain.Session, error) {
	if err := r.finishParticipant(ctx, sessionID, userID, complete); err != nil {
		return domain.Session{}, err
	}
	return r.GetSession(ctx, sessionID)
}

func (r *Repository) finishParticipant(
	ctx context.Context,
	sessionID, userID string,
	complete datasources.CompletionFunc,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := r.lockSession(ctx, tx, sessionID)
	if err != nil {
		return err
	}

	participants, err := r.listParticipants(ctx, tx, sessionID)
	if err != nil {
		return err
	}
	session := domain.Session{ID: sessionID, Status: row.Status, Participants: participants}
	if !session.HasParticipant(userID) {
		return domain.ErrNotParticipant
	}
	if session.Status == domain.SessionStatusComplete {
		return nil
	}

	ub := r.flavor.NewUpdateBuilder()
	ub.Update(participantsTable).
		Set(ub.Assign("finished", true)).
		Where(ub.Equal("session_id", sessionID), ub.Equal("user_id", userID))
	query, args := ub.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("marking participant finished: %w", err)
	}
	for i := range session.Participants {
		if session.Participants[i].UserID == userID {
			session.Participants[i].Finished = true
		}
	}

	if session.AllFinished() {
		if err := r.completeSession(ctx, tx, session, complete); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) completeSession(
	ctx context.Context, tx *sql.Tx, session domain.Session, complete datasources.CompletionFunc,
) error {
	swipes, err := r.listSwipes(ctx, tx, session.ID)
	if err != nil {
		return err
	}

	result, err := json.Marshal(complete(ctx, swipes, session.UserIDs()))
	if err != nil {
		return fmt.Errorf("encoding session result: %w", err)
	}

	ub := r.flavor.NewUpdateBuilder()
	ub.Update(sessionsTable).
		Set(
			ub.Assign("status", string(domain.SessionStatusComplete)),
			ub.Assign("result", string(result)),
			ub.Assign("completed_at", time.Now().UnixMilli()),
		).
		Where(ub.Equal("id", session.ID))
	query, args := ub.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("storing session result: %w", err)
	}
	return nil
}

func (r *Repository) MarkFallbackNoticeShown(ctx context.Context, sessionID, userID string) (bool, error) {
	ub := r.flavor.NewUpdateBuilder()
	ub.Update(participantsTable).
		Set(ub.Assign("fallback_notice_shown", true)).
		Where(
			ub.Equal("session_id", sessionID),
			ub.Equal("user_id", userID),
			ub.Equal("fallback_notice_shown", false),
		)
	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("marking fallback notice shown: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking fallback notice update: %w", err)
	}
	if affected > 0 {
		return true, nil
	}

	session, err := r.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if !session.HasParticipant(userID) {
		return false, domain.ErrNotParticipant
	}
	return false, nil
}

type sessionRow struct {
	ID          string
	HostUserID  string
	Status      domain.SessionStatus
	Result      sql.NullString
	CreatedAt   int64
	CompletedAt sql.NullInt64
}

func (r *Repository) selectSession(sessionID string, forUpdate bool) (string, []any) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("id", "host_user_id", "status", "result", "created_at", "completed_at").
		From(sessionsTable).
		Where(sb.Equal("id", sessionID))
	// SQLite has no row locks; its single writer serializes transactions instead.
	if forUpdate && r.flavor == sqlbuilder.MySQL {
		sb.ForUpdate()
	}
	return sb.Build()
}

func (r *Repository) scanSession(ctx context.Context, db DBTX, sessionID string, forUpdate bool) (sessionRow, error) {
	query, args := r.selectSession(sessionID, forUpdate)

	var row sessionRow
	var status string
	err := db.QueryRowContext(ctx, query, args...).Scan(
		&row.ID, &row.HostUserID, &status, &row.Result, &row.CreatedAt, &row.CompletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return sessionRow{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return sessionRow{}, fmt.Errorf("getting session: %w", err)
	}
	row.Status = domain.SessionStatus(status)
	return row, nil
}

func (r *Repository) lockSession(ctx context.Context, tx *sql.Tx, sessionID string) (sessionRow, error) {
	return r.scanSession(ctx, tx, sessionID, true)
}

func (r *Repository) getSession(ctx context.Context, db DBTX, sessionID string) (domain.Session, error) {
	row, err := r.scanSession(ctx, db, sessionID, false)
	if err != nil {
		return domain.Session{}, err
	}

	participants, err := r.listParticipants(ctx, db, sessionID)
	if err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{
		ID:           row.ID,
		HostUserID:   row.HostUserID,
		Status:       row.Status,
		Participants: participants,
		CreatedAt:    time.UnixMilli(row.CreatedAt).UTC(),
	}
	if row.CompletedAt.Valid {
		completedAt := time.UnixMilli(row.CompletedAt.Int64).UTC()
		session.CompletedAt = &completedAt
	}
	if row.Result.Valid {
		var result domain.MatchSessionResult
		if err := json.Unmarshal([]byte(row.Result.String), &result); err != nil {
			return domain.Session{}, fmt.Errorf("decoding session result: %w", err)
		}
		session.Result = &result
	}
	return session, nil
}

func (r *Repository) insertParticipant(
	ctx context.Context, tx *sql.Tx, sessionID, userID string, joinOrder int, joinedAt time.Time,
) error {
	ib := r.flavor.NewInsertBuilder()
	ib.InsertInto(participantsTable).
		Cols("session_id", "user_id", "join_order", "finished", "fallback_notice_shown", "joined_at").
		Values(sessionID, userID, joinOrder, false, false, joinedAt.UnixMilli())
	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting participant: %w", err)
	}
	return nil
}

func (r *Repository) listParticipants(ctx context.Context, db DBTX, sessionID string) ([]domain.Participant, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("user_id", "finished", "fallback_notice_shown", "joined_at").
		From(participantsTable).
		Where(sb.Equal("session_id", sessionID)).
		OrderBy("join_order").Asc()
	query, args := sb.Build()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running participants query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	participants := []domain.Participant{}
	for rows.Next() {
		var p domain.Participant
		var joinedAt int64
		if err := rows.Scan(&p.UserID, &p.Finished, &p.FallbackNoticeShown, &joinedAt); err != nil {
			return nil, fmt.Errorf("scanning participants: %w", err)
		}
		p.JoinedAt = time.UnixMilli(joinedAt).UTC()
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return participants, nil
}

func (r *Repository) listSwipes(ctx context.Context, db DBTX, sessionID string) ([]domain.Swipe, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("payload").
		From(swipesTable).
		Where(sb.Equal("session_id", sessionID)).
		OrderBy("created_at", "seq").Asc()
	query, args := sb.Build()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running swipes query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	swipes := []domain.Swipe{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning swipes: %w", err)
		}
		var swipe domain.Swipe
		if err := json.Unmarshal([]byte(payload), &swipe); err != nil {
			return nil, fmt.Errorf("decoding swipe: %w", err)
		}
		swipes = append(swipes, swipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return swipes, nil
}
