package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
)

const (
	sessionsTable     = "sessions"
	participantsTable = "session_participants"
	swipesTable       = "swipes"
)

// Migrate creates any missing tables.
func Migrate(ctx context.Context, db *sql.DB, flavor sqlbuilder.Flavor) error {
	for _, ctb := range schema(flavor) {
		query, args := ctb.Build()
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}
	return nil
}

func schema(flavor sqlbuilder.Flavor) []*sqlbuilder.CreateTableBuilder {
	sessions := flavor.NewCreateTableBuilder()
	sessions.CreateTable(sessionsTable).IfNotExists()
	sessions.Define("id", "VARCHAR(64)", "NOT NULL", "PRIMARY KEY")
	sessions.Define("host_user_id", "VARCHAR(255)", "NOT NULL")
	sessions.Define("status", "VARCHAR(16)", "NOT NULL")
	sessions.Define("result", "TEXT", "NULL")
	sessions.Define("created_at", "BIGINT", "NOT NULL")
	sessions.Define("completed_at", "BIGINT", "NULL")

	participants := flavor.NewCreateTableBuilder()
	participants.CreateTable(participantsTable).IfNotExists()
	participants.Define("session_id", "VARCHAR(64)", "NOT NULL")
	participants.Define("user_id", "VARCHAR(255)", "NOT NULL")
	participants.Define("join_order", "INTEGER", "NOT NULL")
	participants.Define("finished", "BOOLEAN", "NOT NULL", "DEFAULT FALSE")
	participants.Define("fallback_notice_shown", "BOOLEAN", "NOT NULL", "DEFAULT FALSE")
	participants.Define("joined_at", "BIGINT", "NOT NULL")
	participants.Define("PRIMARY KEY", "(session_id, user_id)")
	participants.Define("FOREIGN KEY", "(session_id)", "REFERENCES", sessionsTable+"(id)")

	swipes := flavor.NewCreateTableBuilder()
	swipes.CreateTable(swipesTable).IfNotExists()
	if flavor == sqlbuilder.SQLite {
		swipes.Define("seq", "INTEGER", "PRIMARY KEY", "AUTOINCREMENT")
	} else {
		swipes.Define("seq", "BIGINT", "NOT NULL", "AUTO_INCREMENT", "PRIMARY KEY")
	}
	swipes.Define("id", "VARCHAR(512)", "NOT NULL")
	swipes.Define("session_id", "VARCHAR(64)", "NOT NULL")
	swipes.Define("user_id", "VARCHAR(255)", "NOT NULL")
	swipes.Define("media_id", "VARCHAR(255)", "NOT NULL")
	swipes.Define("decision", "VARCHAR(16)", "NOT NULL")
	swipes.Define("created_at", "BIGINT", "NOT NULL")
	swipes.Define("payload", "TEXT", "NOT NULL")
	swipes.Define("UNIQUE", "(session_id, id)")
	swipes.Define("FOREIGN KEY", "(session_id)", "REFERENCES", sessionsTable+"(id)")

	if flavor == sqlbuilder.MySQL {
		for _, ctb := range []*sqlbuilder.CreateTableBuilder{sessions, participants, swipes} {
			ctb.Option("DEFAULT CHARACTER SET", "utf8mb4")
		}
	}

	return []*sqlbuilder.CreateTableBuilder{sessions, participants, swipes}
}
