package follow

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS followed_teams (
	league  TEXT NOT NULL,
	team_id TEXT NOT NULL,
	name    TEXT NOT NULL,
	logo    TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (league, team_id)
)`

// SQLite implements Storage backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at dsn and ensures the schema exists.
// Parent directories are created for file-backed databases.
func NewSQLite(dsn string) (*SQLite, error) {
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite allows a single writer, and a pooled :memory: database would
	// give every connection its own empty schema.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// ListTeams returns all followed teams ordered by league then team id.
func (s *SQLite) ListTeams(ctx context.Context) ([]domain.FollowedTeam, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT league, team_id, name, logo FROM followed_teams ORDER BY league, team_id`)
	if err != nil {
		return nil, fmt.Errorf("query followed teams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	teams := make([]domain.FollowedTeam, 0)
	for rows.Next() {
		var t domain.FollowedTeam
		var league string
		if err := rows.Scan(&league, &t.TeamID, &t.Name, &t.Logo); err != nil {
			return nil, fmt.Errorf("scan followed team: %w", err)
		}
		t.League = domain.League(league)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate followed teams: %w", err)
	}
	return teams, nil
}

// Follow upserts a followed team. League and team id are normalized so the
// same team cannot be followed twice under different casings.
func (s *SQLite) Follow(ctx context.Context, team domain.FollowedTeam) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO followed_teams (league, team_id, name, logo) VALUES (?, ?, ?, ?)
		 ON CONFLICT (league, team_id) DO UPDATE SET name = excluded.name, logo = excluded.logo`,
		string(team.League.Normalize()), strings.ToUpper(team.TeamID), team.Name, team.Logo,
	)
	if err != nil {
		return fmt.Errorf("insert followed team: %w", err)
	}
	return nil
}

// Unfollow removes a followed team. Removing a team that was never followed
// is not an error.
func (s *SQLite) Unfollow(ctx context.Context, league domain.League, teamID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM followed_teams WHERE league = ? AND team_id = ?`,
		string(league.Normalize()), strings.ToUpper(teamID),
	)
	if err != nil {
		return fmt.Errorf("delete followed team: %w", err)
	}
	return nil
}
