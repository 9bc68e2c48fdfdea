// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/idea-board/models"
)

// Store persists submitters and ideas. It does not own the handle.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// newID returns a time-ordered id so that ORDER BY id is insertion order
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// RegisterSubmitter creates a submitter and returns its id
func (s *Store) RegisterSubmitter(ctx context.Context, name string, role models.Role) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", required("name")
	}
	if !role.Valid() {
		return "", &ValidationError{Field: "role", Reason: fmt.Sprintf("must be one of citizen, sergeant, expert, activist (got %q)", role)}
	}

	id, err := newID()
	if err != nil {
		return "", err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO submitter (id, name, role, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, name, string(role), s.now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert submitter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit submitter: %w", err)
	}

	slog.Info("submitter registered", "submitter_id", id, "role", role)
	return id, nil
}

// ListSubmitters returns every submitter in insertion order
func (s *Store) ListSubmitters(ctx context.Context) ([]models.Submitter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, role, created_at
		FROM submitter
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query submitters: %w", err)
	}
	defer rows.Close()

	submitters := []models.Submitter{}
	for rows.Next() {
		var sub models.Submitter
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Role, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submitter: %w", err)
		}
		submitters = append(submitters, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submitters: %w", err)
	}

	return submitters, nil
}

// GetSubmitter looks up one submitter by id
func (s *Store) GetSubmitter(ctx context.Context, id string) (models.Submitter, error) {
	var sub models.Submitter
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, role, created_at
		FROM submitter
		WHERE id = $1
	`, id).Scan(&sub.ID, &sub.Name, &sub.Role, &sub.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Submitter{}, &NotFoundError{Kind: "submitter", ID: id}
	}
	if err != nil {
		return models.Submitter{}, fmt.Errorf("failed to query submitter: %w", err)
	}

	return sub, nil
}

// SubmitIdea creates an idea with zero votes and returns its id.
// The author check and the insert share one transaction.
func (s *Store) SubmitIdea(ctx context.Context, title, description, authorID string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", required("title")
	}
	if strings.TrimSpace(description) == "" {
		return "", required("description")
	}
	if authorID == "" {
		return "", required("author_id")
	}

	id, err := newID()
	if err != nil {
		return "", err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM submitter WHERE id = $1)
	`, authorID).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("failed to verify author: %w", err)
	}
	if !exists {
		return "", &NotFoundError{Kind: "submitter", ID: authorID}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO idea (id, title, description, author_id, created_at, vote_count)
		VALUES ($1, $2, $3, $4, $5, 0)
	`, id, title, description, authorID, s.now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert idea: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit idea: %w", err)
	}

	slog.Info("idea submitted", "idea_id", id, "author_id", authorID)
	return id, nil
}

const ideaJoinQuery = `
	SELECT i.id, i.title, i.description, i.author_id, i.created_at, i.vote_count,
	       s.name, s.role
	FROM idea i
	JOIN submitter s ON s.id = i.author_id
`

func scanIdea(row interface{ Scan(...any) error }) (models.IdeaWithAuthor, error) {
	var idea models.IdeaWithAuthor
	err := row.Scan(
		&idea.ID, &idea.Title, &idea.Description, &idea.AuthorID,
		&idea.CreatedAt, &idea.VoteCount, &idea.AuthorName, &idea.AuthorRole,
	)
	return idea, err
}

// ListIdeasJoined returns every idea with its author's name and role,
// in insertion order
func (s *Store) ListIdeasJoined(ctx context.Context) ([]models.IdeaWithAuthor, error) {
	rows, err := s.db.QueryContext(ctx, ideaJoinQuery+` ORDER BY i.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ideas: %w", err)
	}
	defer rows.Close()

	ideas := []models.IdeaWithAuthor{}
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ideas: %w", err)
	}

	return ideas, nil
}

// GetIdea looks up one idea by id, joined with its author
func (s *Store) GetIdea(ctx context.Context, id string) (models.IdeaWithAuthor, error) {
	idea, err := scanIdea(s.db.QueryRowContext(ctx, ideaJoinQuery+` WHERE i.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.IdeaWithAuthor{}, &NotFoundError{Kind: "idea", ID: id}
	}
	if err != nil {
		return models.IdeaWithAuthor{}, fmt.Errorf("failed to query idea: %w", err)
	}
	return idea, nil
}

// IncrementVotes adds exactly one vote to an idea. The increment happens
// in SQL so concurrent callers never lose updates.
func (s *Store) IncrementVotes(ctx context.Context, ideaID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE idea
		SET vote_count = vote_count + 1
		WHERE id = $1
	`, ideaID)
	if err != nil {
		return fmt.Errorf("failed to increment votes: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return &NotFoundError{Kind: "idea", ID: ideaID}
	}

	slog.Debug("vote recorded", "idea_id", ideaID)
	return nil
}
