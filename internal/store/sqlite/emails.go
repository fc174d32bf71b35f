package sqlite

import (
	"context"
	"fmt"

	"github.com/nholden/mailsort/internal/domain"
	"github.com/nholden/mailsort/internal/store"
)

// Load returns the full collection ordered by insertion position.
func (s *DB) Load(ctx context.Context) ([]domain.Email, []store.RecordError, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sender, subject, body, timestamp, folder, read, priority, category
		FROM emails
		ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query emails: %w", err)
	}
	defer rows.Close()

	var emails []domain.Email
	for rows.Next() {
		var e domain.Email
		var folder, priority, category string
		if err := rows.Scan(
			&e.ID, &e.Sender, &e.Subject, &e.Body, &e.Timestamp,
			&folder, &e.Read, &priority, &category,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan email: %w", err)
		}
		e.Folder = domain.Folder(folder)
		e.Priority = domain.Priority(priority)
		e.Category = domain.Category(category)
		emails = append(emails, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate emails: %w", err)
	}

	return emails, nil, nil
}

// Save replaces the stored collection with emails, preserving their
// order as the insertion position.
func (s *DB) Save(ctx context.Context, emails []domain.Email) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM emails`); err != nil {
		return fmt.Errorf("failed to clear emails: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO emails (id, sender, subject, body, timestamp, folder, read, priority, category, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range emails {
		e := &emails[i]
		if _, err := stmt.ExecContext(ctx,
			e.ID, e.Sender, e.Subject, e.Body, e.Timestamp,
			string(e.Folder), e.Read, string(e.Priority), string(e.Category), i,
		); err != nil {
			return fmt.Errorf("failed to insert email %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}
