package agent

import (
	"context"
	"fmt"

	"github.com/nholden/mailsort/internal/classify"
	"github.com/nholden/mailsort/internal/domain"
	"github.com/nholden/mailsort/internal/store"
)

// Agent wires a store and a classifier into the collection-level
// operations the CLI and TUI call.
type Agent struct {
	store      store.Store
	classifier classify.Classifier
}

// New creates an agent over the given store and classifier.
func New(s store.Store, c classify.Classifier) *Agent {
	return &Agent{store: s, classifier: c}
}

// ProcessReport is the outcome of a full process pass.
type ProcessReport struct {
	Result   ProcessResult
	Alerts   []domain.Email // unread high-priority emails after the pass
	Rejected []store.RecordError
}

// ProcessAll loads the collection, runs one process pass, and
// persists the result.
func (a *Agent) ProcessAll(ctx context.Context) (*ProcessReport, error) {
	emails, rejected, err := a.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load emails: %w", err)
	}

	result := Process(emails, a.classifier)

	if err := a.store.Save(ctx, emails); err != nil {
		return nil, fmt.Errorf("failed to save emails: %w", err)
	}

	return &ProcessReport{
		Result:   result,
		Alerts:   HighPriorityAlerts(emails),
		Rejected: rejected,
	}, nil
}

// Summary returns the grouped unread summary.
func (a *Agent) Summary(ctx context.Context) (*Summary, error) {
	emails, _, err := a.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load emails: %w", err)
	}
	s := SummarizeUnread(emails)
	return &s, nil
}

// Stats returns collection-wide counts.
func (a *Agent) Stats(ctx context.Context) (*Stats, error) {
	emails, _, err := a.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load emails: %w", err)
	}
	st := Statistics(emails)
	return &st, nil
}

// Alerts returns unread high-priority emails.
func (a *Agent) Alerts(ctx context.Context) ([]domain.Email, error) {
	emails, _, err := a.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load emails: %w", err)
	}
	return HighPriorityAlerts(emails), nil
}

// ListOptions filters a List call. The zero value lists everything.
type ListOptions struct {
	Folder     domain.Folder
	UnreadOnly bool
}

// List returns emails matching opts in insertion order.
func (a *Agent) List(ctx context.Context, opts ListOptions) ([]domain.Email, error) {
	emails, _, err := a.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load emails: %w", err)
	}
	if opts.Folder != "" {
		emails = FilterByFolder(emails, opts.Folder)
	}
	if opts.UnreadOnly {
		emails = FilterUnread(emails)
	}
	return emails, nil
}

// MarkRead marks the email with the given id as read and persists the
// change. Returns ErrNotFound when the id is unknown; nothing is
// written in that case.
func (a *Agent) MarkRead(ctx context.Context, id int) error {
	emails, _, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load emails: %w", err)
	}
	if err := MarkRead(emails, id); err != nil {
		return err
	}
	if err := a.store.Save(ctx, emails); err != nil {
		return fmt.Errorf("failed to save emails: %w", err)
	}
	return nil
}
