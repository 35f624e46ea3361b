// Package decision models finalized team decisions and their append-only
// edit history.
package decision

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/decisionnote/internal/domain"
)

// Decision is a recorded team decision.
//
// OriginalText never changes after creation. EditCount always equals the
// number of HistoryEntry rows stored for the decision.
type Decision struct {
	ID           int64
	CurrentText  string
	OriginalText string
	Author       string
	LastEditor   string
	LastEditedAt *time.Time
	EditCount    int
	CreatedAt    time.Time
	Topic        string
	// SourceProposalID is set when the decision was materialized from an
	// approved proposal. At most one decision exists per proposal.
	SourceProposalID *int64
}

// HistoryEntry captures the text a decision held before one edit.
type HistoryEntry struct {
	ID         int64
	DecisionID int64
	Text       string
	Editor     string
	EditedAt   time.Time
}

// New builds an unedited decision. The ID is assigned by the store.
func New(text, author, topic string, now time.Time) Decision {
	return Decision{
		CurrentText:  text,
		OriginalText: text,
		Author:       author,
		CreatedAt:    now,
		Topic:        topic,
	}
}

// Validate checks the fields a caller supplies when creating a decision.
func (d *Decision) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(d.CurrentText) == "" {
		fields["text"] = domain.MsgRequired
	}
	if strings.TrimSpace(d.Author) == "" {
		fields["author"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Edit replaces the current text and returns the history entry that must be
// stored alongside the change. The entry holds the pre-edit text.
func (d *Decision) Edit(newText, editor string, now time.Time) (HistoryEntry, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(newText) == "" {
		fields["text"] = domain.MsgRequired
	}
	if strings.TrimSpace(editor) == "" {
		fields["editor"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return HistoryEntry{}, &domain.ValidationError{Fields: fields}
	}

	entry := HistoryEntry{
		DecisionID: d.ID,
		Text:       d.CurrentText,
		Editor:     editor,
		EditedAt:   now,
	}

	d.CurrentText = newText
	d.LastEditor = editor
	d.LastEditedAt = &now
	d.EditCount++

	return entry, nil
}

// Clone returns a copy that shares no pointers with d.
func (d Decision) Clone() Decision {
	if d.LastEditedAt != nil {
		t := *d.LastEditedAt
		d.LastEditedAt = &t
	}
	if d.SourceProposalID != nil {
		id := *d.SourceProposalID
		d.SourceProposalID = &id
	}
	return d
}

// CreatedBetween reports whether the decision was created in [start, end).
func (d *Decision) CreatedBetween(start, end time.Time) bool {
	return !d.CreatedAt.Before(start) && d.CreatedAt.Before(end)
}

// Matches reports whether keyword appears in the current text or the topic,
// ignoring case.
func (d *Decision) Matches(keyword string) bool {
	k := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(d.CurrentText), k) ||
		strings.Contains(strings.ToLower(d.Topic), k)
}

// DayBounds returns the start of now's calendar day and the start of the
// next one, in now's location.
func DayBounds(now time.Time) (time.Time, time.Time) {
	y, m, day := now.Date()
	start := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}
