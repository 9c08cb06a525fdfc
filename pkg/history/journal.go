// Package history keeps an append-only journal of live runs so that a
// reorganization can be inspected and reversed later.
package history

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/logging"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
)

// Move is one completed relocation within a run
type Move struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Category    string `json:"category"`
}

// Record is the journal entry for one live run
type Record struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	SourceRoot string    `json:"source_root"`
	DestRoot   string    `json:"dest_root"`
	Moves      []Move    `json:"moves"`
}

// Journal reads and appends run records in a single JSON file
type Journal struct {
	fs     types.FS
	path   string
	logger zerolog.Logger
}

// NewJournal creates a journal stored at path
func NewJournal(fsys types.FS, path string) *Journal {
	return &Journal{
		fs:     fsys,
		path:   path,
		logger: logging.GetLogger("history"),
	}
}

// NewRecord builds a journal record from a live run's results. Only
// executed moves are recorded; skips, failures, and simulated moves
// carry nothing to reverse.
func NewRecord(sourceRoot, destRoot string, results []types.TransferResult) Record {
	rec := Record{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		SourceRoot: sourceRoot,
		DestRoot:   destRoot,
	}
	for _, r := range results {
		if r.Plan.Action != types.ActionMove || !r.Success || r.Simulated {
			continue
		}
		rec.Moves = append(rec.Moves, Move{
			Source:      r.Plan.Source,
			Destination: r.Plan.Destination,
			Category:    r.Plan.Category,
		})
	}
	return rec
}

// Append adds a record to the journal, creating the file on first use
func (j *Journal) Append(rec Record) error {
	records, err := j.List()
	if err != nil {
		return err
	}
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrHistoryWrite, "failed to encode history")
	}

	if err := j.fs.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrHistoryWrite, "failed to create history directory")
	}
	if err := j.fs.WriteFile(j.path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrHistoryWrite, "failed to write history file")
	}

	j.logger.Debug().
		Str("id", rec.ID).
		Int("moves", len(rec.Moves)).
		Msg("Recorded run in history")
	return nil
}

// List returns all records, oldest first. A missing journal file is
// an empty history, not an error.
func (j *Journal) List() ([]Record, error) {
	data, err := j.fs.ReadFile(j.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrHistoryLoad, "failed to read history file")
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, errors.ErrHistoryLoad, "history file is corrupt")
	}
	return records, nil
}

// Last returns the most recent record
func (j *Journal) Last() (*Record, error) {
	records, err := j.List()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrRunNotFound, "history is empty")
	}
	return &records[len(records)-1], nil
}

// Find returns the record with the given ID
func (j *Journal) Find(id string) (*Record, error) {
	records, err := j.List()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, errors.Newf(errors.ErrRunNotFound, "no run with id %s", id)
}

// Remove deletes a record from the journal after a successful undo
func (j *Journal) Remove(id string) error {
	records, err := j.List()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}

	data, err := json.MarshalIndent(kept, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrHistoryWrite, "failed to encode history")
	}
	return j.fs.WriteFile(j.path, data, 0644)
}
