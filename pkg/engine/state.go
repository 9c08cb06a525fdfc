package engine

import (
	"io/fs"
	"path/filepath"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
)

// planState tracks one entry through the per-entry state machine
type planState int

const (
	stateClassified planState = iota
	stateConflictProbing
	stateResolved
	stateExecuted
	stateFailed
	stateSkipped
)

// processEntry drives a single entry from classification to its
// terminal TransferResult. The transitions are:
//
//	Classified -> ConflictProbing -> Resolved -> Executed
//	                                          -> Failed
//	Classified -> Skipped
func (e *Engine) processEntry(path string, entry fs.DirEntry) types.TransferResult {
	fileEntry := types.NewFileEntry(path, entry.IsDir())

	state := stateClassified
	plan := types.TransferPlan{
		Source:   path,
		Category: e.classifier.Classify(fileEntry),
		Action:   types.ActionMove,
	}

	if reason, ok := e.statEntry(path); !ok {
		plan.Action = types.ActionSkip
		plan.SkipReason = reason
		plan.Category = ""
		state = stateSkipped
	}

	var moveErr error
	for {
		switch state {
		case stateClassified:
			state = stateConflictProbing

		case stateConflictProbing:
			candidate := filepath.Join(e.opts.DestRoot, plan.Category, fileEntry.Name)
			plan.Destination = UniqueDestination(e.fs, candidate, func(p string) bool {
				return e.planned[p]
			})
			state = stateResolved

		case stateResolved:
			// Claim the destination before executing so later entries
			// in this run probe against it, moved or not
			e.planned[plan.Destination] = true
			if e.opts.DryRun {
				e.logger.Info().
					Str("source", plan.Source).
					Str("destination", plan.Destination).
					Str("category", plan.Category).
					Msg("Would transfer")
				return types.TransferResult{Plan: plan, Success: true, Simulated: true}
			}
			moveErr = e.executeMove(plan)
			if moveErr != nil {
				state = stateFailed
			} else {
				state = stateExecuted
			}

		case stateExecuted:
			e.logger.Info().
				Str("source", plan.Source).
				Str("destination", plan.Destination).
				Str("category", plan.Category).
				Msg("Transferred")
			return types.TransferResult{Plan: plan, Success: true}

		case stateFailed:
			e.logger.Error().
				Err(moveErr).
				Str("source", plan.Source).
				Str("destination", plan.Destination).
				Msg("Transfer failed")
			return types.TransferResult{Plan: plan, Error: moveErr}

		case stateSkipped:
			e.logger.Debug().
				Str("source", plan.Source).
				Str("reason", string(plan.SkipReason)).
				Msg("Entry skipped")
			return types.TransferResult{Plan: plan, Success: true}
		}
	}
}

// executeMove ensures the category bucket exists and renames the
// source into it. Buckets are created lazily, only when the first
// move into them happens.
func (e *Engine) executeMove(plan types.TransferPlan) error {
	bucket := filepath.Dir(plan.Destination)
	if err := e.fs.MkdirAll(bucket, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create category directory %s", bucket)
	}
	if err := e.fs.Rename(plan.Source, plan.Destination); err != nil {
		return errors.Wrapf(err, errors.ErrMoveFailed,
			"cannot move %s to %s", plan.Source, plan.Destination)
	}
	return nil
}
