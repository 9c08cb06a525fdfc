package history

import (
	"path/filepath"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/engine"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
)

// Undo reverses a recorded run by moving each file back to where it
// came from, last move first. Original locations that have since been
// reoccupied get the usual "name (N).ext" treatment; files missing
// from their recorded destination are reported as failures and the
// rest of the undo proceeds.
func (j *Journal) Undo(rec Record, dryRun bool) []types.TransferResult {
	results := make([]types.TransferResult, 0, len(rec.Moves))
	planned := make(map[string]bool)

	for i := len(rec.Moves) - 1; i >= 0; i-- {
		move := rec.Moves[i]
		target := engine.UniqueDestination(j.fs, move.Source, func(p string) bool {
			return planned[p]
		})
		planned[target] = true

		plan := types.TransferPlan{
			Source:      move.Destination,
			Destination: target,
			Category:    move.Category,
			Action:      types.ActionMove,
		}

		if dryRun {
			results = append(results, types.TransferResult{Plan: plan, Success: true, Simulated: true})
			continue
		}

		// A remove-empty run may have swept the original directory;
		// recreate it before restoring into it
		if err := j.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
			wrapped := errors.Wrapf(err, errors.ErrDirCreate,
				"cannot recreate directory for %s", target)
			j.logger.Error().
				Err(wrapped).
				Str("destination", target).
				Msg("Undo move failed")
			results = append(results, types.TransferResult{Plan: plan, Error: wrapped})
			continue
		}

		if err := j.fs.Rename(move.Destination, target); err != nil {
			j.logger.Error().
				Err(err).
				Str("source", move.Destination).
				Str("destination", target).
				Msg("Undo move failed")
			results = append(results, types.TransferResult{Plan: plan, Error: err})
			continue
		}

		j.logger.Info().
			Str("source", move.Destination).
			Str("destination", target).
			Msg("Restored")
		results = append(results, types.TransferResult{Plan: plan, Success: true})
	}

	return results
}
