package types

// Action is the decision the engine made for one entry
type Action string

const (
	// ActionMove relocates the entry into its category bucket
	ActionMove Action = "move"

	// ActionSkip leaves the entry in place, with a recorded reason
	ActionSkip Action = "skip"
)

// SkipReason explains why an entry was not organized
type SkipReason string

const (
	// SkipDirectory - the entry is a directory and directory
	// organization was not requested
	SkipDirectory SkipReason = "directory"

	// SkipBrokenSymlink - the entry is a symbolic link whose target
	// is missing
	SkipBrokenSymlink SkipReason = "broken_symlink"

	// SkipUnreadable - the entry could not be inspected
	SkipUnreadable SkipReason = "unreadable"
)

// TransferPlan is the per-entry decision: where an entry goes and how.
// Once computed, Destination is guaranteed free of collision with any
// pre-existing file and with every other plan in the same run.
type TransferPlan struct {
	// Source is the absolute path of the entry being organized
	Source string

	// Destination is the collision-free absolute target path.
	// Empty for skipped entries.
	Destination string

	// Category is the classification result (also the bucket name)
	Category string

	// Action is the decision for this entry
	Action Action

	// SkipReason is set when Action is ActionSkip
	SkipReason SkipReason
}

// TransferResult is the outcome of executing (or simulating) a plan
type TransferResult struct {
	Plan TransferPlan

	// Success is true for completed moves, simulated moves, and skips
	Success bool

	// Simulated is true when the run was a dry run and nothing moved
	Simulated bool

	// Error holds the underlying cause for a failed move
	Error error
}

// RunSummary aggregates a result sequence for reporting
type RunSummary struct {
	Moved   int
	Skipped int
	Failed  int
}

// Summarize counts outcomes across a result sequence
func Summarize(results []TransferResult) RunSummary {
	var s RunSummary
	for _, r := range results {
		switch {
		case r.Plan.Action == ActionSkip:
			s.Skipped++
		case r.Error != nil:
			s.Failed++
		default:
			s.Moved++
		}
	}
	return s
}
