package deposit

// Action is the outcome of conflict resolution for one destination.
type Action int

const (
	// ActionOverwrite proceeds with the placement, replacing any
	// existing file.
	ActionOverwrite Action = iota
	// ActionSkip leaves both the source and the existing destination
	// alone.
	ActionSkip
)

func (a Action) String() string {
	if a == ActionSkip {
		return "skip"
	}
	return "overwrite"
}

// ResolveConflict applies the overwrite policy. A free destination is a
// plain placement. An occupied one is overwritten only when the policy
// says so or the interactive collaborator agrees; with no collaborator
// (ask == nil) the resolution is always Skip, so nothing is replaced
// silently. Reporting the skipped conflict is the caller's concern.
func ResolveConflict(destinationExists, autoOverwrite bool, ask func() bool) Action {
	if !destinationExists {
		return ActionOverwrite
	}
	if autoOverwrite {
		return ActionOverwrite
	}
	if ask == nil {
		return ActionSkip
	}
	if ask() {
		return ActionOverwrite
	}
	return ActionSkip
}
