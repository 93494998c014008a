package process

// Level indicates the severity of an event.
type Level int

const (
	// LevelInfo is for normal progress messages.
	LevelInfo Level = iota
	// LevelVerbose is for detailed messages only shown in verbose mode.
	LevelVerbose
	// LevelWarning is for per-file problems that don't stop the run.
	LevelWarning
	// LevelError is for failures.
	LevelError
	// LevelSuccess is for completion messages.
	LevelSuccess
)

// Event carries a progress update from a running step to whatever is
// displaying it.
type Event struct {
	Message string
	Level   Level
}
