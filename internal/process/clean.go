package process

import (
	"fmt"

	ioutils "cratekeeper/internal/io"
)

// cleanStep removes empty directories left behind by moved files. The
// library's own marker directory is off limits.
func (p *Processor) cleanStep(sum *Summary) error {
	marker := p.lib.MarkerPath()
	removed, err := ioutils.RemoveEmptyDirs(p.lib.Root, func(path string) bool {
		return path == marker
	})
	if err != nil {
		return err
	}

	switch removed {
	case 0:
		p.emit("Clean step: nothing to remove", LevelVerbose)
	default:
		p.emit(fmt.Sprintf("Clean step: removed %d empty directories", removed), LevelInfo)
	}
	sum.Changed += removed
	return nil
}
