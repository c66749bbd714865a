package rebuild

import "fmt"

// Phase is the pipeline state. Phases are strictly ordered and only move
// forward one step at a time.
type Phase int

const (
	PhasePlanned Phase = iota
	PhaseTocInserted
	PhaseSectionsWritten
	PhaseNumbersAssigned
	PhaseHeadersWritten
	PhaseSaved
)

var phaseNames = [...]string{"Planned", "TocInserted", "SectionsWritten", "NumbersAssigned", "HeadersWritten", "Saved"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Advance moves to the next phase, anything else is an error.
func (p *Phase) Advance(to Phase) error {
	if to != *p+1 {
		return fmt.Errorf("illegal phase transition %s -> %s", *p, to)
	}
	*p = to
	return nil
}
