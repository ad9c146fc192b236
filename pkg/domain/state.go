package domain

// Walk is the mutable state of one walk in progress.
type Walk struct {
	Start   string
	Current string
	Steps   uint64
}

// NewWalk creates a walk positioned at start with zero steps taken.
func NewWalk(start string) *Walk {
	return &Walk{
		Start:   start,
		Current: start,
	}
}

// Advance moves the walk to next and counts the step.
func (w *Walk) Advance(next string) {
	w.Current = next
	w.Steps++
}

// Result freezes the walk into a WalkResult.
func (w *Walk) Result() WalkResult {
	return WalkResult{Start: w.Start, End: w.Current, Steps: w.Steps}
}
