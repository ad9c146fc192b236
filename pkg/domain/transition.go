package domain

// Transition is a node's pair of outgoing edges.
// Every Left/Right target is expected to appear as the From of another Transition.
type Transition struct {
	From  string `json:"from" yaml:"from"`
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`
}

// Target returns the successor selected by the instruction.
func (t Transition) Target(in Instruction) string {
	if in == Left {
		return t.Left
	}
	return t.Right
}
