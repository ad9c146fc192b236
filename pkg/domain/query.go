package domain

import "fmt"

// Default node labels for the designated single walk and the pattern walks.
const (
	DefaultStartNode   = "AAA"
	DefaultGoalNode    = "ZZZ"
	DefaultStartSuffix = "A"
	DefaultGoalSuffix  = "Z"
)

// Query describes which walks to run.
// An empty Start or Goal skips the single walk; an empty StartSuffix or
// GoalSuffix skips synchronization.
type Query struct {
	Start       string `json:"start,omitempty" yaml:"start,omitempty" mapstructure:"start"`
	Goal        string `json:"goal,omitempty" yaml:"goal,omitempty" mapstructure:"goal"`
	StartSuffix string `json:"start_suffix,omitempty" yaml:"start_suffix,omitempty" mapstructure:"start_suffix"`
	GoalSuffix  string `json:"goal_suffix,omitempty" yaml:"goal_suffix,omitempty" mapstructure:"goal_suffix"`
}

// DefaultQuery returns the AAA -> ZZZ walk plus the *A -> *Z synchronization.
func DefaultQuery() Query {
	return Query{
		Start:       DefaultStartNode,
		Goal:        DefaultGoalNode,
		StartSuffix: DefaultStartSuffix,
		GoalSuffix:  DefaultGoalSuffix,
	}
}

// WantsWalk reports whether the single walk is requested.
func (q Query) WantsWalk() bool {
	return q.Start != "" && q.Goal != ""
}

// WantsSync reports whether the multi-start synchronization is requested.
func (q Query) WantsSync() bool {
	return q.StartSuffix != "" && q.GoalSuffix != ""
}

// Key is a stable string form used for report caching.
func (q Query) Key() string {
	return fmt.Sprintf("%s>%s|%s>%s", q.Start, q.Goal, q.StartSuffix, q.GoalSuffix)
}

// WalkResult is the outcome of one walk.
type WalkResult struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
	Steps uint64 `json:"steps" yaml:"steps"`
}

// SyncResult is the outcome of a synchronization: every per-start walk and
// the least common multiple of their step counts.
type SyncResult struct {
	Walks []WalkResult `json:"walks" yaml:"walks"`
	Steps uint64       `json:"steps" yaml:"steps"`
}

// Report aggregates everything answered for one Query over one Map.
type Report struct {
	Map    string      `json:"map,omitempty" yaml:"map,omitempty"`
	Digest string      `json:"digest" yaml:"digest"`
	Query  Query       `json:"query" yaml:"query"`
	Walk   *WalkResult `json:"walk,omitempty" yaml:"walk,omitempty"`
	Sync   *SyncResult `json:"sync,omitempty" yaml:"sync,omitempty"`
}
