package domain

import "time"

// TaskRef is the task-like input accepted by priority scoring. Callers supply
// at least ID, Title and Description; the optional fields feed the heuristic
// when the model path is unavailable.
type TaskRef struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	EffortEstimate *int       `json:"effortEstimate,omitempty"`
	Impact         *int       `json:"impact,omitempty"`
	Priority       string     `json:"priority,omitempty"`
}

// ScoreSource records which path produced a priority score, so callers can
// observe whether the model answered or the heuristic stepped in.
type ScoreSource string

const (
	ScoredByModel     ScoreSource = "model"
	ScoredByHeuristic ScoreSource = "heuristic"
)

type PriorityResult struct {
	ID     string      `json:"id"`
	Score  float64     `json:"score"`
	Reason string      `json:"reason"`
	Source ScoreSource `json:"source"`
}

// PrioritizedTask is a stored task merged with its fresh score, returned by
// the persist mode of the scoring operation.
type PrioritizedTask struct {
	Task   Task        `json:"task"`
	Score  float64     `json:"score"`
	Reason string      `json:"reason"`
	Source ScoreSource `json:"source"`
}
