package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusCompleted, TaskStatusBlocked:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskDraft carries the caller-supplied fields of a manually created task.
type TaskDraft struct {
	Title          string
	Description    string
	ProjectID      string
	AssignedTo     string
	Priority       TaskPriority
	EstimatedHours *int
	SkillsRequired []string
	DueDate        *time.Time
}

// Task is a fully independent record with its own status lifecycle. Tasks
// created from document extraction carry Source=TaskSourceExtraction but keep
// no live link back to the originating ExtractedTask.
type Task struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	ProjectID      string       `json:"project_id"`
	AssignedTo     string       `json:"assigned_to,omitempty"`
	AssignedBy     string       `json:"assigned_by,omitempty"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	EstimatedHours *int         `json:"estimated_hours,omitempty"`
	SkillsRequired []string     `json:"skills_required"`
	Source         string       `json:"source,omitempty"`
	DueDate        *time.Time   `json:"due_date,omitempty"`
	AIScore        *float64     `json:"ai_priority_score,omitempty"`
	AIScoreReason  string       `json:"ai_priority_reason,omitempty"`
	AIScoredAt     *time.Time   `json:"ai_priority_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
