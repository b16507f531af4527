package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `
	id, title, description, project_id, assigned_to, assigned_by, status, priority,
	estimated_hours, skills_required, source, due_date,
	ai_priority_score, ai_priority_reason, ai_priority_at, created_at, updated_at
`

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	skillsJSON, err := json.Marshal(task.SkillsRequired)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO tasks (
	id, title, description, project_id, assigned_to, assigned_by, status, priority,
	estimated_hours, skills_required, source, due_date,
	ai_priority_score, ai_priority_reason, ai_priority_at, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
`,
		task.ID, task.Title, task.Description, task.ProjectID,
		nullString(task.AssignedTo), nullString(task.AssignedBy),
		string(task.Status), string(task.Priority),
		task.EstimatedHours, skillsJSON, nullString(task.Source), task.DueDate,
		task.AIScore, nullString(task.AIScoreReason), task.AIScoredAt,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrNotFound, "get task", fmt.Errorf("task %s", id))
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = $1 ORDER BY created_at DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return collectTasks(rows)
}

func (r *TaskRepository) ListRecent(ctx context.Context, limit int) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent tasks: %w", err)
	}
	return collectTasks(rows)
}

func (r *TaskRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("marshal ids: %w", err)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id IN (SELECT jsonb_array_elements_text($1::jsonb))`, idsJSON)
	if err != nil {
		return nil, fmt.Errorf("query tasks by ids: %w", err)
	}
	return collectTasks(rows)
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE tasks
SET status = $2, updated_at = $3
WHERE id = $1
`, id, string(status), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task status rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrNotFound, "update task status", fmt.Errorf("task %s", id))
	}
	return nil
}

// SaveScores writes model or heuristic scores in one transaction. Results for
// ids without a stored task are skipped silently.
func (r *TaskRepository) SaveScores(ctx context.Context, results []domain.PriorityResult, scoredAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin scores tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, res := range results {
		_, err := tx.ExecContext(ctx, `
UPDATE tasks
SET ai_priority_score = $2, ai_priority_reason = $3, ai_priority_at = $4, updated_at = $4
WHERE id = $1
`, res.ID, res.Score, res.Reason, scoredAt)
		if err != nil {
			return fmt.Errorf("save score for %s: %w", res.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit scores tx: %w", err)
	}
	return nil
}

func collectTasks(rows *sql.Rows) ([]domain.Task, error) {
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var skillsRaw []byte
	var status, priority string
	var assignedTo, assignedBy, source, scoreReason sql.NullString
	var dueDate, scoredAt sql.NullTime
	var estimatedHours sql.NullInt64
	var score sql.NullFloat64

	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.ProjectID,
		&assignedTo, &assignedBy, &status, &priority,
		&estimatedHours, &skillsRaw, &source, &dueDate,
		&score, &scoreReason, &scoredAt, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skillsRaw, &task.SkillsRequired); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	task.Status = domain.TaskStatus(status)
	task.Priority = domain.TaskPriority(priority)
	task.AssignedTo = assignedTo.String
	task.AssignedBy = assignedBy.String
	task.Source = source.String
	task.AIScoreReason = scoreReason.String
	if estimatedHours.Valid {
		hours := int(estimatedHours.Int64)
		task.EstimatedHours = &hours
	}
	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}
	if score.Valid {
		v := score.Float64
		task.AIScore = &v
	}
	if scoredAt.Valid {
		at := scoredAt.Time
		task.AIScoredAt = &at
	}
	return &task, nil
}
