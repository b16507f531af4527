package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

func (rt *Router) createTask(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req struct {
		Title          string     `json:"title"`
		Description    string     `json:"description"`
		ProjectID      string     `json:"project_id"`
		AssignedTo     string     `json:"assigned_to"`
		Priority       string     `json:"priority"`
		EstimatedHours *int       `json:"estimated_hours"`
		SkillsRequired []string   `json:"skills_required"`
		DueDate        *time.Time `json:"due_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	task, err := rt.tasks.Create(r.Context(), user.ID, domain.TaskDraft{
		Title:          req.Title,
		Description:    req.Description,
		ProjectID:      req.ProjectID,
		AssignedTo:     req.AssignedTo,
		Priority:       domain.TaskPriority(req.Priority),
		EstimatedHours: req.EstimatedHours,
		SkillsRequired: req.SkillsRequired,
		DueDate:        req.DueDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (rt *Router) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := rt.tasks.ListByProject(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

func (rt *Router) updateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	id := r.PathValue("id")
	if err := rt.tasks.UpdateStatus(r.Context(), id, domain.TaskStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}

	task, err := rt.tasks.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (rt *Router) prioritizeTasks(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tasks   []domain.TaskRef `json:"tasks"`
		Persist bool             `json:"persist"`
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}
	}

	start := time.Now()
	results, err := rt.prioritize.Prioritize(r.Context(), req.Tasks, req.Persist)
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		source := ""
		if len(results) > 0 {
			source = string(results[0].Source)
		}
		rt.metrics.RecordScoring(rt.serviceName, source, time.Since(start))
	}
	writeJSON(w, http.StatusOK, map[string]any{"prioritized_tasks": results, "count": len(results)})
}
