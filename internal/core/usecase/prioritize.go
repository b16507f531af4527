package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
	"github.com/iamnithyaramesh/project-manager/internal/core/ports"
)

// Heuristic defaults for task-like records lacking the optional fields. A
// missing due date counts as unbounded-future, contributing zero urgency.
const (
	defaultImpact       = 3
	defaultEffort       = 5
	defaultDaysUntilDue = 9999
)

// heuristicReason is the fixed rationale attached to fallback scores.
const heuristicReason = "Fallback heuristic: impact/due/effort."

const recentTaskLimit = 100

// PrioritizeUseCase scores task-like records 0-100. The model path makes one
// external call for the whole batch; any failure there, including unusable
// output, is absorbed by the deterministic heuristic and never surfaces.
type PrioritizeUseCase struct {
	tasks  ports.TaskRepository
	model  ports.PriorityModel
	now    func() time.Time
	logger *slog.Logger
}

func NewPrioritizeUseCase(tasks ports.TaskRepository, model ports.PriorityModel, logger *slog.Logger) *PrioritizeUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &PrioritizeUseCase{tasks: tasks, model: model, now: func() time.Time { return time.Now().UTC() }, logger: logger}
}

func (uc *PrioritizeUseCase) Prioritize(ctx context.Context, refs []domain.TaskRef, persist bool) ([]domain.PrioritizedTask, error) {
	if len(refs) == 0 {
		loaded, err := uc.loadRecent(ctx)
		if err != nil {
			return nil, err
		}
		refs = loaded
	}
	if len(refs) == 0 {
		return []domain.PrioritizedTask{}, nil
	}

	results := uc.score(ctx, refs)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if persist {
		return uc.persistScores(ctx, refs, results)
	}
	return merge(refs, nil, results), nil
}

// score returns exactly one result per ref. The model result is accepted only
// when it covers every requested id; otherwise the whole batch falls back.
func (uc *PrioritizeUseCase) score(ctx context.Context, refs []domain.TaskRef) []domain.PriorityResult {
	if uc.model != nil {
		modelResults, err := uc.model.ScoreTasks(ctx, refs)
		if err == nil {
			if covered, ok := coverage(refs, modelResults); ok {
				return covered
			}
			uc.logger.Warn("model_scores_incomplete", "requested", len(refs), "returned", len(modelResults))
		} else {
			uc.logger.Warn("model_scoring_failed", "error", err)
		}
	}

	now := uc.now()
	results := make([]domain.PriorityResult, 0, len(refs))
	for _, ref := range refs {
		results = append(results, domain.PriorityResult{
			ID:     ref.ID,
			Score:  heuristicScore(ref, now),
			Reason: heuristicReason,
			Source: domain.ScoredByHeuristic,
		})
	}
	return results
}

// coverage reorders model results onto the requested id set, clamping scores
// into [0,100]. Missing or unknown ids invalidate the whole response.
func coverage(refs []domain.TaskRef, results []domain.PriorityResult) ([]domain.PriorityResult, bool) {
	byID := make(map[string]domain.PriorityResult, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}
	out := make([]domain.PriorityResult, 0, len(refs))
	for _, ref := range refs {
		r, ok := byID[ref.ID]
		if !ok {
			return nil, false
		}
		r.Score = clamp(r.Score, 0, 100)
		out = append(out, r)
	}
	return out, true
}

// heuristicScore is the deterministic fallback:
// impact*10 + max(0, 30-daysUntilDue) + (10/max(1,effort))*5, clamped 0..100.
func heuristicScore(ref domain.TaskRef, now time.Time) float64 {
	daysUntil := defaultDaysUntilDue
	if ref.DueDate != nil {
		d := int(math.Round(ref.DueDate.Sub(now).Hours() / 24))
		if d < 0 {
			d = 0
		}
		daysUntil = d
	}
	impact := defaultImpact
	if ref.Impact != nil && *ref.Impact != 0 {
		impact = *ref.Impact
	}
	effort := defaultEffort
	if ref.EffortEstimate != nil && *ref.EffortEstimate != 0 {
		effort = *ref.EffortEstimate
	}

	score := float64(impact)*10 +
		math.Max(0, float64(30-daysUntil)) +
		(10/math.Max(1, float64(effort)))*5
	return clamp(math.Round(score), 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func (uc *PrioritizeUseCase) loadRecent(ctx context.Context) ([]domain.TaskRef, error) {
	tasks, err := uc.tasks.ListRecent(ctx, recentTaskLimit)
	if err != nil {
		return nil, fmt.Errorf("load tasks for scoring: %w", err)
	}
	refs := make([]domain.TaskRef, 0, len(tasks))
	for _, t := range tasks {
		refs = append(refs, domain.TaskRef{
			ID:             t.ID,
			Title:          t.Title,
			Description:    t.Description,
			DueDate:        t.DueDate,
			EffortEstimate: t.EstimatedHours,
			Priority:       string(t.Priority),
		})
	}
	return refs, nil
}

func (uc *PrioritizeUseCase) persistScores(ctx context.Context, refs []domain.TaskRef, results []domain.PriorityResult) ([]domain.PrioritizedTask, error) {
	scoredAt := uc.now()
	if err := uc.tasks.SaveScores(ctx, results, scoredAt); err != nil {
		return nil, fmt.Errorf("persist scores: %w", err)
	}

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	stored, err := uc.tasks.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("reload scored tasks: %w", err)
	}
	storedByID := make(map[string]domain.Task, len(stored))
	for _, t := range stored {
		storedByID[t.ID] = t
	}
	return merge(refs, storedByID, results), nil
}

// merge pairs each result with the stored task when one exists, or a shell
// built from the supplied ref otherwise. Result order is preserved.
func merge(refs []domain.TaskRef, stored map[string]domain.Task, results []domain.PriorityResult) []domain.PrioritizedTask {
	refByID := make(map[string]domain.TaskRef, len(refs))
	for _, ref := range refs {
		refByID[ref.ID] = ref
	}

	out := make([]domain.PrioritizedTask, 0, len(results))
	for _, r := range results {
		task, ok := stored[r.ID]
		if !ok {
			ref := refByID[r.ID]
			task = domain.Task{
				ID:          ref.ID,
				Title:       ref.Title,
				Description: ref.Description,
				DueDate:     ref.DueDate,
				Priority:    domain.TaskPriority(ref.Priority),
			}
		}
		out = append(out, domain.PrioritizedTask{
			Task:   task,
			Score:  r.Score,
			Reason: r.Reason,
			Source: r.Source,
		})
	}
	return out
}
