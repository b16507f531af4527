package genai

import (
	"fmt"
	"strings"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

// BuildPriorityPrompt enumerates the whole batch in one prompt and demands a
// strict JSON array back; the server sorts, so the model is told not to.
func BuildPriorityPrompt(tasks []domain.TaskRef) string {
	var lines []string
	for _, t := range tasks {
		var attrs strings.Builder
		if t.DueDate != nil {
			attrs.WriteString(fmt.Sprintf(" due:%s", t.DueDate.Format("2006-01-02")))
		}
		if t.EffortEstimate != nil {
			attrs.WriteString(fmt.Sprintf(" effort:%d", *t.EffortEstimate))
		}
		if t.Impact != nil {
			attrs.WriteString(fmt.Sprintf(" impact:%d", *t.Impact))
		}
		lines = append(lines, fmt.Sprintf(`- id:%s title:"%s"%s description:"%s"`,
			t.ID, escapeQuotes(t.Title), attrs.String(), escapeQuotes(t.Description)))
	}

	return fmt.Sprintf(`You are given a list of tasks. Score each task from 0 (lowest priority) to 100 (highest priority) based on urgency, impact, due date proximity, and effort tradeoffs.
Return a JSON array only, where each element is:
{ "id": "<task id>", "score": <0-100 numeric>, "reason": "<brief explanation - 1-2 sentences>" }

Tasks:
%s

Rules:
- Use numeric score between 0 and 100.
- Sort not required in the response, server will sort.
- Output only valid JSON (no commentary).
`, strings.Join(lines, "\n"))
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
