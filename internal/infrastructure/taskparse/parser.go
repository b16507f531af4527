// Package taskparse pulls numbered task candidates and requirement tags out of
// normalized document text. The matcher battery is a set of independent
// numbering conventions applied to the whole text; overlapping captures are
// reconciled only by the approximate dedup pass, which has no completeness
// guarantee.
package taskparse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

// Thresholds kept as named constants; values carried over from the original
// heuristics without a documented rationale.
const (
	// MinDescriptionLength rejects captures too short to be a task.
	MinDescriptionLength = 10
	// DedupOverlapLength is how many leading characters participate in the
	// duplicate containment test.
	DedupOverlapLength = 50
	// TitleMaxLength is where titles get truncated with an ellipsis marker.
	TitleMaxLength = 100
)

// matcher recognizes one numbering convention. The token pattern must expose
// the number as its first capture group; the description runs from the end of
// the token to the next token of the same convention, or end of text.
type matcher struct {
	name  string
	token *regexp.Regexp
}

var matchers = []matcher{
	{"dot", regexp.MustCompile(`(?m)^\s*(\d+)\.\s+`)},
	{"paren", regexp.MustCompile(`(?m)^\s*(\d+)\)\s+`)},
	{"dash-dot", regexp.MustCompile(`(?m)^\s*-\s*(\d+)\.\s+`)},
	{"star-dot", regexp.MustCompile(`(?m)^\s*\*\s*(\d+)\.\s+`)},
	{"task-colon", regexp.MustCompile(`Task\s+(\d+):\s*`)},
	{"step-colon", regexp.MustCompile(`Step\s+(\d+):\s*`)},
}

var (
	allDigits = regexp.MustCompile(`^\d+$`)
	hoursRe   = regexp.MustCompile(`(?i)(\d+)\s*(hours?|hrs?|h)`)
)

var highPriorityKeywords = []string{"urgent", "critical", "high priority"}
var lowPriorityKeywords = []string{"low priority", "optional"}

// skillVocabulary order is the output order of SkillsRequired.
var skillVocabulary = []string{"frontend", "backend", "database", "api", "ui", "ux", "testing", "deployment"}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse runs every matcher over the full text, enriches each capture with
// inferred priority, hour estimate and skill tags, drops near-duplicates and
// returns the survivors ordered by their source numbering.
func (p *Parser) Parse(text string) []domain.ExtractedTask {
	var tasks []domain.ExtractedTask

	for _, m := range matchers {
		locs := m.token.FindAllStringSubmatchIndex(text, -1)
		for i, loc := range locs {
			number, err := strconv.Atoi(text[loc[2]:loc[3]])
			if err != nil {
				continue
			}
			end := len(text)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			description := strings.TrimSpace(text[loc[1]:end])

			if len(description) < MinDescriptionLength || allDigits.MatchString(description) {
				continue
			}

			tasks = append(tasks, domain.ExtractedTask{
				Number:         number,
				Title:          buildTitle(description),
				Description:    description,
				Priority:       inferPriority(description),
				EstimatedHours: inferHours(description),
				SkillsRequired: inferSkills(description),
				Source:         domain.TaskSourceExtraction,
			})
		}
	}

	unique := dedupe(tasks)
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Number < unique[j].Number
	})
	return unique
}

func buildTitle(description string) string {
	if len(description) > TitleMaxLength {
		return description[:TitleMaxLength] + "..."
	}
	return description
}

// inferPriority is a case-insensitive substring test; high keywords are
// checked before low ones, first match wins.
func inferPriority(description string) domain.TaskPriority {
	lower := strings.ToLower(description)
	for _, kw := range highPriorityKeywords {
		if strings.Contains(lower, kw) {
			return domain.PriorityHigh
		}
	}
	for _, kw := range lowPriorityKeywords {
		if strings.Contains(lower, kw) {
			return domain.PriorityLow
		}
	}
	return domain.PriorityMedium
}

func inferHours(description string) *int {
	m := hoursRe.FindStringSubmatch(description)
	if m == nil {
		return nil
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &hours
}

func inferSkills(description string) []string {
	lower := strings.ToLower(description)
	skills := []string{}
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, skill) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// dedupe keeps the earlier of any two tasks whose descriptions overlap over
// their first DedupOverlapLength characters, in either direction. The test is
// containment, not equality; false positives and negatives are accepted.
func dedupe(tasks []domain.ExtractedTask) []domain.ExtractedTask {
	unique := make([]domain.ExtractedTask, 0, len(tasks))
	for _, task := range tasks {
		taskLower := strings.ToLower(task.Description)
		duplicate := false
		for _, existing := range unique {
			existingLower := strings.ToLower(existing.Description)
			if strings.Contains(existingLower, head(taskLower, DedupOverlapLength)) ||
				strings.Contains(taskLower, head(existingLower, DedupOverlapLength)) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, task)
		}
	}
	return unique
}

func head(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
