package taskparse

import "strings"

// requirementTag pairs a fixed category name with its trigger keywords. Any
// keyword hit marks the tag present; output follows declaration order.
type requirementTag struct {
	name     string
	keywords []string
}

var requirementTaxonomy = []requirementTag{
	{"User Authentication", []string{"login", "authentication"}},
	{"Dashboard UI", []string{"dashboard", "admin panel"}},
	{"Report Generation", []string{"report", "analytics"}},
	{"Notifications Module", []string{"notification", "alert"}},
	{"API Integration", []string{"api", "integration"}},
	{"Mobile Responsiveness", []string{"mobile", "responsive"}},
	{"Database Management", []string{"database", "storage"}},
	{"Security Features", []string{"security", "encryption"}},
	{"Search Functionality", []string{"search", "filter"}},
	{"Export Features", []string{"export", "download"}},
}

type Tagger struct{}

func NewTagger() *Tagger {
	return &Tagger{}
}

// Tags returns the requirement categories mentioned in the text. Matching is a
// case-insensitive substring test; absence of all keywords yields an empty
// slice, not an error.
func (t *Tagger) Tags(text string) []string {
	lower := strings.ToLower(text)
	tags := []string{}
	for _, tag := range requirementTaxonomy {
		for _, kw := range tag.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, tag.name)
				break
			}
		}
	}
	return tags
}
