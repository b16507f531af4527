package taskparse

import (
	"reflect"
	"testing"
)

func TestTagsAreCaseInsensitiveAndUnique(t *testing.T) {
	tagger := NewTagger()

	upper := tagger.Tags("The LOGIN page needs work")
	lower := tagger.Tags("the login page needs work")

	want := []string{"User Authentication"}
	if !reflect.DeepEqual(upper, want) || !reflect.DeepEqual(lower, want) {
		t.Fatalf("tags = %v / %v, want %v", upper, lower, want)
	}

	// Both keywords of one tag still produce a single entry.
	both := tagger.Tags("login and authentication flows")
	if !reflect.DeepEqual(both, want) {
		t.Fatalf("tags = %v, want %v", both, want)
	}
}

func TestTagsFollowDeclarationOrder(t *testing.T) {
	tagger := NewTagger()

	// Mention export before login; output order must stay fixed.
	tags := tagger.Tags("export to csv, then fix the login form and the dashboard")
	want := []string{"User Authentication", "Dashboard UI", "Export Features"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
}

func TestTagsEmptyWithoutKeywords(t *testing.T) {
	tagger := NewTagger()

	tags := tagger.Tags("nothing relevant here")
	if len(tags) != 0 {
		t.Fatalf("tags = %v, want empty", tags)
	}
}
