package ui

import (
	"reflect"
	"testing"

	"github.com/parleyhq/parley/internal/chat"
)

func TestMentionFragment(t *testing.T) {
	tests := []struct {
		value    string
		wantFrag string
		wantAt   int
		wantOK   bool
	}{
		{"@al", "al", 0, true},
		{"hi @al", "al", 3, true},
		{"hi @", "", 3, true},
		{"hi @alice how", "", 0, false}, // completed mention, space after
		{"no mention", "", 0, false},
		{"email@example", "", 0, false}, // @ inside a word
		{"", "", 0, false},
	}
	for _, tt := range tests {
		frag, at, ok := mentionFragment(tt.value)
		if frag != tt.wantFrag || ok != tt.wantOK || (ok && at != tt.wantAt) {
			t.Errorf("mentionFragment(%q) = (%q, %d, %v), want (%q, %d, %v)",
				tt.value, frag, at, ok, tt.wantFrag, tt.wantAt, tt.wantOK)
		}
	}
}

func testRoster() *chat.Roster {
	r := chat.NewRoster()
	for _, n := range []string{"Albert", "alice", "bob"} {
		r.Add(n)
	}
	return r
}

func TestInputSuggestions(t *testing.T) {
	in := NewInput()
	in.SetValue("hey @al")
	in.RefreshSuggestions(testRoster())

	want := []string{"Albert", "alice"}
	if got := in.Suggestions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("suggestions = %v, want %v", got, want)
	}

	in.CycleSuggestion()
	if in.SelectedSuggestion() != 1 {
		t.Errorf("selected = %d after cycle, want 1", in.SelectedSuggestion())
	}
	in.CycleSuggestion()
	if in.SelectedSuggestion() != 0 {
		t.Errorf("selected = %d after wrap, want 0", in.SelectedSuggestion())
	}
}

func TestInputAcceptSuggestion(t *testing.T) {
	in := NewInput()
	in.SetValue("hey @al")
	in.RefreshSuggestions(testRoster())
	in.CycleSuggestion() // select "alice"
	in.AcceptSuggestion()

	if got := in.Value(); got != "hey @alice " {
		t.Errorf("value = %q, want %q", got, "hey @alice ")
	}
	if in.HasSuggestions() {
		t.Error("suggestions not dismissed after accept")
	}
}

func TestInputSuggestionsDismissed(t *testing.T) {
	in := NewInput()
	in.SetValue("hey @al")
	in.RefreshSuggestions(testRoster())
	if !in.HasSuggestions() {
		t.Fatal("expected suggestions")
	}

	// Finishing the word ends the mention.
	in.SetValue("hey @alice ")
	in.RefreshSuggestions(testRoster())
	if in.HasSuggestions() {
		t.Error("suggestions survived a completed mention")
	}

	// No candidates for the fragment.
	in.SetValue("hey @zz")
	in.RefreshSuggestions(testRoster())
	if in.HasSuggestions() {
		t.Error("suggestions offered with no matching names")
	}
}

func TestInputResetClearsSuggestions(t *testing.T) {
	in := NewInput()
	in.SetValue("@a")
	in.RefreshSuggestions(testRoster())
	in.Reset()
	if in.Value() != "" || in.HasSuggestions() {
		t.Error("reset did not clear input state")
	}
}
