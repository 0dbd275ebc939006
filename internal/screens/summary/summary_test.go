package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/docent/internal/router"
)

func testSummary() Summary {
	return Summary{
		DocumentTitle:   "Plant Biology",
		Sections:        4,
		SectionsDone:    4,
		QuizzesAnswered: 6,
		QuizzesCorrect:  5,
		Understanding:   0.66,
		Duration:        7*time.Minute + 32*time.Second,
	}
}

func TestViewShowsOutcome(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 40)

	for _, want := range []string{"Plant Biology", "4/4", "5/6", "7m32s", "66%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterReturnsHome(t *testing.T) {
	s := New(testSummary())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("enter produced %T, want PopScreenMsg", cmd())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{60 * time.Second, "1m00s"},
		{7*time.Minute + 5*time.Second, "7m05s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
