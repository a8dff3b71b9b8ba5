package mines

import (
	"errors"
	"testing"
)

func TestEvaluate(t *testing.T) {
	b, err := NewBoardFromLayout(2, 2, []Position{{Row: 0, Column: 0}})
	if err != nil {
		t.Fatalf("NewBoardFromLayout() error = %v", err)
	}
	if got := Evaluate(b); got != StatusInProgress {
		t.Fatalf("fresh board = %s", got)
	}

	b.cells[1].Revealed = true
	b.cells[2].Revealed = true
	if got := Evaluate(b); got != StatusInProgress {
		t.Fatalf("partial reveal = %s", got)
	}

	b.cells[3].Revealed = true
	if got := Evaluate(b); got != StatusWon {
		t.Fatalf("all safe revealed = %s", got)
	}

	b.cells[0].Revealed = true
	if got := Evaluate(b); got != StatusLost {
		t.Fatalf("mine revealed = %s", got)
	}
}

func TestEvaluate_FlagsDoNotCount(t *testing.T) {
	b, err := NewBoardFromLayout(1, 2, []Position{{Row: 0, Column: 0}})
	if err != nil {
		t.Fatalf("NewBoardFromLayout() error = %v", err)
	}
	b.cells[0].Flagged = true
	if got := Evaluate(b); got != StatusInProgress {
		t.Fatalf("flagging the mine = %s", got)
	}
}

func TestTransitionStatus(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusInProgress, StatusInProgress, true},
		{StatusInProgress, StatusWon, true},
		{StatusInProgress, StatusLost, true},
		{StatusWon, StatusWon, true},
		{StatusLost, StatusLost, true},
		{StatusWon, StatusInProgress, false},
		{StatusWon, StatusLost, false},
		{StatusLost, StatusWon, false},
		{StatusLost, StatusInProgress, false},
		{StatusUnspecified, StatusInProgress, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			got, err := transitionStatus(tt.from, tt.to)
			if tt.allowed {
				if err != nil || got != tt.to {
					t.Fatalf("transitionStatus() = %s, %v", got, err)
				}
				return
			}
			if !errors.Is(err, ErrIllegalState) {
				t.Fatalf("transitionStatus() error = %v, want ErrIllegalState", err)
			}
			if got != tt.from {
				t.Fatalf("rejected transition moved status to %s", got)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusInProgress:  "in_progress",
		StatusWon:         "won",
		StatusLost:        "lost",
		StatusUnspecified: "unspecified",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
	if StatusInProgress.Terminal() || !StatusWon.Terminal() || !StatusLost.Terminal() {
		t.Fatal("unexpected Terminal() result")
	}
}
