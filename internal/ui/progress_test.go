package ui

import (
	"testing"

	"owl/internal/driver"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name string
		ev   driver.Event
		want string
	}{
		{"lex", driver.Event{Stage: driver.StageLex}, "lexing"},
		{"parse", driver.Event{Stage: driver.StageParse}, "parsing"},
		{"check", driver.Event{Stage: driver.StageCheck}, "checking"},
		{"done", driver.Event{Stage: driver.StageDone}, "done"},
		{"cached", driver.Event{Stage: driver.StageDone, FromCache: true}, "cached"},
		{"error", driver.Event{Stage: driver.StageError}, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusLabel(tt.ev); got != tt.want {
				t.Errorf("statusLabel(%v) = %q, want %q", tt.ev.Stage, got, tt.want)
			}
		})
	}
}

func TestProgressFromStageMonotonic(t *testing.T) {
	stages := []driver.Stage{driver.StageLex, driver.StageParse, driver.StageCheck, driver.StageDone}
	prev := 0.0
	for _, stage := range stages {
		got := progressFromStage(stage)
		if got <= prev {
			t.Fatalf("progressFromStage(%v) = %v, want > %v", stage, got, prev)
		}
		prev = got
	}
	if got := progressFromStage(driver.StageError); got != 1.0 {
		t.Errorf("progressFromStage(StageError) = %v, want 1.0", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		value string
		width int
		want  string
	}{
		{"short.ow", 20, "short.ow"},
		{"a/very/long/path/to/main.ow", 12, "a/very/lo..."},
		{"abcdef", 3, "abc"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.value, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
		}
	}
}
