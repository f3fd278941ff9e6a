package main

import (
	"errors"
	"strings"
	"testing"
)

func TestGate(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected decision
	}{
		{"no error", Record{Transcript: "text"}, decisionContinue},
		{"empty record", Record{}, decisionContinue},
		{"error set", Record{Err: "transcript retrieval failed: boom"}, decisionHalt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gate(tt.record); got != tt.expected {
				t.Errorf("gate() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFailureSynthesizesMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"normal error", errors.New("boom"), "title generation failed: boom"},
		{"empty error message", errors.New(""), "title generation failed: unknown failure"},
		{"whitespace error message", errors.New("   "), "title generation failed: unknown failure"},
		{"nil error", nil, "title generation failed: unknown failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := failure(stageTitle, tt.err)
			if delta.Err != tt.expected {
				t.Errorf("failure() Err = %q, want %q", delta.Err, tt.expected)
			}
		})
	}
}

func TestMergeAppliesContent(t *testing.T) {
	record := Record{RunID: "run", SourceURL: "https://example.com"}

	record = merge(record, Delta{Transcript: "hello world"})
	if record.Transcript != "hello world" {
		t.Errorf("Transcript = %q, want %q", record.Transcript, "hello world")
	}

	record = merge(record, Delta{Title: "A Title"})
	record = merge(record, Delta{Article: "Body"})

	if record.Title != "A Title" || record.Article != "Body" {
		t.Errorf("merged record = %+v, want title and article set", record)
	}
	if record.Failed() {
		t.Errorf("Err = %q, want empty", record.Err)
	}
}

func TestMergeIsAppendOnly(t *testing.T) {
	record := Record{Transcript: "original"}

	record = merge(record, Delta{Transcript: "replacement", Title: "New Title"})

	if record.Transcript != "original" {
		t.Errorf("Transcript = %q, want earlier value preserved", record.Transcript)
	}
	if record.Title != "New Title" {
		t.Errorf("Title = %q, want %q", record.Title, "New Title")
	}
}

func TestMergeErrorFreezesContent(t *testing.T) {
	record := Record{Transcript: "kept"}

	record = merge(record, Delta{Title: "ignored", Err: "title generation failed: boom"})

	if !record.Failed() {
		t.Fatal("expected record to be failed")
	}
	if record.Title != "" {
		t.Errorf("Title = %q, want empty after error", record.Title)
	}
	if record.Transcript != "kept" {
		t.Errorf("Transcript = %q, want earlier value preserved", record.Transcript)
	}
	if !strings.Contains(record.Err, "boom") {
		t.Errorf("Err = %q, want diagnostic preserved", record.Err)
	}
}

func TestMergeSuccessClearsError(t *testing.T) {
	record := Record{Err: "stale"}

	record = merge(record, Delta{Transcript: "recovered"})

	if record.Failed() {
		t.Errorf("Err = %q, want cleared on successful delta", record.Err)
	}
}
