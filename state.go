// state.go
package main

import (
	"fmt"
	"strings"
)

// Record is the per-run state threaded through the pipeline. It is
// created once per run with only RunID and SourceURL populated and only
// ever grows: the controller merges step deltas into it, and a later
// step never overwrites a field an earlier step produced.
type Record struct {
	RunID      string
	SourceURL  string
	Transcript string
	Title      string
	Article    string
	Err        string
}

// Failed reports whether the run recorded an error.
func (r Record) Failed() bool {
	return r.Err != ""
}

// Delta is the patch a step returns to the controller. Empty fields
// mean "no change"; a non-empty Err marks the step as failed.
type Delta struct {
	Transcript string
	Title      string
	Article    string
	Err        string
}

// failure builds an error delta with a guaranteed non-empty message.
// Collaborators are not trusted to provide a diagnostic; a blank one
// would make the record look successful to the gate.
func failure(stage string, err error) Delta {
	msg := ""
	if err != nil {
		msg = strings.TrimSpace(err.Error())
	}
	if msg == "" {
		msg = "unknown failure"
	}
	return Delta{Err: fmt.Sprintf("%s: %s", stage, msg)}
}

// merge folds a step's delta into the record. An error delta freezes
// the content fields; a successful delta is append-only and clears any
// previous error.
func merge(record Record, delta Delta) Record {
	if delta.Err != "" {
		record.Err = delta.Err
		return record
	}
	if record.Transcript == "" {
		record.Transcript = delta.Transcript
	}
	if record.Title == "" {
		record.Title = delta.Title
	}
	if record.Article == "" {
		record.Article = delta.Article
	}
	record.Err = ""
	return record
}

// decision is the gate's verdict after a step.
type decision string

const (
	decisionContinue decision = "continue"
	decisionHalt     decision = "halt"
)

// gate inspects the record's error field and nothing else. It is the
// controller's sole branching point and does not mutate the record.
func gate(record Record) decision {
	if record.Failed() {
		return decisionHalt
	}
	return decisionContinue
}
