// pipeline.go
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

// TranscriptSource fetches the spoken-word transcript for a video,
// returned as text segments in playback order.
type TranscriptSource interface {
	Fetch(reference string) ([]string, error)
}

// TextGenerator produces a completion for a rendered prompt.
type TextGenerator interface {
	Complete(prompt string) (string, error)
}

// pipelineState names one node of the run state machine.
type pipelineState string

const (
	stateStart             pipelineState = "start"
	stateRetrieving        pipelineState = "retrieving"
	stateTitleGenerating   pipelineState = "title_generating"
	stateArticleGenerating pipelineState = "article_generating"
	stateHalted            pipelineState = "halted"
	stateDone              pipelineState = "done"
)

// Error message prefixes, one per failure point.
const (
	stageInput     = "invalid input"
	stageRetrieval = "transcript retrieval failed"
	stageTitle     = "title generation failed"
	stageArticle   = "article generation failed"
)

// Pipeline turns one video reference into a titled blog post by running
// transcript retrieval, title generation, and article generation in
// order. Any step failure halts the run.
type Pipeline struct {
	transcripts TranscriptSource
	generator   TextGenerator
	config      *Config
}

// NewPipeline creates a pipeline using the given collaborators.
func NewPipeline(transcripts TranscriptSource, generator TextGenerator, config *Config) *Pipeline {
	return &Pipeline{
		transcripts: transcripts,
		generator:   generator,
		config:      config,
	}
}

// Run drives a single reference through the state machine and returns
// the final record. All step failures are captured in Record.Err; Run
// never panics or retries. Each call starts a fresh record, so separate
// runs share no state.
func (p *Pipeline) Run(reference string) Record {
	record := Record{
		RunID:     uuid.New().String(),
		SourceURL: reference,
	}

	state := stateStart
	for {
		switch state {
		case stateStart:
			state = stateRetrieving
		case stateRetrieving:
			record = merge(record, p.fetchTranscript(record))
			if gate(record) == decisionHalt {
				state = stateHalted
			} else {
				state = stateTitleGenerating
			}
		case stateTitleGenerating:
			record = merge(record, p.generateTitle(record))
			if gate(record) == decisionHalt {
				state = stateHalted
			} else {
				state = stateArticleGenerating
			}
		case stateArticleGenerating:
			record = merge(record, p.generateArticle(record))
			state = stateDone
		case stateHalted:
			log.Printf("[RUN %s] ✗ Halted: %s", record.RunID, record.Err)
			return record
		case stateDone:
			log.Printf("[RUN %s] ✓ Done", record.RunID)
			return record
		}
	}
}

// fetchTranscript validates the source reference and retrieves the
// transcript, joining the collaborator's segments with single spaces.
func (p *Pipeline) fetchTranscript(snapshot Record) Delta {
	log.Printf("[RUN %s] → Fetching transcript...", snapshot.RunID)

	reference := strings.TrimSpace(snapshot.SourceURL)
	if reference == "" {
		return failure(stageInput, fmt.Errorf("video URL is missing"))
	}

	segments, err := p.transcripts.Fetch(reference)
	if err != nil {
		return failure(stageRetrieval, err)
	}

	transcript := joinSegments(segments)
	if transcript == "" {
		return failure(stageRetrieval, fmt.Errorf("no transcript available for this video"))
	}

	log.Printf("[RUN %s] ✓ Transcript fetched (%d characters)", snapshot.RunID, len(transcript))
	return Delta{Transcript: transcript}
}

// generateTitle renders the title prompt from the transcript and asks
// the generator for a title. The generator's text is kept verbatim.
func (p *Pipeline) generateTitle(snapshot Record) Delta {
	log.Printf("[RUN %s] → Generating title...", snapshot.RunID)

	prompt, err := p.config.RenderTitlePrompt(snapshot.Transcript)
	if err != nil {
		return failure(stageTitle, err)
	}

	title, err := p.generator.Complete(prompt)
	if err != nil {
		return failure(stageTitle, err)
	}

	log.Printf("[RUN %s] ✓ Title: %s", snapshot.RunID, title)
	return Delta{Title: title}
}

// generateArticle renders the article prompt from the title and the
// transcript and asks the generator for the full post body.
func (p *Pipeline) generateArticle(snapshot Record) Delta {
	log.Printf("[RUN %s] → Writing article...", snapshot.RunID)

	prompt, err := p.config.RenderArticlePrompt(snapshot.Title, snapshot.Transcript)
	if err != nil {
		return failure(stageArticle, err)
	}

	article, err := p.generator.Complete(prompt)
	if err != nil {
		return failure(stageArticle, err)
	}

	log.Printf("[RUN %s] ✓ Article written (%d characters)", snapshot.RunID, len(article))
	return Delta{Article: article}
}

// joinSegments concatenates transcript segments with single spaces.
// Blank segments are skipped so the result never carries doubled
// spaces.
func joinSegments(segments []string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		parts = append(parts, segment)
	}
	return strings.Join(parts, " ")
}
