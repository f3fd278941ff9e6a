// transcript.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

var debugEnabled bool

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// transcriptSegment mirrors one entry of the transcript API's JSON
// response.
type transcriptSegment struct {
	Text string `json:"text"`
}

// TranscriptAPI fetches YouTube transcripts from a hosted transcript
// service. The service owns its own timeout and retry policy; this
// client makes exactly one attempt per Fetch.
type TranscriptAPI struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewTranscriptAPI creates a transcript client for the given service
// endpoint. The API key may be empty for services that don't need one.
func NewTranscriptAPI(apiURL, apiKey string) *TranscriptAPI {
	return &TranscriptAPI{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch returns the transcript segments for a video, in the order the
// service yields them.
func (t *TranscriptAPI) Fetch(reference string) ([]string, error) {
	videoID, err := extractVideoID(reference)
	if err != nil {
		return nil, fmt.Errorf("extracting video ID: %w", err)
	}

	req, err := http.NewRequest(http.MethodGet, t.apiURL, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Add("url", fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID))
	if t.apiKey != "" {
		q.Add("api_key", t.apiKey)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	debugLog("transcript API response: status=%d", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: reference}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var segments []transcriptSegment
	if err := json.Unmarshal(body, &segments); err != nil {
		return nil, fmt.Errorf("parsing transcript response: %w", err)
	}

	texts := make([]string, 0, len(segments))
	for _, segment := range segments {
		texts = append(texts, segment.Text)
	}
	return texts, nil
}

func extractVideoID(videoURL string) (string, error) {
	parsedURL, err := url.Parse(videoURL)
	if err != nil {
		return "", err
	}

	// Validate YouTube domain
	if !strings.Contains(parsedURL.Host, "youtube.com") && !strings.Contains(parsedURL.Host, "youtu.be") {
		return "", fmt.Errorf("not a YouTube URL")
	}

	// Handle youtu.be URLs
	if strings.Contains(parsedURL.Host, "youtu.be") {
		videoID := strings.TrimPrefix(parsedURL.Path, "/")
		if videoID == "" {
			return "", fmt.Errorf("no video ID found in URL")
		}
		return videoID, nil
	}

	// Handle youtube.com URLs
	videoID := parsedURL.Query().Get("v")
	if videoID == "" {
		return "", fmt.Errorf("no video ID found in URL")
	}
	return videoID, nil
}
