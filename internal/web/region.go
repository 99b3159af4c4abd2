package web

import (
	"strings"
	"sync"

	"studyenglish/internal/render"
)

// Region modes reported in the X-Region-Mode header
const (
	modeReplace = "replace"
	modeAppend  = "append"
	// modeNone means the event left the region untouched.
	modeNone = "none"
)

// responseRegion collects what an event wrote to its display region for
// one HTTP response.
type responseRegion struct {
	mu      sync.Mutex
	mode    string
	content strings.Builder
}

// Replace implements ui.Region
func (r *responseRegion) Replace(f render.Fragment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = modeReplace
	r.content.Reset()
	r.content.WriteString(string(f))
}

// Append implements ui.Appender
func (r *responseRegion) Append(f render.Fragment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mode == "" {
		r.mode = modeAppend
	}
	if r.content.Len() > 0 {
		r.content.WriteString("\n")
	}
	r.content.WriteString(string(f))
}

func (r *responseRegion) result() (mode, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mode == "" {
		return modeNone, ""
	}
	return r.mode, r.content.String()
}
