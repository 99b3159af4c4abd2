package testutil

import (
	"sync"

	"studyenglish/internal/domain"
	"studyenglish/internal/render"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates an entry with one meaning and one definition
func NewTestEntry(word, partOfSpeech, definition string) *domain.DictionaryEntry {
	return &domain.DictionaryEntry{
		Word:      word,
		Phonetics: []domain.Phonetic{{Text: "/" + word + "/"}},
		Meanings: []domain.Meaning{{
			PartOfSpeech: partOfSpeech,
			Definitions:  []domain.Definition{{Definition: definition}},
		}},
	}
}

// Recorder is a display region that remembers every write
type Recorder struct {
	mu     sync.Mutex
	writes []render.Fragment
	log    []render.Fragment
}

// Replace records a wholesale replacement
func (r *Recorder) Replace(f render.Fragment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, f)
}

// Append records a line appended to the region
func (r *Recorder) Append(f render.Fragment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = append(r.log, f)
}

// Current returns the latest replacement, or empty if none
func (r *Recorder) Current() render.Fragment {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return ""
	}
	return r.writes[len(r.writes)-1]
}

// Writes returns every replacement in order
func (r *Recorder) Writes() []render.Fragment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]render.Fragment(nil), r.writes...)
}

// Appended returns every appended line in order
func (r *Recorder) Appended() []render.Fragment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]render.Fragment(nil), r.log...)
}
