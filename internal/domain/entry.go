package domain

import "strings"

// MaxShownSynonyms is how many synonyms of a definition are displayed.
const MaxShownSynonyms = 6

// LookupRequest is a single word typed by the user
type LookupRequest struct {
	Word string
}

// Normalize returns the trimmed word or ErrEmptyQuery
func (r LookupRequest) Normalize() (string, error) {
	w := strings.TrimSpace(r.Word)
	if w == "" {
		return "", ErrEmptyQuery
	}
	return w, nil
}

// DictionaryEntry is the parsed result for one queried word
type DictionaryEntry struct {
	Word      string     `json:"word"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic is a transcription and/or an audio recording
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// Meaning groups definitions sharing a part of speech
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a single sense with optional example and synonyms
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
}

// DisplayPhonetic returns the first phonetic carrying a transcription.
func (e *DictionaryEntry) DisplayPhonetic() (Phonetic, bool) {
	for _, p := range e.Phonetics {
		if p.Text != "" {
			return p, true
		}
	}
	return Phonetic{}, false
}

// AudioPhonetic returns the first phonetic carrying an audio reference.
// It is chosen independently of DisplayPhonetic.
func (e *DictionaryEntry) AudioPhonetic() (Phonetic, bool) {
	for _, p := range e.Phonetics {
		if p.Audio != "" {
			return p, true
		}
	}
	return Phonetic{}, false
}

// IsEmpty reports whether the entry carries nothing worth rendering
func (e *DictionaryEntry) IsEmpty() bool {
	return e == nil || (e.Word == "" && len(e.Phonetics) == 0 && len(e.Meanings) == 0)
}

// ShownSynonyms returns at most MaxShownSynonyms synonyms
func (d Definition) ShownSynonyms() []string {
	if len(d.Synonyms) > MaxShownSynonyms {
		return d.Synonyms[:MaxShownSynonyms]
	}
	return d.Synonyms
}
