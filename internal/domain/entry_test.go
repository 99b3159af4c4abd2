package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupRequest_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{name: "plain", input: "apple", expected: "apple"},
		{name: "surrounding whitespace", input: "  apple \n", expected: "apple"},
		{name: "empty", input: "", err: ErrEmptyQuery},
		{name: "only whitespace", input: " \t ", err: ErrEmptyQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupRequest{Word: tt.input}.Normalize()
			assert.Equal(t, tt.expected, got)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDictionaryEntry_PhoneticSelection(t *testing.T) {
	entry := &DictionaryEntry{
		Word: "hello",
		Phonetics: []Phonetic{
			{Audio: "https://example.com/hello-uk.mp3"},
			{Text: "/həˈloʊ/"},
			{Text: "/hɛˈləʊ/", Audio: "https://example.com/hello-us.mp3"},
		},
	}

	display, ok := entry.DisplayPhonetic()
	assert.True(t, ok)
	assert.Equal(t, "/həˈloʊ/", display.Text)

	audio, ok := entry.AudioPhonetic()
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/hello-uk.mp3", audio.Audio)
}

func TestDictionaryEntry_NoPhonetics(t *testing.T) {
	entry := &DictionaryEntry{Word: "x", Phonetics: []Phonetic{{}}}

	_, ok := entry.DisplayPhonetic()
	assert.False(t, ok)
	_, ok = entry.AudioPhonetic()
	assert.False(t, ok)
}

func TestDictionaryEntry_IsEmpty(t *testing.T) {
	var nilEntry *DictionaryEntry
	assert.True(t, nilEntry.IsEmpty())
	assert.True(t, (&DictionaryEntry{}).IsEmpty())
	assert.False(t, (&DictionaryEntry{Word: "a"}).IsEmpty())
}

func TestDefinition_ShownSynonyms(t *testing.T) {
	three := Definition{Synonyms: []string{"a", "b", "c"}}
	assert.Equal(t, []string{"a", "b", "c"}, three.ShownSynonyms())

	eight := Definition{Synonyms: []string{"1", "2", "3", "4", "5", "6", "7", "8"}}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, eight.ShownSynonyms())

	assert.Empty(t, Definition{}.ShownSynonyms())
}

func TestOutcome(t *testing.T) {
	entry := &DictionaryEntry{Word: "apple"}
	ok := Success(entry)
	assert.Equal(t, OutcomeSuccess, ok.Kind)
	assert.Same(t, entry, ok.Entry)
	assert.Empty(t, ok.Message())

	notFound := NotFound()
	assert.Equal(t, OutcomeNotFound, notFound.Kind)
	assert.ErrorIs(t, notFound.Err, ErrNotFound)
	assert.Equal(t, "no definitions found", notFound.Message())

	fail := Failure(&HTTPError{Status: 404, Body: "gone"})
	assert.Equal(t, OutcomeFailure, fail.Kind)
	assert.Equal(t, "HTTP 404: gone", fail.Message())
}

func TestErrors_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")

	var netErr *NetworkError
	assert.True(t, errors.As(error(&NetworkError{Err: cause}), &netErr))
	assert.ErrorIs(t, &NetworkError{Err: cause}, cause)
	assert.ErrorIs(t, &ParseError{Err: cause}, cause)
	assert.Contains(t, (&ParseError{Err: cause}).Error(), "connection refused")
}
