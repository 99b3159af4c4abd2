// Package localdict holds the small built-in demo dictionaries.
package localdict

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Dictionary is an immutable mapping from normalized word to display text
type Dictionary struct {
	name    string
	entries map[string]string
}

// New builds a dictionary; keys are normalized on the way in
func New(name string, entries map[string]string) *Dictionary {
	d := &Dictionary{
		name:    name,
		entries: make(map[string]string, len(entries)),
	}
	for k, v := range entries {
		d.entries[Normalize(k)] = v
	}
	return d
}

// Name identifies the dictionary in logs
func (d *Dictionary) Name() string {
	return d.name
}

// Len returns the number of entries
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Lookup returns the value mapped to word after normalization
func (d *Dictionary) Lookup(word string) (string, bool) {
	key := Normalize(word)
	if key == "" {
		return "", false
	}
	v, ok := d.entries[key]
	return v, ok
}

// Normalize trims, composes (NFC) and lower-cases word, so that
// "  Xin Chào " and a decomposed "xin chào" map to the same key.
func Normalize(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	word = norm.NFC.String(word)
	// cases.Caser is stateful; a fresh one keeps Normalize safe for
	// concurrent use.
	return cases.Lower(language.Vietnamese).String(word)
}

// VIEN maps Vietnamese words to English
var VIEN = New("vi-en", map[string]string{
	"xin chào":   "hello",
	"quả táo":    "apple",
	"con chó":    "dog",
	"con mèo":    "cat",
	"xe hơi":     "car",
	"quyển sách": "book",
})

// VIVI maps Vietnamese words to Vietnamese definitions
var VIVI = New("vi-vi", map[string]string{
	"xin chào": "Lời chào xã giao, dùng để chào hỏi.",
	"yêu":      "Cảm xúc thương mến sâu sắc đối với một người hoặc vật.",
	"táo":      "Một loại quả, thường ăn tươi.",
})
